package preset

import (
	"embed"
	"fmt"
	"strings"
)

// Package preset holds the default word lists that seed the database per
// language. The lists are compiled into the binary so the preset loader has
// no runtime file dependencies.

//go:embed words/default_words_*.txt
var wordFiles embed.FS

// Words returns the ordered default word list for a language.
func Words(language string) ([]string, error) {
	raw, err := wordFiles.ReadFile(fmt.Sprintf("words/default_words_%s.txt", language))
	if err != nil {
		return nil, fmt.Errorf("no preset word list for language %q: %w", language, err)
	}

	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}
