package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linguaweb/internal/model"
)

func TestWords(t *testing.T) {
	for _, lang := range model.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			words, err := Words(lang)
			require.NoError(t, err)
			assert.NotEmpty(t, words)
			for _, w := range words {
				assert.NotEmpty(t, w)
				assert.Equal(t, w, string([]rune(w)), "word should be valid utf-8")
			}
		})
	}
}

func TestWordsUnknownLanguage(t *testing.T) {
	_, err := Words("de")
	assert.Error(t, err)
}
