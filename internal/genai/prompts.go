package genai

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Task names for the four generated text fields. They double as the keys in
// the prompts YAML file.
const (
	TaskDescription = "word_description"
	TaskSynonyms    = "word_synonyms"
	TaskAntonyms    = "word_antonyms"
	TaskJeopardy    = "word_jeopardy"
)

var taskNames = []string{TaskDescription, TaskSynonyms, TaskAntonyms, TaskJeopardy}

// Prompts holds the per-language system and user prompts loaded from the
// YAML prompt file. The file is read once at startup.
type Prompts struct {
	System map[string]map[string]string `yaml:"system"`
	User   map[string]map[string]string `yaml:"user"`
}

// TaskPrompts is the set of system prompts for one language, one per
// generated field.
type TaskPrompts struct {
	Description string
	Synonyms    string
	Antonyms    string
	Jeopardy    string
}

// LoadPrompts reads and parses the YAML prompt file at path.
func LoadPrompts(path string) (*Prompts, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}

	var p Prompts
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse prompt file: %w", err)
	}
	if p.System == nil {
		return nil, fmt.Errorf("prompt file %s has no system prompts", path)
	}
	return &p, nil
}

// TaskPrompts returns the four system prompts for a language. Missing
// languages or tasks are a configuration error, not a per-request fallback.
func (p *Prompts) TaskPrompts(language string) (TaskPrompts, error) {
	byTask, ok := p.System[language]
	if !ok {
		return TaskPrompts{}, fmt.Errorf("no system prompts configured for language %q", language)
	}
	for _, task := range taskNames {
		if byTask[task] == "" {
			return TaskPrompts{}, fmt.Errorf("system prompt %q missing for language %q", task, language)
		}
	}
	return TaskPrompts{
		Description: byTask[TaskDescription],
		Synonyms:    byTask[TaskSynonyms],
		Antonyms:    byTask[TaskAntonyms],
		Jeopardy:    byTask[TaskJeopardy],
	}, nil
}
