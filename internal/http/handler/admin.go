package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"linguaweb/internal/service"
)

// AddWord handles POST /admin/add_word. Form fields: `word` (required) and
// `language` (defaults to English). Provisioning an already stored word
// returns the existing record, so the operation is safe to repeat.
func AddWord(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		word := c.FormValue("word")
		language := c.FormValue("language", "en")

		w, err := svc.Provision(c.UserContext(), word, language)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrWordRequired):
				return writeError(c, fiber.StatusBadRequest, "WORD_REQUIRED", "word is required")
			case errors.Is(err, service.ErrUnsupportedLanguage):
				return writeError(c, fiber.StatusBadRequest, "INVALID_LANGUAGE", "unsupported language")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(w)
	}
}

// AddPresetWords handles POST /admin/add_preset_words. Optional form field
// `max_words` truncates each language's preset list.
func AddPresetWords(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		maxWords := 0
		if v := c.FormValue("max_words"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_MAX_WORDS", "invalid max_words")
			}
			maxWords = n
		}

		words, err := svc.ProvisionPresets(c.UserContext(), maxWords)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(words)
	}
}
