package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"linguaweb/internal/model"
	"linguaweb/internal/service"
)

// ListWordIDs handles GET /words. Optional query params `language` and `age`
// narrow the result; the response is a JSON array of ids.
func ListWordIDs(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		language := c.Query("language")
		if language != "" && !model.IsSupportedLanguage(language) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LANGUAGE", "unsupported language")
		}

		age := 0
		if ageStr := c.Query("age"); ageStr != "" {
			v, err := strconv.Atoi(ageStr)
			if err != nil || v < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_AGE", "invalid age")
			}
			age = v
		}

		ids, err := svc.ListIDs(c.UserContext(), language, age)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(ids)
	}
}

// GetWord handles GET /words/:id.
func GetWord(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := wordID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		w, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "word not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(w)
	}
}

// CheckWord handles POST /words/check/:id. The guess arrives as form field
// `word`; the response body is the bare boolean verdict.
func CheckWord(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := wordID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		guess := c.FormValue("word")

		correct, err := svc.CheckGuess(c.UserContext(), id, guess)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "word not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(correct)
	}
}

// DownloadAudio handles GET /words/download/:id and streams the stored
// pronunciation audio.
func DownloadAudio(svc service.WordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := wordID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		audio, err := svc.DownloadAudio(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "audio not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Set(fiber.HeaderContentType, "audio/mpeg")
		return c.Send(audio)
	}
}

func wordID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
