package observability

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("parses valid level", func(t *testing.T) {
		log := NewLogger("debug", false)
		assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	})

	t.Run("falls back to info on unknown level", func(t *testing.T) {
		log := NewLogger("loud", false)
		assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	})

	t.Run("pretty mode still respects level", func(t *testing.T) {
		log := NewLogger("warn", true)
		assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	})
}
