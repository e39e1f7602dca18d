package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		env  string
		want zerolog.Level
	}{
		{"development", zerolog.DebugLevel},
		{"local", zerolog.DebugLevel},
		{"production", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFor(tt.env))
		})
	}
}

func TestNew_WritesPlainConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", false)

	l.Info().Str("method", "POST").Int("status", 201).Msg("Request completed")

	out := buf.String()
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "status=201")
	assert.Contains(t, out, "env=test")
	assert.NotContains(t, out, "\033[")
}

func TestNew_ColorsStatusCodes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", true)

	l.Error().Int("status", 500).Msg("Request completed")

	assert.Contains(t, buf.String(), colors.Red+"500"+colors.Reset)
}
