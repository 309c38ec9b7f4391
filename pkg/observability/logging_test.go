package observability_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianbank/lending/pkg/observability"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, observability.ParseLevel(in), "level %q", in)
	}
}

func TestInitLogger(t *testing.T) {
	logger := observability.InitLogger(observability.LogConfig{Level: "debug", Format: "json"})
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger = observability.InitLogger(observability.LogConfig{Level: "error", Format: "text"})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}
