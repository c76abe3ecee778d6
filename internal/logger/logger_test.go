package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
		warnEnabled  bool
	}{
		{name: "debug", level: "debug", debugEnabled: true, warnEnabled: true},
		{name: "info", level: "info", debugEnabled: false, warnEnabled: true},
		{name: "warn", level: "warn", debugEnabled: false, warnEnabled: true},
		{name: "warning alias", level: "warning", debugEnabled: false, warnEnabled: true},
		{name: "error", level: "error", debugEnabled: false, warnEnabled: false},
		{name: "unknown defaults to info", level: "bogus", debugEnabled: false, warnEnabled: true},
		{name: "case insensitive", level: "DEBUG", debugEnabled: true, warnEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level)
			log := GetLogger()
			require.NotNil(t, log)
			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.warnEnabled, log.Enabled(ctx, slog.LevelWarn))
		})
	}
}

func TestGetLogger_UninitializedFallsBack(t *testing.T) {
	logger = nil
	log := GetLogger()
	require.NotNil(t, log)
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}
