package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		level   zapcore.Level
		wantErr bool
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"Info json", Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Warn", Config{Level: "warn"}, zapcore.WarnLevel, false},
		{"Default level", Config{}, zapcore.InfoLevel, false},
		{"Invalid level", Config{Level: "loud"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("without")
		c.Locals("ray_id", "abc-123")
		WithRayID(base, c).Info("with")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0].ContextMap(), "ray_id")
	assert.Equal(t, "abc-123", entries[1].ContextMap()["ray_id"])
}
