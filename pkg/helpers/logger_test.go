package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo(t *testing.T) {
	t.Run("development uses text and debug", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLoggerTo(&buf, "app", "development")

		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
		assert.Contains(t, buf.String(), "logger initialized")
	})

	t.Run("production uses json and info", func(t *testing.T) {
		var buf bytes.Buffer

		logger := NewLoggerTo(&buf, "app", "production")
		LogError(logger, "failed", errors.New("boom"), logrus.Fields{"user_id": "u1"})

		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "failed", entry["msg"])
		assert.Equal(t, "boom", entry["error"])
		assert.Equal(t, "u1", entry["user_id"])
	})
}

func TestLogHelpers_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		LogInfo(nil, "msg", nil)
		LogError(nil, "msg", errors.New("x"), nil)
	})
}
