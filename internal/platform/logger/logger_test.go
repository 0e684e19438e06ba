package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json output at info drops debug", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewWithWriter(&buf, "info", "json")
		require.NoError(t, err)

		log.Debug("hidden")
		log.Info("state list cached", "count", 36)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "state list cached", entry["msg"])
		assert.Equal(t, float64(36), entry["count"])
	})

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewWithWriter(&buf, "DEBUG", "text")
		require.NoError(t, err)

		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := NewWithWriter(&bytes.Buffer{}, "loud", "json")
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewWithWriter(&bytes.Buffer{}, "info", "xml")
		assert.ErrorContains(t, err, "invalid log format")
	})
}
