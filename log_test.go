package currency

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(zapcore.AddSync(&buf), "curfmt", "warn")

	log.Info("dropped")
	log.Warn("rates unavailable")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "rates unavailable", entry["msg"])
	assert.Equal(t, "curfmt", entry["service"])
	assert.Contains(t, entry, "caller")
}

func TestNewLogger_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(zapcore.AddSync(&buf), "curfmt", "loud")
	log.Debug("dropped")
	log.Info("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.NotContains(t, buf.String(), "dropped")
	assert.NotNil(t, NewLogger("curfmt", "debug"))
}
