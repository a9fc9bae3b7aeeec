package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Format: "json", ServiceName: "boids"}, zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Info("tick done", zap.Int64("tick", 42))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "boids", entry["logger"])
	assert.Equal(t, "tick done", entry["msg"])
	assert.Equal(t, 42.0, entry["tick"])
}

func TestNewLogger_ConsoleAndUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "console"}, zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Warn("careful")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, colorYellow+"WARN"+colorReset)
	assert.Contains(t, out, "careful")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boids.log")
	logger := NewLogger(LoggerConfig{Level: "debug", Format: "console", LogFile: path, MaxSizeMB: 1}, zapcore.AddSync(&bytes.Buffer{}))

	logger.Debug("to file")
	require.NoError(t, logger.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"to file"`)
}

func TestActorLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarningLevel,
		"warning": log.WarningLevel,
		"error":   log.ErrorLevel,
		"":        log.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, actorLevel(in), "level %q", in)
	}
	assert.Equal(t, log.DiscardLogger, ActorLogger("info", nil))
}
