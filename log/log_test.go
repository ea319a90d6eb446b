package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriterFiltersByLevel(t *testing.T) {
	t.Cleanup(func() { _ = Init(LogLevelError, "stderr") })

	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(LogLevelInfo, &buf))

	Debugw("hidden", "k", "v")
	Infow("lookup", "network", "Ethereum", "role", "PROXY_ADMIN")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "lookup", entry["message"])
	assert.Equal(t, "Ethereum", entry["network"])
	assert.Equal(t, "PROXY_ADMIN", entry["role"])
	assert.Contains(t, entry["caller"], "log/log_test.go")
}

func TestErrorw(t *testing.T) {
	t.Cleanup(func() { _ = Init(LogLevelError, "stderr") })

	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(LogLevelError, &buf))
	Warnw("dropped")
	Errorw(errors.New("boom"), "fetching market data failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "fetching market data failed", entry["message"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := InitWithWriter("verbose", &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid log level")
}
