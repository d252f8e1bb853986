package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

// Not parallel: the tests swap the global logger.
func TestHelpersWriteFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	Info("connected", "room_id", "5")
	Error(errors.New("boom"), "failed", "attempt", 2)
	Debug("detail")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "5", lines[0]["room_id"])
	assert.Equal(t, "boom", lines[1]["error"])
	assert.Equal(t, float64(2), lines[1]["attempt"])
	assert.Equal(t, "debug", lines[2]["level"])
}

func TestOddFieldsAreDropped(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	Warn("odd", "dangling")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "odd", lines[1]["message"])
	assert.NotContains(t, lines[1], "dangling")
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	logger := Component("session")
	logger.Info().Msg("hello")
	logger.Debug().Msg("filtered")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "session", lines[0]["component"])
}

func TestAnonymizeIP(t *testing.T) {
	assert.Equal(t, "192.168.1.0", anonymizeIP("192.168.1.77:4242"))
	assert.Equal(t, "127.0.0.1", anonymizeIP("127.0.0.1:80"))
	assert.Equal(t, "2001:db8:85a3:1::", anonymizeIP("[2001:db8:85a3:1:2:3:4:5]:443"))
	assert.Equal(t, "unknown_ip", anonymizeIP("not-an-ip"))
}
