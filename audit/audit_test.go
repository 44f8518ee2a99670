package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAppendsNewlineTerminatedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mcp-audit.jsonl")
	rec, err := NewRecorder(path)
	require.NoError(t, err)
	defer rec.Close()

	require.NoError(t, rec.Record(Entry{Timestamp: "2024-06-01T12:34:56.789Z", Method: "tools/call", DurationMs: 5, Success: true}))
	require.NoError(t, rec.Record(Entry{Timestamp: "2024-06-01T12:34:57.000Z", Method: "tools/call", DurationMs: 3, Success: false, Error: "boom"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 2)

	var first Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.True(t, first.Success)
	assert.NotContains(t, lines[0], `"error"`)

	var second Entry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.False(t, second.Success)
	assert.Equal(t, "boom", second.Error)
}

func TestNowISO8601MillisFormat(t *testing.T) {
	tm := time.Date(2024, 6, 1, 12, 34, 56, 789000000, time.UTC)
	assert.Equal(t, "2024-06-01T12:34:56.789Z", NowISO8601Millis(tm))
}
