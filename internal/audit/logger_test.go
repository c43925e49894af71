package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/types"
	"github.com/radio-control/sdrhal/internal/values"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestLoggerWritesJSONL(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir)
	require.NoError(t, err)

	logger.LogAction("sound+upconverter", "set_freq", map[string]any{"freq_hz": 14e6}, nil)
	logger.LogAction("sound+upconverter", "set_freq", nil, fmt.Errorf("wrapped: %w", types.ErrOutOfRange))
	require.NoError(t, logger.Close())

	entries := readEntries(t, filepath.Join(dir, "audit.jsonl"))
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "sound+upconverter", first["device"])
	assert.Equal(t, "set_freq", first["action"])
	assert.Equal(t, "SUCCESS", first["code"])
	assert.Equal(t, 14e6, first["freq_hz"])
	assert.Contains(t, first, "time")

	second := entries[1]
	assert.Equal(t, "INVALID_RANGE", second["code"])
	assert.Contains(t, second["error"], "wrapped")
}

func TestLoggerAppends(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir)
	require.NoError(t, err)
	logger.LogAction("d", "close", nil, nil)
	require.NoError(t, logger.Close())

	// Reopening must preserve earlier entries.
	logger, err = NewLogger(dir)
	require.NoError(t, err)
	logger.LogAction("d", "close", nil, nil)
	require.NoError(t, logger.Close())

	assert.Len(t, readEntries(t, filepath.Join(dir, "audit.jsonl")), 2)
}

func TestNewLoggerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	logger, err := NewLogger(dir)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(filepath.Join(dir, "audit.jsonl"))
	assert.NoError(t, err)
}

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "SUCCESS"},
		{"out_of_range", types.ErrOutOfRange, "INVALID_RANGE"},
		{"wrapped_out_of_range", fmt.Errorf("x: %w", types.ErrOutOfRange), "INVALID_RANGE"},
		{"not_writable", values.ErrNotWritable, "NOT_WRITABLE"},
		{"configuration", device.ErrConfiguration, "INVALID_CONFIG"},
		{"other", errors.New("boom"), "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeFromError(tt.err))
		})
	}
}
