package audit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/radio-control/sdrhal/internal/device"
	"github.com/radio-control/sdrhal/internal/types"
	"github.com/radio-control/sdrhal/internal/values"
)

// Logger records device control actions as one JSON object per line in an
// append-only file.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	log  zerolog.Logger
}

// NewLogger opens (creating if needed) the audit log under logDir.
func NewLogger(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filePath := filepath.Join(logDir, "audit.jsonl")
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log file: %w", err)
	}

	log := zerolog.New(file).With().Timestamp().Logger()
	return &Logger{file: file, log: log}, nil
}

// LogAction records one control action against a device.
func (l *Logger) LogAction(deviceName, action string, params map[string]any, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	event := l.log.Log().
		Str("device", deviceName).
		Str("action", action).
		Str("code", codeFromError(err))
	for key, value := range params {
		event = event.Any(key, value)
	}
	if err != nil {
		event = event.Err(err)
	}
	event.Send()
}

// Close flushes and closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// codeFromError maps error classes to stable outcome codes.
func codeFromError(err error) string {
	switch {
	case err == nil:
		return "SUCCESS"
	case errors.Is(err, types.ErrOutOfRange):
		return "INVALID_RANGE"
	case errors.Is(err, values.ErrNotWritable):
		return "NOT_WRITABLE"
	case errors.Is(err, device.ErrConfiguration):
		return "INVALID_CONFIG"
	default:
		return "ERROR"
	}
}
