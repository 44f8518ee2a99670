// Package audit writes the bridge's append-only tool-call log: one JSON
// object per line, UTF-8, newline-terminated (§6 "Audit log line format").
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one audit log line.
type Entry struct {
	Timestamp  string      `json:"timestamp"`
	Method     string      `json:"method"`
	Params     interface{} `json:"params"`
	DurationMs int64       `json:"duration_ms"`
	Success    bool        `json:"success"`
	Error      string      `json:"error,omitempty"`
}

// Recorder appends Entry values to a JSONL file. Opened create-if-missing
// + append mode, per entry flushed immediately; a mutex serializes writes
// so that concurrent callers never interleave partial lines (§5: "Audit
// log appends are strictly per-entry line-flushed").
type Recorder struct {
	mu   sync.Mutex
	file *os.File
}

// NewRecorder opens (creating if necessary) the audit log at path.
func NewRecorder(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("audit: creating log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("audit: opening log file %s: %w", path, err)
	}
	return &Recorder{file: f}, nil
}

// Record appends entry as one newline-terminated JSON line.
func (r *Recorder) Record(entry Entry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("audit: marshaling entry: %w", err)
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = r.file.Write(line)
	return err
}

// Close closes the underlying file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}

// NowISO8601Millis formats t as an ISO-8601 UTC string with millisecond
// precision, e.g. "2024-06-01T12:34:56.789Z".
func NowISO8601Millis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
