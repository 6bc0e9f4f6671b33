package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecord is a captured log entry: level, message, and flattened attrs.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// LogRecorder is a slog.Handler that captures records in memory so tests can
// assert on emitted notifications instead of scraping output.
type LogRecorder struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewLogRecorder returns a recorder and a logger writing into it.
func NewLogRecorder() (*LogRecorder, *slog.Logger) {
	r := &LogRecorder{}
	return r, slog.New(r)
}

func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	entry := LogRecord{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   make(map[string]string),
	}
	rec.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value.String()
		return true
	})
	r.mu.Lock()
	r.records = append(r.records, entry)
	r.mu.Unlock()
	return nil
}

// WithAttrs and WithGroup are accepted but not tracked; tests here assert on
// record-level attrs only.
func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *LogRecorder) WithGroup(string) slog.Handler      { return r }

// Records returns a copy of everything captured so far.
func (r *LogRecorder) Records() []LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogRecord{}, r.records...)
}

// LastAtLevel returns the most recent record at the given level, or false.
func (r *LogRecorder) LastAtLevel(level slog.Level) (LogRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Level == level {
			return r.records[i], true
		}
	}
	return LogRecord{}, false
}
