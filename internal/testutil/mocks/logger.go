package mocks

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/customtab/internal/ports"
)

// Entry is a log entry captured by Logger.
type Entry struct {
	Level   ports.Level
	Message string
	Fields  map[string]interface{}
}

// Logger records log entries for assertions.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLogger creates a logger that records every level.
func NewLogger() *Logger {
	return &Logger{}
}

// Debug records a debug entry.
func (l *Logger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelDebug, msg, fields)
}

// Info records an info entry.
func (l *Logger) Info(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelInfo, msg, fields)
}

// Warn records a warning entry.
func (l *Logger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	l.record(ports.LevelWarn, msg, fields)
}

// Entries returns a copy of the recorded entries.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Messages returns the recorded messages at or above level.
func (l *Logger) Messages(level ports.Level) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level >= level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *Logger) record(level ports.Level, msg string, fields []ports.Field) {
	entry := Entry{Level: level, Message: msg, Fields: make(map[string]interface{})}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

var _ ports.Logger = (*Logger)(nil)
