package mocks

import (
	"fmt"
	"sync"

	"github.com/user/framereel/pkg/ports"
)

// LogEntry is one recorded log call.
type LogEntry struct {
	Level   ports.LogLevel
	Message string // Formatted message key (untranslated)
}

// Logger is a ports.Logger that records every message.
type Logger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
}

// NewLogger creates a recording Logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record(ports.LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record(ports.LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record(ports.LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record(ports.LevelError, msg, args) }

// WithComponent returns a logger sharing the same record.
func (l *Logger) WithComponent(component string) ports.Logger {
	return l
}

func (l *Logger) record(level ports.LogLevel, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	*l.entries = append(*l.entries, LogEntry{Level: level, Message: msg})
}

// Entries returns the messages logged at the given level.
func (l *Logger) Entries(level ports.LogLevel) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range *l.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
