package logger

import (
	"fmt"
	"sync"
)

// Entry is a recorded log line
type Entry struct {
	Level   Level
	Message string
}

// MemoryLogger keeps every entry in memory; used by tests to assert on warnings.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Debugf(format string, args ...interface{}) { l.add(LevelDebug, format, args) }
func (l *MemoryLogger) Infof(format string, args ...interface{})  { l.add(LevelInfo, format, args) }
func (l *MemoryLogger) Warnf(format string, args ...interface{})  { l.add(LevelWarn, format, args) }
func (l *MemoryLogger) Errorf(format string, args ...interface{}) { l.add(LevelError, format, args) }

func (l *MemoryLogger) add(level Level, format string, args []interface{}) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Level: level, Message: fmt.Sprintf(format, args...)})
	l.mu.Unlock()
}

// Entries returns a copy of everything logged at the given level
func (l *MemoryLogger) Entries(level Level) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Entry
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
