package logger

import (
	"os"
)

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the tag printed in front of a log line
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is handed down explicitly from the command to every component that reports progress.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// IsInteractive reports whether stdout is attached to a terminal.
// Used to decide when to use interactive UI elements like spinners.
func IsInteractive() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	// If it's a pipe or regular file, it's not interactive
	if (fi.Mode() & os.ModeCharDevice) == 0 {
		return false
	}
	return true
}

// Nop discards everything
type Nop struct{}

func (Nop) Debugf(format string, args ...interface{}) {}
func (Nop) Infof(format string, args ...interface{})  {}
func (Nop) Warnf(format string, args ...interface{})  {}
func (Nop) Errorf(format string, args ...interface{}) {}
