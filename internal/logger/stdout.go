package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var levelStyles = map[Level]lipgloss.Style{
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// StdoutLogger writes " LEVEL    : message" lines to a writer
type StdoutLogger struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	color   bool
}

// NewStdoutLogger logs to os.Stdout, colouring level tags on a terminal
func NewStdoutLogger(verbose bool) *StdoutLogger {
	return &StdoutLogger{out: os.Stdout, verbose: verbose, color: IsInteractive()}
}

// NewWriterLogger logs plain lines to w
func NewWriterLogger(w io.Writer, verbose bool) *StdoutLogger {
	return &StdoutLogger{out: w, verbose: verbose}
}

func (l *StdoutLogger) Debugf(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.logf(LevelDebug, format, args...)
}

func (l *StdoutLogger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *StdoutLogger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *StdoutLogger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *StdoutLogger) logf(level Level, format string, args ...interface{}) {
	tag := fmt.Sprintf("%-8s", level.String())
	if l.color {
		tag = levelStyles[level].Render(tag)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, " %s : %s\n", tag, fmt.Sprintf(format, args...))
}
