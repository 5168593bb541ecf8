package sitebuild

import (
	"context"
	"fmt"
	"strings"
)

// Mock implements Commander for testing
type Mock struct {
	Commands      map[string]bool   // which commands exist
	Responses     map[string]string // command line -> output
	Errors        map[string]error  // command line -> error
	RecordedCalls []RecordedCall
}

// RecordedCall captures a command invocation
type RecordedCall struct {
	Name string
	Args []string
	Dir  string
}

// NewMock creates a mock commander
func NewMock() *Mock {
	return &Mock{
		Commands:  make(map[string]bool),
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
	}
}

// LookPath checks if a command exists in the mock
func (m *Mock) LookPath(name string) (string, error) {
	if m.Commands[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Run records the call and returns the mocked response for the exact command line
func (m *Mock) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{Name: name, Args: args, Dir: dir})

	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if err, ok := m.Errors[key]; ok {
		return m.Responses[key], err
	}
	return m.Responses[key], nil
}
