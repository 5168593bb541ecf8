// Package sitebuild runs the external static-site generator once the stubs
// and the site configuration are in place.
package sitebuild

import (
	"context"
	"os"
	"os/exec"
)

// Commander abstracts command execution for testing
type Commander interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, name string, args []string, dir string) (output string, err error)
}

// Real runs commands on the host. Env entries ("KEY=value") are added to the
// inherited environment.
type Real struct {
	Env []string
}

// NewReal creates a commander running host commands with extra environment entries
func NewReal(env ...string) Commander {
	return &Real{Env: env}
}

func (r *Real) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes name in dir and returns stdout and stderr interleaved
func (r *Real) Run(ctx context.Context, name string, args []string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	output, err := cmd.CombinedOutput()
	return string(output), err
}
