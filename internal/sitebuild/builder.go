package sitebuild

import (
	"context"
	"fmt"
	"strings"

	"github.com/getlawrence/autodoc/internal/domain"
	"github.com/getlawrence/autodoc/internal/logger"
)

// Builder invokes the site build command in the project directory
type Builder struct {
	command   []string
	commander Commander
	log       logger.Logger
}

// NewBuilder creates a builder for command, e.g. ["mkdocs", "build", "--verbose"]
func NewBuilder(command []string, commander Commander, log logger.Logger) *Builder {
	return &Builder{command: command, commander: commander, log: log}
}

// Build runs the command in dir and returns its combined output.
// Everything is logged at debug level so nothing competes with a spinner on a terminal.
func (b *Builder) Build(ctx context.Context, dir string) (string, error) {
	if len(b.command) == 0 {
		return "", fmt.Errorf("%w: empty site build command", domain.ErrInvalidInput)
	}
	name, args := b.command[0], b.command[1:]
	if _, err := b.commander.LookPath(name); err != nil {
		return "", fmt.Errorf("site builder %s is not installed: %w", name, err)
	}

	b.log.Debugf("Running %s", strings.Join(b.command, " "))
	output, err := b.commander.Run(ctx, name, args, dir)
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if line != "" {
			b.log.Debugf("%s", line)
		}
	}
	if err != nil {
		return output, fmt.Errorf("%s failed: %w", strings.Join(b.command, " "), err)
	}
	return output, nil
}
