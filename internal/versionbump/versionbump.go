// Package versionbump increments the patch number of a package's __version__.
package versionbump

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/getlawrence/autodoc/internal/domain"
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/pattern"
)

const versionExpr = `__version__ *= *(?:"|')(\d+\.\d+)\.(\d+)(?:"|')`

// patchExpr captures everything around the patch number so it can be swapped in place.
var patchExpr = regexp.MustCompile(`(__version__ *= *(?:"|')\d+\.\d+\.)(\d+)("|')`)

// Result describes a bump
type Result struct {
	Old string
	New string
}

// Bump rewrites initPath with the patch number of __version__ incremented.
// Every __version__ assignment in the file receives the new patch number.
func Bump(initPath string, log logger.Logger) (Result, error) {
	data, err := os.ReadFile(initPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", initPath, err)
	}
	content := string(data)

	majorMinor, patch, err := current(content)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", initPath, err)
	}
	next := strconv.Itoa(patch + 1)
	updated := patchExpr.ReplaceAllString(content, "${1}"+next+"${3}")

	log.Debugf("Original content :\n%s", content)
	log.Debugf("Changed content :\n%s", updated)
	if err := os.WriteFile(initPath, []byte(updated), 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", initPath, err)
	}
	return Result{
		Old: fmt.Sprintf("%s.%d", majorMinor, patch),
		New: majorMinor + "." + next,
	}, nil
}

// Next computes the bumped version of the first __version__ found in content
func Next(content string) (Result, error) {
	majorMinor, patch, err := current(content)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Old: fmt.Sprintf("%s.%d", majorMinor, patch),
		New: fmt.Sprintf("%s.%d", majorMinor, patch+1),
	}, nil
}

func current(content string) (string, int, error) {
	majorMinor, ok, err := pattern.Match(versionExpr, content, pattern.WithGroup(0))
	if err != nil {
		return "", 0, err
	}
	if !ok {
		return "", 0, domain.ErrVersionNotFound
	}
	raw, _, err := pattern.Match(versionExpr, content, pattern.WithGroup(1))
	if err != nil {
		return "", 0, err
	}
	patch, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("invalid patch number %q: %w", raw, err)
	}
	return majorMinor, patch, nil
}
