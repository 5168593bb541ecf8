package pathwalk

import (
	"fmt"
	"path/filepath"

	"github.com/getlawrence/autodoc/internal/domain"
)

// RelativePath returns the part of absolute that is not shared with commonRoot.
// The shared part is the plain string prefix of both cleaned paths.
func RelativePath(absolute, commonRoot string) (string, error) {
	absolute = filepath.Clean(absolute)
	commonRoot = filepath.Clean(commonRoot)

	prefix := commonPrefix(absolute, commonRoot)
	if prefix == "" {
		return "", fmt.Errorf("%w: %s and %s", domain.ErrNoCommonRoot, absolute, commonRoot)
	}
	rel, err := filepath.Rel(prefix, absolute)
	if err != nil {
		return "", fmt.Errorf("failed to make %s relative to %s: %w", absolute, prefix, err)
	}
	return rel, nil
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
