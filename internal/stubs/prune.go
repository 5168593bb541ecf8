package stubs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getlawrence/autodoc/internal/pathwalk"
)

// Prune removes generated stubs under the docs directory that the last
// WriteAll did not produce, then drops directories left empty. Hand-written
// pages never start with a directive and are kept.
func (w *Writer) Prune() ([]string, error) {
	files, err := pathwalk.Walk(w.DocsDir, pathwalk.Options{Pattern: `.*\.md$`, Logger: w.log})
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, path := range files {
		if _, ok := w.written[filepath.Clean(path)]; ok {
			continue
		}
		generated, err := isGenerated(path)
		if err != nil {
			return removed, err
		}
		if !generated {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		w.log.Infof("Removed stale doc file %s", path)
		removed = append(removed, path)
	}

	dirs, err := pathwalk.Walk(w.DocsDir, pathwalk.Options{Kind: pathwalk.KindDirs, Logger: w.log})
	if err != nil {
		return removed, err
	}
	// deepest first so parents empty out before they are checked
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(dirs[i]); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", dirs[i], err)
		}
	}
	return removed, nil
}

func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, len(DirectivePrefix))
	n, _ := f.Read(head)
	return bytes.Equal(head[:n], []byte(DirectivePrefix)), nil
}
