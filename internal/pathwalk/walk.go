// Package pathwalk lists files and directories below a root the way the
// documentation generator needs them: filtered by regular expression,
// depth-bounded, optionally relative and in natural order.
package pathwalk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/getlawrence/autodoc/internal/domain"
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/pattern"
	"github.com/maruel/natural"
)

const (
	// Unlimited disables the depth bound
	Unlimited = 0
	// RootOnly lists the entries of the root without descending
	RootOnly = -1
)

// maxLevels stands in for an unbounded depth
const maxLevels = 32767

// Kind selects which entries are listed
type Kind string

const (
	KindFiles Kind = "files"
	KindDirs  Kind = "dirs"
	KindAll   Kind = "all"
)

// Shape selects how much of each path is returned
type Shape string

const (
	ShapeFull Shape = "full"
	ShapeName Shape = "name"
)

// Options configures Walk. The zero value lists every file, recursively,
// with full paths, in natural order.
type Options struct {
	// Pattern is a regular expression matched against the joined path of each candidate
	Pattern string
	// Relative rewrites results relative to the root once the traversal is done
	Relative bool
	// MaxDepth is the number of directory levels descended below the root.
	// Unlimited (zero) has no bound, RootOnly does not descend at all.
	MaxDepth int
	Kind     Kind
	Shape    Shape
	// Unsorted keeps directory enumeration order
	Unsorted bool
	Logger   logger.Logger
}

// Walk returns the paths below root selected by opts
func Walk(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: can only list files in a directory, a file was given: %s", domain.ErrInvalidInput, root)
	}

	levels := opts.MaxDepth
	switch {
	case levels == Unlimited:
		levels = maxLevels
	case levels < 0:
		levels = 0
	}
	kind := opts.Kind
	if kind == "" {
		kind = KindFiles
	}
	if kind != KindFiles && kind != KindDirs && kind != KindAll {
		return nil, fmt.Errorf("%w: unknown entry kind %q", domain.ErrInvalidInput, kind)
	}

	w := &walker{pattern: opts.Pattern, kind: kind, levels: levels}
	if err := w.visit(root, 0); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(w.entries))
	for _, e := range w.entries {
		paths = append(paths, e.Path)
	}

	if opts.Relative {
		for i, p := range paths {
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return nil, fmt.Errorf("failed to make %s relative to %s: %w", p, root, err)
			}
			paths[i] = rel
		}
	}
	if opts.Shape == ShapeName {
		for i, p := range paths {
			paths[i] = filepath.Base(p)
		}
	}
	if !opts.Unsorted {
		sorted, err := sortNatural(paths)
		if err != nil {
			if opts.Logger != nil {
				opts.Logger.Debugf("keeping enumeration order for %s: %v", root, err)
			}
		} else {
			paths = sorted
		}
	}
	return paths, nil
}

type walker struct {
	pattern string
	kind    Kind
	levels  int
	entries []domain.FileEntry
}

func (w *walker) visit(dir string, depth int) error {
	des, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}
	for _, de := range des {
		full := filepath.Join(dir, de.Name())
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			if st, err := os.Stat(full); err == nil {
				isDir = st.IsDir()
			}
		}

		if !isDir {
			if w.kind != KindDirs {
				if err := w.include(full, domain.EntryFile); err != nil {
					return err
				}
			}
			continue
		}

		if w.kind != KindFiles {
			if err := w.include(full, domain.EntryDir); err != nil {
				return err
			}
		}
		if depth < w.levels {
			if err := w.visit(full, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) include(path string, kind domain.EntryKind) error {
	if w.pattern != "" {
		ok, err := pattern.Matches(w.pattern, path)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	w.entries = append(w.entries, domain.FileEntry{Path: filepath.Clean(path), Kind: kind})
	return nil
}

// sortNatural orders paths numerically aware ("file2" before "file10").
// A panic while sorting is turned into an error so the caller can fall back
// to the unsorted list.
func sortNatural(paths []string) (sorted []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			sorted, err = nil, fmt.Errorf("natural sort failed: %v", r)
		}
	}()
	out := append([]string(nil), paths...)
	sort.SliceStable(out, func(i, j int) bool { return natural.Less(out[i], out[j]) })
	return out, nil
}
