// Package stubs writes one mkdocstrings stub per documented symbol and
// records where each stub sits in the site navigation.
package stubs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getlawrence/autodoc/internal/domain"
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/nav"
	"github.com/getlawrence/autodoc/internal/symbols"
)

// kindOrder is the order in which symbols of a file are written
var kindOrder = []domain.SymbolKind{domain.KindClass, domain.KindFunction}

// Extractor collects the symbols of a source file
type Extractor interface {
	ExtractFile(ctx context.Context, path string) (domain.Symbols, error)
}

// Writer generates stub files below DocsDir
type Writer struct {
	DocsDir   string
	SkipNames []string

	extractor Extractor
	log       logger.Logger
	written   map[string]struct{}
}

// NewWriter creates a writer emitting stubs into docsDir
func NewWriter(docsDir string, skipNames []string, extractor Extractor, log logger.Logger) *Writer {
	return &Writer{
		DocsDir:   docsDir,
		SkipNames: skipNames,
		extractor: extractor,
		log:       log,
		written:   make(map[string]struct{}),
	}
}

// WriteAll documents files, given relative to packageRoot, and returns the
// navigation map of everything written. Files without symbols produce
// neither a directory nor a navigation entry.
func (w *Writer) WriteAll(ctx context.Context, files []string, packageRoot, packageName string) (*nav.Map, error) {
	navMap := nav.New()

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileName := symbols.ModuleLabel(rel)
		if w.skipped(fileName) {
			w.log.Debugf("Skipping %s", rel)
			continue
		}

		syms, err := w.extractor.ExtractFile(ctx, filepath.Join(packageRoot, rel))
		if err != nil {
			return nil, err
		}
		if syms.IsEmpty() {
			continue
		}

		segments := append(dirSegments(rel), fileName)
		fileDocDir := filepath.Join(append([]string{w.DocsDir}, segments...)...)
		if err := os.MkdirAll(fileDocDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", fileDocDir, err)
		}
		section := navMap.Ensure(segments)

		for _, kind := range kindOrder {
			for _, qualified := range syms.ByKind(kind) {
				name := bareName(qualified)
				stubName := name + ".md"
				section.SetLeaf(name, strings.Join(append(append([]string{}, segments...), stubName), "/"))

				importPath := strings.Join(append(append([]string{packageName}, segments...), name), ".")
				if err := w.writeStub(filepath.Join(fileDocDir, stubName), Directive(importPath, kind)); err != nil {
					return nil, err
				}
			}
		}
	}
	return navMap, nil
}

// Written returns the stub paths produced so far
func (w *Writer) Written() map[string]struct{} {
	return w.written
}

func (w *Writer) writeStub(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		w.log.Warnf("doc file %s has been overwritten", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.written[filepath.Clean(path)] = struct{}{}
	return nil
}

func (w *Writer) skipped(fileName string) bool {
	for _, s := range w.SkipNames {
		if s == fileName {
			return true
		}
	}
	return false
}

// bareName is the second dot segment of a qualified name: the symbol itself
// for top-level definitions, the enclosing definition for nested classes.
func bareName(qualified string) string {
	parts := strings.Split(qualified, ".")
	if len(parts) < 2 {
		return qualified
	}
	return parts[1]
}

func dirSegments(rel string) []string {
	dir := filepath.Dir(rel)
	if dir == "." || dir == "" {
		return nil
	}
	return strings.Split(dir, string(filepath.Separator))
}
