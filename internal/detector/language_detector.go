// Package detector selects the source files of a package worth documenting.
package detector

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/pathwalk"
	"github.com/go-enry/go-enry/v2"
)

// Python is the linguist name of the only language documented
const Python = "Python"

// Options selects which files FindSourceFiles returns
type Options struct {
	// Pattern is matched against each full path
	Pattern string
	// ExcludeDirs are directory names never descended into
	ExcludeDirs []string
	Logger      logger.Logger
}

// FindSourceFiles lists the Python files below packageRoot, relative to it,
// in natural order. Only directories named in ExcludeDirs are dropped.
func FindSourceFiles(packageRoot string, opts Options) ([]string, error) {
	files, err := pathwalk.Walk(packageRoot, pathwalk.Options{
		Pattern:  opts.Pattern,
		Relative: true,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	var out []string
	for _, rel := range files {
		if shouldSkipFile(rel, opts.ExcludeDirs) {
			continue
		}
		if lang := DetectFileLanguage(filepath.Join(packageRoot, rel)); lang != Python {
			if opts.Logger != nil {
				opts.Logger.Debugf("Ignoring %s (%s)", rel, displayLanguage(lang))
			}
			continue
		}
		out = append(out, rel)
	}
	return out, nil
}

// shouldSkipFile reports whether a relative path falls under an excluded directory
func shouldSkipFile(rel string, excludeDirs []string) bool {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts[:len(parts)-1] {
		for _, skipDir := range excludeDirs {
			if part == skipDir {
				return true
			}
		}
	}
	return false
}

// DetectFileLanguage identifies a file by extension, falling back to its content
func DetectFileLanguage(path string) string {
	lang, safe := enry.GetLanguageByExtension(path)
	if safe && lang != "" {
		return lang
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return enry.GetLanguage(path, content)
}

func displayLanguage(lang string) string {
	if lang == "" {
		return "unknown language"
	}
	return lang
}
