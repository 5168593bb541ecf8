// Package site scaffolds and updates the mkdocs configuration of a project.
package site

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/nav"
	"github.com/getlawrence/autodoc/internal/repository"
)

// homeAnchor marks the last line kept from an existing configuration, compared
// lower-cased with spaces removed
const homeAnchor = "-home:index.md"

// Configurator owns the site configuration file and the docs landing page
type Configurator struct {
	log    logger.Logger
	engine *TemplateEngine
	now    func() time.Time
}

// NewConfigurator creates a configurator using the embedded templates
func NewConfigurator(log logger.Logger) (*Configurator, error) {
	engine, err := NewTemplateEngine()
	if err != nil {
		return nil, err
	}
	return &Configurator{log: log, engine: engine, now: time.Now}, nil
}

// WithClock overrides the clock used for the copyright year
func (c *Configurator) WithClock(now func() time.Time) *Configurator {
	c.now = now
	return c
}

// EnsureConfig writes a new configuration at path unless one already exists.
// An existing file is left untouched.
func (c *Configurator) EnsureConfig(path string, meta repository.Metadata) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		c.log.Debugf("Using existing site configuration %s", path)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	c.log.Infof("No mkdocs file is present in package. Auto generating one")
	header, err := c.engine.Header(HeaderData{
		SiteName: meta.PackageName,
		Author:   meta.Username,
		Year:     c.now().Format("2006"),
		SiteURL:  meta.SiteURL,
		RepoURL:  meta.RepoURL,
	})
	if err != nil {
		return false, err
	}

	content := header + c.engine.SiteTemplate() + "\n"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// AppendNavigation rewrites path keeping every line up to and including the
// "- Home: index.md" entry, followed by the serialized navigation map.
// Anything that followed the anchor is dropped.
func (c *Configurator) AppendNavigation(path string, m *nav.Map) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var out bytes.Buffer
	anchored := false
	reader := bufio.NewReader(bytes.NewReader(data))
	for {
		line, readErr := reader.ReadString('\n')
		out.WriteString(line)
		if isHomeAnchor(line) {
			anchored = true
			break
		}
		if readErr != nil {
			break
		}
	}
	if !anchored {
		c.log.Warnf("No '- Home: index.md' entry found in %s, navigation appended at the end", path)
	}
	if out.Len() > 0 && !bytes.HasSuffix(out.Bytes(), []byte("\n")) {
		out.WriteByte('\n')
	}
	if err := nav.Write(&out, m); err != nil {
		return fmt.Errorf("failed to serialize navigation: %w", err)
	}

	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// EnsureIndexPage creates <docsDir>/index.md when it does not exist
func (c *Configurator) EnsureIndexPage(docsDir, packageName string) (bool, error) {
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", docsDir, err)
	}
	indexPath := filepath.Join(docsDir, "index.md")
	if _, err := os.Stat(indexPath); err == nil {
		return false, nil
	}
	content, err := c.engine.Index(IndexData{PackageName: packageName})
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(indexPath, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", indexPath, err)
	}
	c.log.Infof("Created landing page %s", indexPath)
	return true, nil
}

func isHomeAnchor(line string) bool {
	return strings.Contains(strings.ToLower(strings.ReplaceAll(line, " ", "")), homeAnchor)
}
