// Package autodoc runs one documentation generation: it discovers the Python
// sources of a package, writes a stub per documented symbol, scaffolds and
// updates the site configuration and optionally builds the site.
package autodoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getlawrence/autodoc/internal/config"
	"github.com/getlawrence/autodoc/internal/detector"
	"github.com/getlawrence/autodoc/internal/domain"
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/nav"
	"github.com/getlawrence/autodoc/internal/repository"
	"github.com/getlawrence/autodoc/internal/site"
	"github.com/getlawrence/autodoc/internal/sitebuild"
	"github.com/getlawrence/autodoc/internal/stubs"
	"github.com/getlawrence/autodoc/internal/symbols"
)

// StepRunner executes a long step, e.g. behind a spinner
type StepRunner func(ctx context.Context, title string, step func(ctx context.Context) error) error

func runPlain(ctx context.Context, _ string, step func(ctx context.Context) error) error {
	return step(ctx)
}

// Options describe one run
type Options struct {
	PackageName string
	ProjectPath string
	Layout      string
	Username    string
	Platform    string
	Groups      string
	Build       bool
	Prune       bool
}

// Result summarizes what a run produced
type Result struct {
	Metadata      repository.Metadata
	SourceFiles   []string
	Stubs         int
	Pruned        []string
	ConfigCreated bool
	IndexCreated  bool
	BuildOutput   string

	// MissingPages are navigation targets with no file below the docs directory
	MissingPages []string
}

// Generator coordinates discovery -> stubs -> site configuration -> build
type Generator struct {
	cfg          *config.Config
	log          logger.Logger
	extractor    stubs.Extractor
	configurator *site.Configurator
	commander    sitebuild.Commander
	runStep      StepRunner
}

// NewGenerator creates a generator. commander runs the site build.
func NewGenerator(cfg *config.Config, commander sitebuild.Commander, log logger.Logger) (*Generator, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	configurator, err := site.NewConfigurator(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load site templates: %w", err)
	}
	return &Generator{
		cfg:          cfg,
		log:          log,
		extractor:    symbols.NewExtractor(),
		configurator: configurator,
		commander:    commander,
		runStep:      runPlain,
	}, nil
}

// WithStepRunner wraps the site build in runner
func (g *Generator) WithStepRunner(runner StepRunner) *Generator {
	if runner != nil {
		g.runStep = runner
	}
	return g
}

// WithClock overrides the clock used when scaffolding the site configuration
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.configurator.WithClock(now)
	return g
}

// Run generates the documentation of opts.PackageName
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.PackageName == "" {
		return nil, fmt.Errorf("%w: package name is required", domain.ErrInvalidInput)
	}
	layout := opts.Layout
	if layout == "" {
		layout = g.cfg.Repository.Layout
	}
	meta, err := repository.Resolve(repository.Params{
		PackageName: opts.PackageName,
		ProjectPath: opts.ProjectPath,
		Layout:      layout,
		Username:    firstNonEmpty(opts.Username, g.cfg.Repository.Username),
		Platform:    firstNonEmpty(opts.Platform, g.cfg.Repository.Platform),
		Groups:      firstNonEmpty(opts.Groups, g.cfg.Repository.Groups),
	})
	if err != nil {
		return nil, err
	}
	result := &Result{Metadata: meta}

	g.log.Infof("Working path is : %s", meta.ProjectPath)
	g.log.Infof("Package layout is : %s", meta.Layout)
	g.log.Infof("Root package path is %s", meta.PackagePath)

	docsDir := filepath.Join(meta.ProjectPath, g.cfg.DocsDir)
	sitePath := filepath.Join(meta.ProjectPath, g.cfg.SiteConfig)

	if result.IndexCreated, err = g.configurator.EnsureIndexPage(docsDir, meta.PackageName); err != nil {
		return nil, err
	}
	if result.ConfigCreated, err = g.configurator.EnsureConfig(sitePath, meta); err != nil {
		return nil, err
	}

	files, err := detector.FindSourceFiles(meta.PackagePath, detector.Options{
		Pattern:     g.cfg.SourcePattern,
		ExcludeDirs: g.cfg.ExcludeDirs,
		Logger:      g.log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sources of %s: %w", meta.PackageName, err)
	}
	result.SourceFiles = files
	g.log.Infof("Matched package files are :%s", bulletList(files))

	writer := stubs.NewWriter(docsDir, g.cfg.SkipNames, g.extractor, g.log)
	navMap, err := writer.WriteAll(ctx, files, meta.PackagePath, meta.PackageName)
	if err != nil {
		return nil, err
	}
	result.Stubs = len(writer.Written())
	g.log.Infof("Wrote %d doc files in %s", result.Stubs, docsDir)

	if opts.Prune {
		if result.Pruned, err = writer.Prune(); err != nil {
			return nil, fmt.Errorf("failed to prune stale doc files: %w", err)
		}
	}

	if err := g.configurator.AppendNavigation(sitePath, navMap); err != nil {
		return nil, err
	}
	result.MissingPages = g.verifyNavigation(sitePath, docsDir)

	if opts.Build {
		builder := sitebuild.NewBuilder(g.cfg.BuildCommand, g.commander, g.log)
		err := g.runStep(ctx, "Building documentation site", func(ctx context.Context) error {
			out, err := builder.Build(ctx, meta.ProjectPath)
			result.BuildOutput = out
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// verifyNavigation reads the site configuration back and reports the
// navigation targets that do not exist. Unreadable configurations are only logged.
func (g *Generator) verifyNavigation(sitePath, docsDir string) []string {
	data, err := os.ReadFile(sitePath)
	if err != nil {
		g.log.Warnf("Could not read back %s: %v", sitePath, err)
		return nil
	}
	navMap, err := nav.ReadConfig(data)
	if err != nil {
		g.log.Warnf("Could not verify navigation of %s: %v", sitePath, err)
		return nil
	}

	var missing []string
	for _, page := range navMap.Leaves() {
		if strings.Contains(page, "://") {
			continue
		}
		if _, err := os.Stat(filepath.Join(docsDir, filepath.FromSlash(page))); err != nil {
			g.log.Warnf("Navigation entry %s points to a missing page", page)
			missing = append(missing, page)
		}
	}
	return missing
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("\n\t - ")
		b.WriteString(filepath.ToSlash(item))
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
