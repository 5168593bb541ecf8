package site

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*
var templateFS embed.FS

// HeaderData fills the metadata lines written at the top of a new site configuration
type HeaderData struct {
	SiteName string
	Author   string
	Year     string
	SiteURL  string
	RepoURL  string
}

// IndexData fills the landing page of the docs directory
type IndexData struct {
	PackageName string
}

// TemplateEngine handles template loading and execution
type TemplateEngine struct {
	templates map[string]*template.Template
	raw       map[string]string
}

// NewTemplateEngine loads the embedded templates
func NewTemplateEngine() (*TemplateEngine, error) {
	engine := &TemplateEngine{
		templates: make(map[string]*template.Template),
		raw:       make(map[string]string),
	}
	if err := engine.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return engine, nil
}

// Header renders the site metadata lines
func (e *TemplateEngine) Header(data HeaderData) (string, error) {
	return e.execute("header.yml", data)
}

// Index renders docs/index.md
func (e *TemplateEngine) Index(data IndexData) (string, error) {
	return e.execute("index.md", data)
}

// SiteTemplate returns the bundled mkdocs configuration body, verbatim
func (e *TemplateEngine) SiteTemplate() string {
	return e.raw["mkdocs.yml"]
}

func (e *TemplateEngine) execute(key string, data interface{}) (string, error) {
	tmpl, exists := e.templates[key]
	if !exists {
		return "", fmt.Errorf("template %s not found", key)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template %s execution failed: %w", key, err)
	}
	return buf.String(), nil
}

func (e *TemplateEngine) loadTemplates() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return err
		}
		// Remove .tmpl extension for key
		key := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(key).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", entry.Name(), err)
		}
		e.templates[key] = tmpl
		e.raw[key] = string(content)
	}
	return nil
}
