package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the autodoc configuration
type Config struct {
	// Directory receiving generated stub files, relative to the project path
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// Site configuration file, relative to the project path
	SiteConfig string `json:"site_config" yaml:"site_config"`

	// Regular expression selecting source files
	SourcePattern string `json:"source_pattern" yaml:"source_pattern"`

	// Module names (without extension) that are never documented
	SkipNames []string `json:"skip_names" yaml:"skip_names"`

	// Directory names ignored during discovery
	ExcludeDirs []string `json:"exclude_dirs" yaml:"exclude_dirs"`

	// Command used to build the static site
	BuildCommand []string `json:"build_command" yaml:"build_command"`

	// Extra "KEY=value" environment entries for the build command
	BuildEnv []string `json:"build_env,omitempty" yaml:"build_env,omitempty"`

	// Repository settings used to scaffold the site configuration
	Repository RepositoryConfig `json:"repository" yaml:"repository"`
}

// RepositoryConfig mirrors the repository flags of the generate command
type RepositoryConfig struct {
	// Package layout: "flat" or "src"
	Layout string `json:"layout" yaml:"layout"`

	// Owner of the repository
	Username string `json:"username" yaml:"username"`

	// "github" or "gitlab[:domain]"
	Platform string `json:"platform" yaml:"platform"`

	// Group and subgroups separated by "/"
	Groups string `json:"groups" yaml:"groups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DocsDir:       "docs",
		SiteConfig:    "mkdocs.yml",
		SourcePattern: `.*\.py$`,
		SkipNames:     []string{"__init__", "auto-doc"},
		ExcludeDirs: []string{
			".git",
			"__pycache__",
			".venv",
			"venv",
		},
		BuildCommand: []string{"mkdocs", "build", "--verbose"},
		Repository: RepositoryConfig{
			Layout:   "flat",
			Platform: "github",
		},
	}
}

// LoadConfig loads configuration from a YAML file layered over the defaults
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findConfigFile(".")
	}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveConfig writes configuration as YAML
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// findConfigFile looks for a config file in dir
func findConfigFile(dir string) string {
	candidates := []string{
		".autodoc.yaml",
		".autodoc.yml",
	}
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
