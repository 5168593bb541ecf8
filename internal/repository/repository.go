// Package repository derives where a documented package lives: its source
// directory inside the project and, when the owner is known, the URLs of the
// hosted repository and of the published documentation site.
package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/getlawrence/autodoc/internal/domain"
)

const (
	LayoutFlat = "flat"
	LayoutSrc  = "src"

	PlatformGitHub = "github"
	PlatformGitLab = "gitlab"

	defaultDomain = "com"
)

// Params are the user supplied repository settings
type Params struct {
	PackageName string
	ProjectPath string
	Layout      string
	Username    string
	// Platform is "github" or "gitlab", optionally followed by ":<domain>"
	Platform string
	// Groups is a "/" separated group path, e.g. "lab/analysis-packages"
	Groups string
}

// Metadata is the resolved view of a repository
type Metadata struct {
	PackageName string
	ProjectPath string
	PackagePath string
	Layout      string
	Username    string
	Platform    string
	Domain      string
	Group       string
	Subgroups   []string
	// RepoURL and SiteURL are empty when no username is known
	RepoURL string
	SiteURL string
}

// Resolve validates params and computes the package path and URLs
func Resolve(p Params) (Metadata, error) {
	layout := p.Layout
	if layout == "" {
		layout = LayoutFlat
	}
	if layout != LayoutFlat && layout != LayoutSrc {
		return Metadata{}, fmt.Errorf("%w: unknown layout %q, expected %q or %q", domain.ErrInvalidInput, layout, LayoutFlat, LayoutSrc)
	}

	platform, host := SplitPlatform(p.Platform)
	group, subgroups := SplitGroups(p.Groups)

	m := Metadata{
		PackageName: p.PackageName,
		ProjectPath: p.ProjectPath,
		PackagePath: PackagePath(p.ProjectPath, p.PackageName, layout),
		Layout:      layout,
		Username:    p.Username,
		Platform:    platform,
		Domain:      host,
		Group:       group,
		Subgroups:   subgroups,
	}
	if p.Username == "" {
		return m, nil
	}

	m.RepoURL = RepoURL(platform, host, p.Username, group, subgroups, p.PackageName)
	siteURL, err := SiteURL(platform, host, p.Username, group, subgroups, p.PackageName)
	if err != nil {
		return Metadata{}, err
	}
	m.SiteURL = siteURL
	return m, nil
}

// PackagePath locates the package sources for a layout
func PackagePath(projectPath, packageName, layout string) string {
	if layout == LayoutSrc {
		return filepath.Join(projectPath, "src", packageName)
	}
	return filepath.Join(projectPath, packageName)
}

// SplitPlatform splits "gitlab:example.org" into its platform and domain.
// The domain defaults to "com".
func SplitPlatform(value string) (platform, host string) {
	if value == "" {
		value = PlatformGitHub
	}
	parts := strings.Split(value, ":")
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], defaultDomain
}

// SplitGroups splits "a/b/c" into the top group "a" and subgroups [b c]
func SplitGroups(value string) (group string, subgroups []string) {
	if value == "" {
		return "", nil
	}
	parts := strings.Split(value, "/")
	return parts[0], parts[1:]
}

// RepoURL is https://<platform>.<domain>/<group path or username>/<package>
func RepoURL(platform, host, username, group string, subgroups []string, pkg string) string {
	var segments []string
	if group != "" {
		segments = append(append([]string{group}, subgroups...), pkg)
	} else {
		segments = []string{username, pkg}
	}
	return fmt.Sprintf("https://%s.%s/%s", platform, host, strings.Join(segments, "/"))
}

// SiteURL is the address of the published pages. The top group (or the
// username) becomes the host prefix; subgroups stay in the path.
func SiteURL(platform, host, username, group string, subgroups []string, pkg string) (string, error) {
	prefix := username
	if group != "" {
		prefix = group
	}

	var suffix string
	switch platform {
	case PlatformGitHub:
		suffix = "github.io"
	case PlatformGitLab:
		if host == defaultDomain {
			suffix = "gitlab.io"
		} else {
			suffix = "pages." + host
		}
	default:
		return "", fmt.Errorf("%w: platform can only be %s or %s, got %q", domain.ErrConfiguration, PlatformGitHub, PlatformGitLab, platform)
	}

	path := strings.Join(append(append([]string{}, subgroups...), pkg), "/")
	return fmt.Sprintf("https://%s.%s/%s", prefix, suffix, path), nil
}
