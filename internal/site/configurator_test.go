package site

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/nav"
	"github.com/getlawrence/autodoc/internal/repository"
)

func newTestConfigurator(t *testing.T, log logger.Logger) *Configurator {
	t.Helper()
	c, err := NewConfigurator(log)
	if err != nil {
		t.Fatalf("NewConfigurator() error = %v", err)
	}
	return c.WithClock(func() time.Time { return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) })
}

func TestEnsureConfigScaffoldsFromTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkdocs.yml")
	c := newTestConfigurator(t, logger.Nop{})

	meta, err := repository.Resolve(repository.Params{PackageName: "tool", Username: "alice", Platform: "gitlab:example.org"})
	if err != nil {
		t.Fatal(err)
	}
	created, err := c.EnsureConfig(path, meta)
	if err != nil {
		t.Fatalf("EnsureConfig() error = %v", err)
	}
	if !created {
		t.Fatal("expected configuration to be created")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	wantHeader := "site_name: tool\n" +
		"site_author: 'alice'\n" +
		"copyright: '2026 - alice'\n" +
		"site_url: 'https://alice.pages.example.org/tool'\n" +
		"repo_url: 'https://gitlab.example.org/alice/tool'\n"
	if !strings.HasPrefix(content, wantHeader) {
		t.Errorf("header mismatch, got:\n%s", content)
	}
	if !strings.Contains(content, c.engine.SiteTemplate()) {
		t.Error("template body missing from generated configuration")
	}
}

func TestEnsureConfigWithoutUsername(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkdocs.yml")
	c := newTestConfigurator(t, logger.Nop{})

	if _, err := c.EnsureConfig(path, repository.Metadata{PackageName: "tool"}); err != nil {
		t.Fatalf("EnsureConfig() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "site_name: tool\ntheme:") {
		t.Errorf("unexpected header:\n%s", data)
	}
}

func TestEnsureConfigKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkdocs.yml")
	original := "site_name: custom\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	created, err := newTestConfigurator(t, logger.Nop{}).EnsureConfig(path, repository.Metadata{PackageName: "tool"})
	if err != nil {
		t.Fatalf("EnsureConfig() error = %v", err)
	}
	if created {
		t.Error("existing configuration must not be replaced")
	}
	if data, _ := os.ReadFile(path); string(data) != original {
		t.Errorf("file changed to %q", data)
	}
}

func navFixture() *nav.Map {
	m := nav.New()
	m.Ensure([]string{"core", "engine"}).SetLeaf("Engine", "core/engine/Engine.md")
	m.Ensure([]string{"helpers"}).SetLeaf("slug", "helpers/slug.md")
	return m
}

func TestAppendNavigationReplacesTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkdocs.yml")
	existing := "site_name: tool\nnav:\n    - Home : Index.md\n    - stale:\n        - 'old': 'old.md'\n"
	if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}
	c := newTestConfigurator(t, logger.Nop{})

	for i := 0; i < 2; i++ {
		if err := c.AppendNavigation(path, navFixture()); err != nil {
			t.Fatalf("AppendNavigation() error = %v", err)
		}
	}

	data, _ := os.ReadFile(path)
	want := "site_name: tool\nnav:\n    - Home : Index.md\n" +
		"    - core:\n" +
		"        - engine:\n" +
		"            - 'Engine': 'core/engine/Engine.md'\n" +
		"    - helpers:\n" +
		"        - 'slug': 'helpers/slug.md'\n"
	if string(data) != want {
		t.Errorf("AppendNavigation() wrote:\n%s\nwant:\n%s", data, want)
	}
}

func TestAppendNavigationRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkdocs.yml")
	c := newTestConfigurator(t, logger.Nop{})
	if _, err := c.EnsureConfig(path, repository.Metadata{PackageName: "tool"}); err != nil {
		t.Fatal(err)
	}
	if err := c.AppendNavigation(path, navFixture()); err != nil {
		t.Fatalf("AppendNavigation() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	parsed, err := nav.ReadConfig(data)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	want := nav.New()
	want.SetLeaf("Home", "index.md")
	want.Ensure([]string{"core", "engine"}).SetLeaf("Engine", "core/engine/Engine.md")
	want.Ensure([]string{"helpers"}).SetLeaf("slug", "helpers/slug.md")
	if !reflect.DeepEqual(parsed, want) {
		t.Errorf("navigation read back as:\n%s", nav.Render(parsed))
	}
}

func TestAppendNavigationWithoutAnchor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mkdocs.yml")
	if err := os.WriteFile(path, []byte("site_name: tool\nnav:"), 0644); err != nil {
		t.Fatal(err)
	}
	log := logger.NewMemoryLogger()

	if err := newTestConfigurator(t, log).AppendNavigation(path, navFixture()); err != nil {
		t.Fatalf("AppendNavigation() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "site_name: tool\nnav:\n    - core:\n") {
		t.Errorf("unexpected content:\n%s", data)
	}
	if len(log.Entries(logger.LevelWarn)) != 1 {
		t.Error("expected a warning about the missing anchor")
	}
}

func TestEnsureIndexPage(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	c := newTestConfigurator(t, logger.Nop{})

	created, err := c.EnsureIndexPage(docs, "tool")
	if err != nil || !created {
		t.Fatalf("EnsureIndexPage() = %v, %v", created, err)
	}
	data, _ := os.ReadFile(filepath.Join(docs, "index.md"))
	if want := "# tool\n\ntool source code documentation.\n"; string(data) != want {
		t.Errorf("index.md = %q, want %q", data, want)
	}

	created, err = c.EnsureIndexPage(docs, "other")
	if err != nil || created {
		t.Errorf("second EnsureIndexPage() = %v, %v; want false, nil", created, err)
	}
}

func TestIsHomeAnchor(t *testing.T) {
	for line, want := range map[string]bool{
		"    - Home: index.md\n": true,
		"  -  HOME :  INDEX.md":  true,
		"    - About: about.md":  false,
		"home: index.md":         false,
	} {
		if got := isHomeAnchor(line); got != want {
			t.Errorf("isHomeAnchor(%q) = %v, want %v", line, got, want)
		}
	}
}
