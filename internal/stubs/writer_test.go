package stubs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/getlawrence/autodoc/internal/domain"
	"github.com/getlawrence/autodoc/internal/logger"
	"github.com/getlawrence/autodoc/internal/nav"
	"github.com/getlawrence/autodoc/internal/symbols"
)

type fixture struct {
	pkgRoot string
	docsDir string
	files   []string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	root := t.TempDir()
	pkgRoot := filepath.Join(root, "tool")
	sources := map[string]string{
		"__init__.py": "def exported():\n    pass\n",
		"engine.py": `class Engine:
    def run(self):
        pass


def start():
    pass
`,
		"io/readers.py":   "def read_csv(path):\n    pass\n",
		"io/constants.py": "LIMIT = 3\n",
	}
	for rel, content := range sources {
		path := filepath.Join(pkgRoot, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fixture{
		pkgRoot: pkgRoot,
		docsDir: filepath.Join(root, "docs"),
		files: []string{
			"__init__.py",
			"engine.py",
			filepath.Join("io", "constants.py"),
			filepath.Join("io", "readers.py"),
		},
	}
}

func (f fixture) writer(log logger.Logger) *Writer {
	return NewWriter(f.docsDir, []string{"__init__", "auto-doc"}, symbols.NewExtractor(), log)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestWriteAllStubsAndNavigation(t *testing.T) {
	f := newFixture(t)

	navMap, err := f.writer(logger.Nop{}).WriteAll(context.Background(), f.files, f.pkgRoot, "tool")
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	want := "" +
		"    - engine:\n" +
		"        - 'Engine': 'engine/Engine.md'\n" +
		"        - 'start': 'engine/start.md'\n" +
		"    - io:\n" +
		"        - readers:\n" +
		"            - 'read_csv': 'io/readers/read_csv.md'\n"
	if got := nav.Render(navMap); got != want {
		t.Errorf("navigation =\n%s\nwant\n%s", got, want)
	}

	if got := readFile(t, filepath.Join(f.docsDir, "engine", "Engine.md")); got != Directive("tool.engine.Engine", domain.KindClass) {
		t.Errorf("Engine.md = %q", got)
	}
	if got := readFile(t, filepath.Join(f.docsDir, "io", "readers", "read_csv.md")); got != Directive("tool.io.readers.read_csv", domain.KindFunction) {
		t.Errorf("read_csv.md = %q", got)
	}

	if _, err := os.Stat(filepath.Join(f.docsDir, "io", "constants")); !os.IsNotExist(err) {
		t.Error("files without symbols must not get a directory")
	}
	if _, err := os.Stat(filepath.Join(f.docsDir, "__init__")); !os.IsNotExist(err) {
		t.Error("__init__ must be skipped")
	}
}

func TestDirectiveContent(t *testing.T) {
	want := "::: tool.engine.start\n" +
		"    handler: python\n" +
		"    options:\n" +
		"      show_root_heading: true\n" +
		"      show_root_full_path : false\n" +
		"      show_object_full_path : true\n" +
		"      show_category_heading : false\n" +
		"      separate_signature : true\n" +
		"      heading_level : 1"
	if got := Directive("tool.engine.start", domain.KindFunction); got != want {
		t.Errorf("Directive() = %q, want %q", got, want)
	}
}

func TestWriteAllTwiceIsIdempotent(t *testing.T) {
	f := newFixture(t)
	stubs := []string{
		filepath.Join(f.docsDir, "engine", "Engine.md"),
		filepath.Join(f.docsDir, "engine", "start.md"),
		filepath.Join(f.docsDir, "io", "readers", "read_csv.md"),
	}

	first := logger.NewMemoryLogger()
	if _, err := f.writer(first).WriteAll(context.Background(), f.files, f.pkgRoot, "tool"); err != nil {
		t.Fatalf("first WriteAll() error = %v", err)
	}
	before := make(map[string]string)
	for _, s := range stubs {
		before[s] = readFile(t, s)
	}

	second := logger.NewMemoryLogger()
	if _, err := f.writer(second).WriteAll(context.Background(), f.files, f.pkgRoot, "tool"); err != nil {
		t.Fatalf("second WriteAll() error = %v", err)
	}
	for _, s := range stubs {
		if got := readFile(t, s); got != before[s] {
			t.Errorf("%s changed between runs", s)
		}
	}

	if n := len(first.Entries(logger.LevelWarn)); n != 0 {
		t.Errorf("first run logged %d warnings, want 0", n)
	}
	if n := len(second.Entries(logger.LevelWarn)); n != len(stubs) {
		t.Errorf("second run logged %d warnings, want %d", n, len(stubs))
	}
	if n := len(second.Entries(logger.LevelError)); n != 0 {
		t.Errorf("second run logged %d errors", n)
	}
}

func TestWriteAllStopsOnSyntaxError(t *testing.T) {
	f := newFixture(t)
	if err := os.WriteFile(filepath.Join(f.pkgRoot, "broken.py"), []byte("def broken(:\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := f.writer(logger.Nop{}).WriteAll(context.Background(), append(f.files, "broken.py"), f.pkgRoot, "tool")
	if !errors.Is(err, domain.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

type stubExtractor map[string]domain.Symbols

func (s stubExtractor) ExtractFile(_ context.Context, path string) (domain.Symbols, error) {
	return s[filepath.Base(path)], nil
}

func TestWriteAllNestedClassUsesEnclosingName(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "docs")
	extractor := stubExtractor{
		"shapes.py": {
			Classes:   []string{"shapes.Shape", "shapes.Shape.Meta"},
			Functions: []string{"shapes.area"},
		},
	}
	log := logger.NewMemoryLogger()

	navMap, err := NewWriter(docs, nil, extractor, log).WriteAll(context.Background(), []string{"shapes.py"}, "/src/tool", "tool")
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	section, _ := navMap.Section("shapes")
	var keys []string
	for _, e := range section.Entries() {
		keys = append(keys, e.Key)
	}
	if want := []string{"Shape", "area"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if n := len(log.Entries(logger.LevelWarn)); n != 1 {
		t.Errorf("expected the nested class to overwrite its parent stub once, got %d warnings", n)
	}
}

func TestPruneRemovesStaleStubs(t *testing.T) {
	f := newFixture(t)
	if _, err := f.writer(logger.Nop{}).WriteAll(context.Background(), f.files, f.pkgRoot, "tool"); err != nil {
		t.Fatal(err)
	}
	handWritten := filepath.Join(f.docsDir, "guide.md")
	if err := os.WriteFile(handWritten, []byte("# Guide\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// readers.py disappears from the package
	w := f.writer(logger.Nop{})
	if _, err := w.WriteAll(context.Background(), f.files[:3], f.pkgRoot, "tool"); err != nil {
		t.Fatal(err)
	}
	removed, err := w.Prune()
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if want := []string{filepath.Join(f.docsDir, "io", "readers", "read_csv.md")}; !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
	if _, err := os.Stat(filepath.Join(f.docsDir, "io")); !os.IsNotExist(err) {
		t.Error("empty directories should be removed")
	}
	if _, err := os.Stat(handWritten); err != nil {
		t.Error("hand-written pages must survive pruning")
	}
	if _, err := os.Stat(filepath.Join(f.docsDir, "engine", "start.md")); err != nil {
		t.Error("current stubs must survive pruning")
	}
}
