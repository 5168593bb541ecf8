// Package symbols collects the top-level functions and the classes defined
// in a Python source file.
package symbols

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getlawrence/autodoc/internal/domain"
	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"
)

// Docstring markers. A module whose docstring contains ModuleMarker is skipped
// entirely; a class or function whose docstring contains CallableMarker is
// left out of the results.
const (
	ModuleMarker   = "<EXCLUDE_MODULE_FROM_MKDOCSTRINGS>"
	CallableMarker = "<EXCLUDE_CALLABLE_FROM_MKDOCSTRINGS>"
)

// Extractor parses Python sources with tree-sitter
type Extractor struct {
	language *sitter.Language
}

func NewExtractor() *Extractor {
	return &Extractor{language: tspython.GetLanguage()}
}

// ModuleLabel is the label a file contributes to qualified names: its base name without extension
func ModuleLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ExtractFile reads and extracts the file at path
func (e *Extractor) ExtractFile(ctx context.Context, path string) (domain.Symbols, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Symbols{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	syms, err := e.Extract(ctx, content, ModuleLabel(path))
	if err != nil {
		return domain.Symbols{}, fmt.Errorf("%s: %w", path, err)
	}
	return syms, nil
}

// Extract visits the syntax tree of source. Functions are recorded only when
// they are direct children of the module; classes are recorded at any depth.
// Names are qualified with label, e.g. "mymodule.MyFunction".
//
// ErrParse is returned only when tree-sitter produces error nodes. The grammar
// still accepts some Python 2 constructs, such as the print statement, so
// those files are scanned instead of rejected.
func (e *Extractor) Extract(ctx context.Context, source []byte, label string) (domain.Symbols, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(e.language)

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return domain.Symbols{}, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return domain.Symbols{}, fmt.Errorf("%w in module %s%s", domain.ErrParse, label, errorLocation(root))
	}

	v := &visitor{source: source, context: []string{label}}
	v.visit(root)
	return v.out, nil
}

type visitor struct {
	source  []byte
	context []string
	out     domain.Symbols
}

func (v *visitor) visit(n *sitter.Node) {
	switch n.Type() {
	case "module":
		if strings.Contains(docstring(n, v.source), ModuleMarker) {
			return
		}
		v.visitChildren(n)

	case "function_definition":
		// async def parses to the same node kind
		v.enter(n, func() {
			if len(v.context) == 2 && !v.excluded(n) {
				v.out.Functions = append(v.out.Functions, v.qualifiedName())
			}
		})

	case "class_definition":
		v.enter(n, func() {
			if !v.excluded(n) {
				v.out.Classes = append(v.out.Classes, v.qualifiedName())
			}
		})

	case "lambda":
		// anonymous, nothing to record
		v.visitChildren(n)

	default:
		v.visitChildren(n)
	}
}

// enter pushes the definition name, runs record, visits the body and pops
func (v *visitor) enter(n *sitter.Node, record func()) {
	name := n.ChildByFieldName("name")
	if name == nil {
		v.visitChildren(n)
		return
	}
	v.context = append(v.context, name.Content(v.source))
	record()
	v.visitChildren(n)
	v.context = v.context[:len(v.context)-1]
}

func (v *visitor) visitChildren(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child != nil {
			v.visit(child)
		}
	}
}

func (v *visitor) excluded(def *sitter.Node) bool {
	body := def.ChildByFieldName("body")
	if body == nil {
		return false
	}
	return strings.Contains(docstring(body, v.source), CallableMarker)
}

func (v *visitor) qualifiedName() string {
	return strings.Join(v.context, ".")
}

func errorLocation(root *sitter.Node) string {
	var find func(n *sitter.Node) *sitter.Node
	find = func(n *sitter.Node) *sitter.Node {
		if n.IsError() || n.IsMissing() {
			return n
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child == nil || !child.HasError() && !child.IsMissing() {
				continue
			}
			if found := find(child); found != nil {
				return found
			}
		}
		return nil
	}
	if n := find(root); n != nil {
		p := n.StartPoint()
		return fmt.Sprintf(" (line %d, column %d)", p.Row+1, p.Column+1)
	}
	return ""
}
