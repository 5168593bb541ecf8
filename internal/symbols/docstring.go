package symbols

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// docstring returns the text of the leading string literal of a module or a
// block, or "" when the first statement is not a plain string.
func docstring(container *sitter.Node, source []byte) string {
	for i := 0; i < int(container.NamedChildCount()); i++ {
		stmt := container.NamedChild(i)
		if stmt == nil || stmt.Type() == "comment" {
			continue
		}
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
			return ""
		}
		expr := stmt.NamedChild(0)
		switch expr.Type() {
		case "string":
			text, _ := literalText(expr.Content(source))
			return text
		case "concatenated_string":
			var b strings.Builder
			for j := 0; j < int(expr.NamedChildCount()); j++ {
				part := expr.NamedChild(j)
				if part.Type() != "string" {
					continue
				}
				text, ok := literalText(part.Content(source))
				if !ok {
					return ""
				}
				b.WriteString(text)
			}
			return b.String()
		default:
			return ""
		}
	}
	return ""
}

// literalText strips prefix and quotes from a string literal. Bytes and
// f-strings are not docstrings.
func literalText(lit string) (string, bool) {
	start := strings.IndexAny(lit, `'"`)
	if start < 0 {
		return "", false
	}
	prefix := strings.ToLower(lit[:start])
	if strings.ContainsAny(prefix, "fb") {
		return "", false
	}
	body := lit[start:]
	quote := body[:1]
	if strings.HasPrefix(body, strings.Repeat(quote, 3)) && len(body) >= 6 {
		quote = strings.Repeat(quote, 3)
	}
	if len(body) < 2*len(quote) {
		return "", false
	}
	return body[len(quote) : len(body)-len(quote)], true
}
