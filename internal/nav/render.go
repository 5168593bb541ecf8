package nav

import (
	"bufio"
	"io"
	"strings"
)

const indentUnit = "    "

// Write serializes m as the body of an mkdocs "nav:" list. Entries start one
// indentation level below "nav:" and go one level deeper per section.
// Sections are written as "- key:", leaves as "- 'key': 'path'".
func Write(w io.Writer, m *Map) error {
	bw := bufio.NewWriter(w)
	writeLevel(bw, m, 0)
	return bw.Flush()
}

// Render returns what Write would write
func Render(m *Map) string {
	var b strings.Builder
	_ = Write(&b, m)
	return b.String()
}

func writeLevel(w *bufio.Writer, m *Map, depth int) {
	indent := strings.Repeat(indentUnit, depth+1)
	for _, e := range m.Entries() {
		w.WriteString(indent)
		w.WriteString("- ")
		if e.IsSection() {
			w.WriteString(e.Key)
			w.WriteString(":\n")
			writeLevel(w, e.Children, depth+1)
			continue
		}
		w.WriteString(quote(e.Key))
		w.WriteString(": ")
		w.WriteString(quote(e.Leaf))
		w.WriteString("\n")
	}
}

// quote produces a YAML single-quoted scalar
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
