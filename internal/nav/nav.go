// Package nav holds the documentation site's navigation tree: an
// insertion-ordered nested map whose leaves are paths of generated pages.
package nav

// Map is an insertion-ordered mapping from a segment to either a nested Map
// or a leaf path. Setting an existing key replaces its value in place.
type Map struct {
	keys  []string
	items map[string]*item
}

type item struct {
	leaf     string
	children *Map
}

// Entry is a key of a Map with its value; exactly one of Leaf or Children is meaningful.
type Entry struct {
	Key      string
	Leaf     string
	Children *Map
}

// IsSection reports whether the entry is a nested map
func (e Entry) IsSection() bool {
	return e.Children != nil
}

func New() *Map {
	return &Map{items: make(map[string]*item)}
}

// Len returns the number of direct keys
func (m *Map) Len() int {
	return len(m.keys)
}

// Entries returns the direct entries in insertion order
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, len(m.keys))
	for _, k := range m.keys {
		it := m.items[k]
		out = append(out, Entry{Key: k, Leaf: it.leaf, Children: it.children})
	}
	return out
}

// Section returns the nested map stored under key
func (m *Map) Section(key string) (*Map, bool) {
	it, ok := m.items[key]
	if !ok || it.children == nil {
		return nil, false
	}
	return it.children, true
}

// Leaf returns the path stored under key
func (m *Map) Leaf(key string) (string, bool) {
	it, ok := m.items[key]
	if !ok || it.children != nil {
		return "", false
	}
	return it.leaf, true
}

// Ensure walks segments from m, creating the sections that are missing, and
// returns the innermost one. A leaf found on the way is replaced by a section.
func (m *Map) Ensure(segments []string) *Map {
	if len(segments) == 0 {
		return m
	}
	head := segments[0]
	it, ok := m.items[head]
	if !ok {
		it = &item{}
		m.items[head] = it
		m.keys = append(m.keys, head)
	}
	if it.children == nil {
		it.children = New()
		it.leaf = ""
	}
	return it.children.Ensure(segments[1:])
}

// SetLeaf stores path under key, keeping the key's position if it already exists
func (m *Map) SetLeaf(key, path string) {
	if it, ok := m.items[key]; ok {
		it.leaf = path
		it.children = nil
		return
	}
	m.items[key] = &item{leaf: path}
	m.keys = append(m.keys, key)
}

// Leaves returns every leaf path below m, depth first
func (m *Map) Leaves() []string {
	var out []string
	for _, e := range m.Entries() {
		if e.IsSection() {
			out = append(out, e.Children.Leaves()...)
			continue
		}
		out = append(out, e.Leaf)
	}
	return out
}
