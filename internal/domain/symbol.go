package domain

// SymbolKind tags a documented definition
type SymbolKind string

const (
	KindFunction SymbolKind = "function"
	KindClass    SymbolKind = "class"
)

// Symbols holds the qualified names ("module.name") collected from one source file,
// in discovery order.
type Symbols struct {
	Functions []string `json:"functions"`
	Classes   []string `json:"classes"`
}

// IsEmpty reports whether nothing worth documenting was found
func (s Symbols) IsEmpty() bool {
	return len(s.Functions) == 0 && len(s.Classes) == 0
}

// ByKind returns the names recorded for the given kind
func (s Symbols) ByKind(kind SymbolKind) []string {
	switch kind {
	case KindFunction:
		return s.Functions
	case KindClass:
		return s.Classes
	default:
		return nil
	}
}
