package rules

import "fmt"

// Table is a read-only collection of rule specs keyed by symbol.
// It preserves declaration order for discovery endpoints.
type Table struct {
	specs   map[string]Spec
	symbols []string
}

// NewTable builds a table from the given specs, rejecting duplicates and
// structurally malformed entries.
func NewTable(specs ...Spec) (*Table, error) {
	t := &Table{
		specs:   make(map[string]Spec, len(specs)),
		symbols: make([]string, 0, len(specs)),
	}
	for _, s := range specs {
		if err := s.verify(); err != nil {
			return nil, err
		}
		if _, exists := t.specs[s.Symbol]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, s.Symbol)
		}
		t.specs[s.Symbol] = s
		t.symbols = append(t.symbols, s.Symbol)
	}
	return t, nil
}

// Get returns the spec registered under the given symbol.
func (t *Table) Get(symbol string) (Spec, bool) {
	s, ok := t.specs[symbol]
	return s, ok
}

// Symbols returns all rule symbols in declaration order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}
