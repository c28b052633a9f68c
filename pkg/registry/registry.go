// Package registry resolves rule symbols into executable validator units.
// It is the single place where kind dispatch happens: checksum specs bind a
// named algorithm, regex specs bind an inline or library pattern. Units are
// constructed lazily, memoized for the process lifetime, and safe for
// concurrent reuse.
package registry

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/validkit/pkg/checksum"
	"github.com/dmitrymomot/validkit/pkg/patterns"
	"github.com/dmitrymomot/validkit/pkg/rules"
)

// Registry maps rule symbols to memoized validator units.
// The zero value is not usable; construct with New.
type Registry struct {
	table *rules.Table

	mu    sync.RWMutex
	units map[string]*Unit
}

// New creates a registry over the given rule table.
func New(table *rules.Table) *Registry {
	return &Registry{
		table: table,
		units: make(map[string]*Unit, table.Len()),
	}
}

// Resolve returns the unit for the given symbol, constructing and caching it
// on first use. It returns ErrNotFound for unknown symbols and
// ErrSpecIncomplete when a spec's pattern or checksum method cannot be bound.
func (r *Registry) Resolve(symbol string) (*Unit, error) {
	r.mu.RLock()
	unit, ok := r.units[symbol]
	r.mu.RUnlock()
	if ok {
		return unit, nil
	}

	spec, ok := r.table.Get(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}

	built, err := build(spec)
	if err != nil {
		return nil, err
	}

	// First writer wins so concurrent resolvers observe a single unit.
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.units[symbol]; ok {
		return existing, nil
	}
	r.units[symbol] = built
	return built, nil
}

// Symbols returns all known rule symbols in table order.
func (r *Registry) Symbols() []string {
	return r.table.Symbols()
}

// Warm resolves every symbol in the table, surfacing incomplete specs as a
// startup failure instead of a request-time one.
func (r *Registry) Warm() error {
	for _, symbol := range r.table.Symbols() {
		if _, err := r.Resolve(symbol); err != nil {
			return err
		}
	}
	return nil
}

func build(spec rules.Spec) (*Unit, error) {
	switch spec.Kind {
	case rules.KindChecksum:
		fn, ok := checksum.Method(spec.ChecksumMethod)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown checksum method %q", ErrSpecIncomplete, spec.Symbol, spec.ChecksumMethod)
		}
		return &Unit{spec: spec, method: fn}, nil
	case rules.KindRegex:
		re := spec.Pattern
		if re == nil {
			var ok bool
			re, ok = patterns.Lookup(spec.Symbol)
			if !ok {
				return nil, fmt.Errorf("%w: %s: no pattern declared and none in the library", ErrSpecIncomplete, spec.Symbol)
			}
		}
		return &Unit{spec: spec, pattern: re}, nil
	default:
		return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrSpecIncomplete, spec.Symbol, spec.Kind)
	}
}
