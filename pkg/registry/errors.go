package registry

import "errors"

var (
	// ErrNotFound indicates the symbol has no spec in the rule table.
	ErrNotFound = errors.New("validator not found")
	// ErrSpecIncomplete indicates a declared rule has neither a resolvable
	// pattern nor a known checksum method. This is a configuration defect;
	// surface it at startup via Warm rather than at request time.
	ErrSpecIncomplete = errors.New("validator spec incomplete")
)
