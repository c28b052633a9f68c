package rules

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind selects how a rule executes.
type Kind string

const (
	KindRegex    Kind = "regex"
	KindChecksum Kind = "checksum"
)

// Spec is the declarative description of a single validation rule.
// Exactly one execution source applies: checksum specs name a method,
// regex specs either carry an inline pattern or resolve one from the
// pattern library by symbol convention.
type Spec struct {
	Symbol          string
	Kind            Kind
	Pattern         *regexp.Regexp // optional for KindRegex; library lookup otherwise
	ChecksumMethod  string         // required for KindChecksum
	SchemaType      string         // schema.org @type for JSON-LD, optional
	SchemaProperty  string         // schema.org property carrying the value, optional
	Description     string
	ErrorMessage    string
	ValidExamples   []string
	InvalidExamples []string
}

var (
	ErrDuplicateSymbol = errors.New("duplicate rule symbol")
	ErrMalformedSpec   = errors.New("malformed rule spec")
)

// verify checks the structural invariants that hold regardless of how the
// pattern or method resolves. Resolvability itself is the registry's concern.
func (s Spec) verify() error {
	if s.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrMalformedSpec)
	}
	switch s.Kind {
	case KindRegex:
		if s.ChecksumMethod != "" {
			return fmt.Errorf("%w: %s: regex rule declares checksum method %q", ErrMalformedSpec, s.Symbol, s.ChecksumMethod)
		}
	case KindChecksum:
		if s.ChecksumMethod == "" {
			return fmt.Errorf("%w: %s: checksum rule without method", ErrMalformedSpec, s.Symbol)
		}
		if s.Pattern != nil {
			return fmt.Errorf("%w: %s: checksum rule declares a pattern", ErrMalformedSpec, s.Symbol)
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrMalformedSpec, s.Symbol, s.Kind)
	}
	if s.ErrorMessage == "" {
		return fmt.Errorf("%w: %s: empty error message", ErrMalformedSpec, s.Symbol)
	}
	if len(s.ValidExamples) == 0 || len(s.InvalidExamples) == 0 {
		return fmt.Errorf("%w: %s: example sets must not be empty", ErrMalformedSpec, s.Symbol)
	}
	return nil
}
