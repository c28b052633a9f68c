package registry

import (
	"regexp"

	"github.com/dmitrymomot/validkit/pkg/checksum"
	"github.com/dmitrymomot/validkit/pkg/rules"
)

// Unit is the resolved, executable form of a rule spec. It holds either a
// compiled pattern or a bound checksum function, never both. Units are
// stateless and safe for concurrent use.
type Unit struct {
	spec    rules.Spec
	pattern *regexp.Regexp
	method  checksum.Func
}

// Validate checks the value against the rule. A nil return means valid;
// otherwise the spec's error message is returned.
func (u *Unit) Validate(value string) []string {
	var ok bool
	if u.method != nil {
		ok = u.method(value)
	} else {
		ok = u.pattern.MatchString(value)
	}
	if ok {
		return nil
	}
	return []string{u.spec.ErrorMessage}
}

// Spec returns the declarative spec this unit was built from.
func (u *Unit) Spec() rules.Spec {
	return u.spec
}

// Regex returns the pattern source for regex units, or "" for checksum units.
func (u *Unit) Regex() string {
	if u.pattern == nil {
		return ""
	}
	return u.pattern.String()
}
