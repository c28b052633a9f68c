// Package patterns is the pattern library of the validation engine: a set of
// named, compiled regular expressions for syntactic token formats (hashtags,
// mentions, colors, addresses, handles, and similar).
//
// Patterns are compiled once at package initialization and are safe for
// concurrent use. Rule specs that declare no inline pattern resolve theirs
// here via Lookup, keyed by rule symbol:
//
//	re, ok := patterns.Lookup("hex_color")
//	if ok && re.MatchString("#fff") {
//		// valid
//	}
package patterns
