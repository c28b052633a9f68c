// Package checksum implements check-digit verification for common identifier
// families: Luhn, ISBN-10/13, ISSN, IBAN, EAN-13, UPC-A, and VIN.
//
// Every algorithm is a pure func(string) bool, safe for concurrent use.
// Inputs of the wrong length or containing disallowed characters are rejected
// before any arithmetic runs; checksum formulas are undefined on malformed
// input, so the guard is part of the contract rather than an optimization.
//
// Method exposes the algorithms by name so a declarative rule table can bind
// to them without referencing functions directly:
//
//	fn, ok := checksum.Method("luhn")
//	if ok && fn("4111 1111 1111 1111") {
//		// valid card number
//	}
package checksum
