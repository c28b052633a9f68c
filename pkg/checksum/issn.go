package checksum

import "strings"

// ISSN reports whether the value is a valid International Standard Serial
// Number: eight characters (hyphen optional), last may be 'X' for a check
// value of 10, weighted 8..1 mod 11.
func ISSN(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if len(cleaned) != 8 {
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		var v int
		switch {
		case cleaned[i] >= '0' && cleaned[i] <= '9':
			v = int(cleaned[i] - '0')
		case i == 7 && (cleaned[i] == 'X' || cleaned[i] == 'x'):
			v = 10
		default:
			return false
		}
		sum += v * (8 - i)
	}
	return sum%11 == 0
}
