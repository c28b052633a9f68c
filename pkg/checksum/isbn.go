package checksum

import "strings"

// ISBN reports whether the value is a valid ISBN-10 or ISBN-13.
// Hyphens and spaces are stripped before checking; the form is picked by
// length.
func ISBN(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	switch len(cleaned) {
	case 10:
		return isbn10(cleaned)
	case 13:
		return isbn13(cleaned)
	default:
		return false
	}
}

// isbn10 verifies the mod-11 weighted sum over positions 10..1.
// The final character may be 'X', representing a check value of 10.
func isbn10(s string) bool {
	sum := 0
	for i := 0; i < 10; i++ {
		var v int
		switch {
		case s[i] >= '0' && s[i] <= '9':
			v = int(s[i] - '0')
		case i == 9 && (s[i] == 'X' || s[i] == 'x'):
			v = 10
		default:
			return false
		}
		sum += v * (10 - i)
	}
	return sum%11 == 0
}

// isbn13 verifies the mod-10 sum with weights alternating 1,3.
func isbn13(s string) bool {
	if !allDigits(s) {
		return false
	}
	sum := 0
	for i := 0; i < 13; i++ {
		v := int(s[i] - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}
