package checksum

import "strings"

// Luhn reports whether the value passes the Luhn mod-10 check.
// Spaces and hyphens are stripped first; anything else non-numeric, or an
// empty value, fails.
func Luhn(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if cleaned == "" || !allDigits(cleaned) {
		return false
	}

	sum := 0
	double := false

	// Walk digits right to left, doubling every second one.
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
