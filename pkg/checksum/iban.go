package checksum

import "strings"

const (
	ibanMinLen = 15
	ibanMaxLen = 34
)

// IBAN reports whether the value passes the ISO 13616 mod-97 check.
// The first four characters (country code + check digits) move to the end,
// letters expand to their alphabetic values (A=10..Z=35), and the resulting
// decimal number must leave remainder 1 mod 97.
func IBAN(value string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if len(cleaned) < ibanMinLen || len(cleaned) > ibanMaxLen {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	// Country code must be alphabetic, check digits numeric.
	if cleaned[0] < 'A' || cleaned[1] < 'A' || cleaned[2] > '9' || cleaned[3] > '9' {
		return false
	}

	rearranged := cleaned[4:] + cleaned[:4]

	// Streaming mod-97 avoids materializing the full decimal expansion.
	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if c >= '0' && c <= '9' {
			rem = (rem*10 + int(c-'0')) % 97
		} else {
			rem = (rem*100 + int(c-'A') + 10) % 97
		}
	}
	return rem == 1
}
