package checksum

import "strings"

// vinWeights are the per-position multipliers of the standard VIN check,
// with position 9 (the check digit itself) weighted zero.
var vinWeights = [17]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// vinValues transliterates VIN letters to digits per the published table.
// I, O, and Q are not valid VIN characters.
var vinValues = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// VIN reports whether the value is a 17-character Vehicle Identification
// Number whose computed check character matches position 9. A computed
// remainder of 10 maps to 'X'.
func VIN(value string) bool {
	vin := strings.ToUpper(value)
	if len(vin) != 17 {
		return false
	}

	sum := 0
	for i := 0; i < 17; i++ {
		c := vin[i]
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		default:
			var ok bool
			v, ok = vinValues[c]
			if !ok {
				return false
			}
		}
		sum += v * vinWeights[i]
	}

	var check byte
	if rem := sum % 11; rem == 10 {
		check = 'X'
	} else {
		check = byte('0' + rem)
	}
	return vin[8] == check
}
