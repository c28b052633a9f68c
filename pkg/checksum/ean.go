package checksum

// EAN13 reports whether the value is a valid 13-digit European Article
// Number. The first twelve digits are weighted alternating 1,3; the check
// digit must equal (10 - sum mod 10) mod 10.
func EAN13(value string) bool {
	if len(value) != 13 || !allDigits(value) {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		v := int(value[i] - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	check := (10 - sum%10) % 10
	return check == int(value[12]-'0')
}

// UPCA reports whether the value is a valid 12-digit UPC-A code. Same
// alternating-weight scheme as EAN-13 restricted to 12 positions, with odd
// positions weighted 3.
func UPCA(value string) bool {
	if len(value) != 12 || !allDigits(value) {
		return false
	}

	sum := 0
	for i := 0; i < 11; i++ {
		v := int(value[i] - '0')
		if i%2 == 0 {
			v *= 3
		}
		sum += v
	}
	check := (10 - sum%10) % 10
	return check == int(value[11]-'0')
}
