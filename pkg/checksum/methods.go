package checksum

// Func is the shape shared by all checksum algorithms.
type Func func(value string) bool

var methods = map[string]Func{
	"luhn":  Luhn,
	"isbn":  ISBN,
	"issn":  ISSN,
	"iban":  IBAN,
	"ean13": EAN13,
	"upca":  UPCA,
	"vin":   VIN,
}

// Method returns the checksum algorithm registered under the given name.
func Method(name string) (Func, bool) {
	fn, ok := methods[name]
	return fn, ok
}

// Methods returns the names of all registered algorithms.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	return names
}
