package rules

import "regexp"

// Builtin returns the engine's rule table. The same instance is returned on
// every call; it is built once at package initialization and never mutated.
func Builtin() *Table {
	return builtin
}

var builtin = mustTable(builtinSpecs...)

func mustTable(specs ...Spec) *Table {
	t, err := NewTable(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

// builtinSpecs declares every rule the engine ships with. Regex rules without
// an inline pattern resolve theirs from the pattern library by symbol.
var builtinSpecs = []Spec{
	{
		Symbol:          "hashtag",
		Kind:            KindRegex,
		Description:     "Social media hashtag",
		ErrorMessage:    "is not a valid hashtag",
		ValidExamples:   []string{"#golang", "#OpenSource2024"},
		InvalidExamples: []string{"golang", "#", "#go lang"},
	},
	{
		Symbol:          "mention",
		Kind:            KindRegex,
		Description:     "Social media @-mention",
		ErrorMessage:    "is not a valid mention",
		ValidExamples:   []string{"@alice", "@dev_team"},
		InvalidExamples: []string{"alice", "@"},
	},
	{
		Symbol:          "hex_color",
		Kind:            KindRegex,
		Description:     "Hexadecimal color in #RGB or #RRGGBB form",
		ErrorMessage:    "is not a valid hex color",
		ValidExamples:   []string{"#fff", "#1a2b3c"},
		InvalidExamples: []string{"#ggg", "fff", "#12345"},
	},
	{
		Symbol:          "mac_address",
		Kind:            KindRegex,
		Description:     "IEEE 802 MAC address",
		ErrorMessage:    "is not a valid MAC address",
		ValidExamples:   []string{"00:1A:2B:3C:4D:5E", "aa-bb-cc-dd-ee-ff"},
		InvalidExamples: []string{"00:1A:2B:3C:4D", "00:1A:2B:3C:4D:ZZ"},
	},
	{
		Symbol:          "ipv4",
		Kind:            KindRegex,
		Description:     "IPv4 address in dotted-quad form",
		ErrorMessage:    "is not a valid IPv4 address",
		ValidExamples:   []string{"192.168.0.1", "8.8.8.8"},
		InvalidExamples: []string{"256.1.1.1", "192.168.0"},
	},
	{
		Symbol:          "ipv6",
		Kind:            KindRegex,
		Description:     "IPv6 address, full or compressed form",
		ErrorMessage:    "is not a valid IPv6 address",
		ValidExamples:   []string{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", "fe80::1"},
		InvalidExamples: []string{"2001:db8:85a3", "gggg::1"},
	},
	{
		Symbol:          "url",
		Kind:            KindRegex,
		SchemaType:      "Thing",
		SchemaProperty:  "url",
		Description:     "HTTP or HTTPS URL",
		ErrorMessage:    "is not a valid URL",
		ValidExamples:   []string{"https://example.com", "http://example.com/path?q=1"},
		InvalidExamples: []string{"example.com", "ftp://example.com"},
	},
	{
		Symbol:          "email",
		Kind:            KindRegex,
		SchemaType:      "Person",
		SchemaProperty:  "email",
		Description:     "Email address",
		ErrorMessage:    "is not a valid email address",
		ValidExamples:   []string{"user@example.com", "first.last@sub.example.org"},
		InvalidExamples: []string{"user@", "user@example"},
	},
	{
		Symbol:          "slug",
		Kind:            KindRegex,
		Description:     "URL-safe slug",
		ErrorMessage:    "is not a valid slug",
		ValidExamples:   []string{"hello-world", "release-v2"},
		InvalidExamples: []string{"Hello-World", "-hello"},
	},
	{
		Symbol:          "uuid",
		Kind:            KindRegex,
		Description:     "UUID in canonical hyphenated form",
		ErrorMessage:    "is not a valid UUID",
		ValidExamples:   []string{"550e8400-e29b-41d4-a716-446655440000"},
		InvalidExamples: []string{"not-a-uuid", "550e8400e29b41d4a716446655440000"},
	},
	{
		Symbol:          "semver",
		Kind:            KindRegex,
		Description:     "Semantic version number",
		ErrorMessage:    "is not a valid semantic version",
		ValidExamples:   []string{"1.2.3", "v2.0.0-rc.1"},
		InvalidExamples: []string{"1.2", "a.b.c"},
	},
	{
		Symbol:          "twitter_handle",
		Kind:            KindRegex,
		Description:     "Twitter/X handle, at most 15 characters",
		ErrorMessage:    "is not a valid Twitter handle",
		ValidExamples:   []string{"@jack", "gopher_dev"},
		InvalidExamples: []string{"@this_handle_is_way_too_long", "has space"},
	},
	{
		Symbol:          "instagram_handle",
		Kind:            KindRegex,
		Description:     "Instagram handle, at most 30 characters",
		ErrorMessage:    "is not a valid Instagram handle",
		ValidExamples:   []string{"insta.gram", "@some_user"},
		InvalidExamples: []string{".starts.with.dot", "ends.with.dot."},
	},
	{
		Symbol:          "github_username",
		Kind:            KindRegex,
		Description:     "GitHub username",
		ErrorMessage:    "is not a valid GitHub username",
		ValidExamples:   []string{"octocat", "a-b-c"},
		InvalidExamples: []string{"-octocat", "octo--cat"},
	},
	{
		Symbol:          "phone_e164",
		Kind:            KindRegex,
		SchemaType:      "Person",
		SchemaProperty:  "telephone",
		Description:     "Phone number in E.164 international form",
		ErrorMessage:    "is not a valid E.164 phone number",
		ValidExamples:   []string{"+14155552671", "+442071838750"},
		InvalidExamples: []string{"14155552671", "+0123"},
	},
	{
		Symbol:          "hex_string",
		Kind:            KindRegex,
		Description:     "Hexadecimal string",
		ErrorMessage:    "is not a valid hex string",
		ValidExamples:   []string{"deadBEEF", "00ff"},
		InvalidExamples: []string{"0x1234", "xyz"},
	},
	{
		Symbol:          "postal_code_us",
		Kind:            KindRegex,
		Pattern:         regexp.MustCompile(`^\d{5}(?:-\d{4})?$`),
		Description:     "US ZIP or ZIP+4 postal code",
		ErrorMessage:    "is not a valid US postal code",
		ValidExamples:   []string{"94103", "94103-1234"},
		InvalidExamples: []string{"9410", "94103-12"},
	},
	{
		Symbol:          "luhn",
		Kind:            KindChecksum,
		ChecksumMethod:  "luhn",
		Description:     "Number passing the Luhn mod-10 check (payment cards, IMEI)",
		ErrorMessage:    "does not pass the Luhn check",
		ValidExamples:   []string{"4111 1111 1111 1111", "4242424242424242"},
		InvalidExamples: []string{"4111 1111 1111 1112", "1234567812345678"},
	},
	{
		Symbol:          "isbn",
		Kind:            KindChecksum,
		ChecksumMethod:  "isbn",
		SchemaType:      "Book",
		SchemaProperty:  "isbn",
		Description:     "International Standard Book Number (ISBN-10 or ISBN-13)",
		ErrorMessage:    "is not a valid ISBN",
		ValidExamples:   []string{"978-3-16-148410-0", "0-306-40615-2"},
		InvalidExamples: []string{"978-3-16-148410-1", "0-306-40615-1"},
	},
	{
		Symbol:          "issn",
		Kind:            KindChecksum,
		ChecksumMethod:  "issn",
		SchemaType:      "Periodical",
		SchemaProperty:  "issn",
		Description:     "International Standard Serial Number",
		ErrorMessage:    "is not a valid ISSN",
		ValidExamples:   []string{"0378-5955", "2049-3630"},
		InvalidExamples: []string{"0378-5954", "12345678"},
	},
	{
		Symbol:          "iban",
		Kind:            KindChecksum,
		ChecksumMethod:  "iban",
		SchemaType:      "BankAccount",
		SchemaProperty:  "iban",
		Description:     "International Bank Account Number",
		ErrorMessage:    "is not a valid IBAN",
		ValidExamples:   []string{"GB82WEST12345698765432", "DE89370400440532013000"},
		InvalidExamples: []string{"GB82WEST12345698765431", "GB00"},
	},
	{
		Symbol:          "ean13",
		Kind:            KindChecksum,
		ChecksumMethod:  "ean13",
		SchemaType:      "Product",
		SchemaProperty:  "gtin13",
		Description:     "13-digit European Article Number",
		ErrorMessage:    "is not a valid EAN-13 code",
		ValidExamples:   []string{"4006381333931", "9780306406157"},
		InvalidExamples: []string{"4006381333930", "123"},
	},
	{
		Symbol:          "upca",
		Kind:            KindChecksum,
		ChecksumMethod:  "upca",
		SchemaType:      "Product",
		SchemaProperty:  "gtin12",
		Description:     "12-digit UPC-A product code",
		ErrorMessage:    "is not a valid UPC-A code",
		ValidExamples:   []string{"036000291452", "012345678905"},
		InvalidExamples: []string{"036000291453", "12345"},
	},
	{
		Symbol:          "vin",
		Kind:            KindChecksum,
		ChecksumMethod:  "vin",
		SchemaType:      "Vehicle",
		SchemaProperty:  "vehicleIdentificationNumber",
		Description:     "17-character Vehicle Identification Number",
		ErrorMessage:    "is not a valid VIN",
		ValidExamples:   []string{"1HGCM82633A004352", "11111111111111111"},
		InvalidExamples: []string{"1HGCM82633A004353", "ABC"},
	},
}
