package patterns

import "regexp"

// Compiled patterns for the syntactic token formats known to the engine.
// Each variable follows the <Symbol>Regex naming convention; Lookup maps a
// rule symbol to its pattern the same way.
var (
	HashtagRegex         = regexp.MustCompile(`^#[A-Za-z0-9_]+$`)
	MentionRegex         = regexp.MustCompile(`^@[A-Za-z0-9_]{1,30}$`)
	HexColorRegex        = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	MacAddressRegex      = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)
	IPv4Regex            = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	IPv6Regex            = regexp.MustCompile(`^(?:(?:[0-9A-Fa-f]{1,4}:){7}[0-9A-Fa-f]{1,4}|(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?::(?:[0-9A-Fa-f]{1,4}(?::[0-9A-Fa-f]{1,4})*)?)$`)
	URLRegex             = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	EmailRegex           = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	SlugRegex            = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	UUIDRegex            = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	SemverRegex          = regexp.MustCompile(`^v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)
	TwitterHandleRegex   = regexp.MustCompile(`^@?[A-Za-z0-9_]{1,15}$`)
	InstagramHandleRegex = regexp.MustCompile(`^@?[A-Za-z0-9](?:[A-Za-z0-9._]{0,28}[A-Za-z0-9_])?$`)
	GithubUsernameRegex  = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9]){0,38}$`)
	PhoneE164Regex       = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	HexStringRegex       = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
)

var bySymbol = map[string]*regexp.Regexp{
	"hashtag":          HashtagRegex,
	"mention":          MentionRegex,
	"hex_color":        HexColorRegex,
	"mac_address":      MacAddressRegex,
	"ipv4":             IPv4Regex,
	"ipv6":             IPv6Regex,
	"url":              URLRegex,
	"email":            EmailRegex,
	"slug":             SlugRegex,
	"uuid":             UUIDRegex,
	"semver":           SemverRegex,
	"twitter_handle":   TwitterHandleRegex,
	"instagram_handle": InstagramHandleRegex,
	"github_username":  GithubUsernameRegex,
	"phone_e164":       PhoneE164Regex,
	"hex_string":       HexStringRegex,
}

// Lookup returns the library pattern registered for the given rule symbol.
// It is the convention-based fallback used by the registry when a spec
// declares no inline pattern.
func Lookup(symbol string) (*regexp.Regexp, bool) {
	re, ok := bySymbol[symbol]
	return re, ok
}
