package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/patterns"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("known symbols", func(t *testing.T) {
		for _, symbol := range []string{"hashtag", "mention", "hex_color", "mac_address", "ipv4", "ipv6", "url", "email"} {
			re, ok := patterns.Lookup(symbol)
			assert.True(t, ok, "symbol %q should be registered", symbol)
			assert.NotNil(t, re)
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		re, ok := patterns.Lookup("no_such_pattern")
		assert.False(t, ok)
		assert.Nil(t, re)
	})
}

func TestPatternMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symbol  string
		valid   []string
		invalid []string
	}{
		{
			symbol:  "hashtag",
			valid:   []string{"#golang", "#100DaysOfCode", "#a_b"},
			invalid: []string{"golang", "#", "#go lang"},
		},
		{
			symbol:  "mention",
			valid:   []string{"@alice", "@bob_smith"},
			invalid: []string{"alice", "@", "@way.too.dotted"},
		},
		{
			symbol:  "hex_color",
			valid:   []string{"#fff", "#FFFFFF", "#1a2b3c"},
			invalid: []string{"#ggg", "fff", "#12345"},
		},
		{
			symbol:  "mac_address",
			valid:   []string{"00:1A:2B:3C:4D:5E", "00-1a-2b-3c-4d-5e"},
			invalid: []string{"00:1A:2B:3C:4D", "GG:1A:2B:3C:4D:5E"},
		},
		{
			symbol:  "ipv4",
			valid:   []string{"192.168.0.1", "8.8.8.8", "255.255.255.255"},
			invalid: []string{"256.1.1.1", "192.168.0", "a.b.c.d"},
		},
		{
			symbol: "ipv6",
			valid: []string{
				"2001:0db8:85a3:0000:0000:8a2e:0370:7334",
				"fe80::1",
				"fe80::",
				"::1",
				"::",
				"2001:db8::8a2e:370:7334",
			},
			invalid: []string{"2001:db8:85a3", "gggg::1", "fe80:::1"},
		},
		{
			symbol:  "url",
			valid:   []string{"https://example.com", "http://example.com/path?q=1"},
			invalid: []string{"example.com", "ftp://example.com", "https://bad domain"},
		},
		{
			symbol:  "email",
			valid:   []string{"user@example.com", "first.last+tag@sub.example.co.uk"},
			invalid: []string{"user@", "@example.com", "user@example", "user example.com"},
		},
		{
			symbol:  "slug",
			valid:   []string{"hello-world", "a-1-b"},
			invalid: []string{"Hello-World", "-hello", "hello--world"},
		},
		{
			symbol:  "uuid",
			valid:   []string{"550e8400-e29b-41d4-a716-446655440000"},
			invalid: []string{"550e8400e29b41d4a716446655440000", "zzze8400-e29b-41d4-a716-446655440000"},
		},
		{
			symbol:  "semver",
			valid:   []string{"1.2.3", "v2.0.0", "1.0.0-alpha.1", "1.0.0+build.5"},
			invalid: []string{"1.2", "1.2.3.4", "a.b.c"},
		},
		{
			symbol:  "twitter_handle",
			valid:   []string{"@jack", "jack"},
			invalid: []string{"@this_handle_is_way_too_long", "@a b"},
		},
		{
			symbol:  "instagram_handle",
			valid:   []string{"insta.gram", "a", "@some_user"},
			invalid: []string{".abc", "abc.", "@"},
		},
		{
			symbol:  "github_username",
			valid:   []string{"octocat", "a-b-c"},
			invalid: []string{"-octocat", "octocat-", "octo--cat"},
		},
		{
			symbol:  "phone_e164",
			valid:   []string{"+14155552671", "+442071838750"},
			invalid: []string{"14155552671", "+0123", "+1"},
		},
		{
			symbol:  "hex_string",
			valid:   []string{"deadBEEF", "0123456789abcdef"},
			invalid: []string{"xyz", "", "0x1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			re, ok := patterns.Lookup(tt.symbol)
			require.True(t, ok)

			for _, v := range tt.valid {
				assert.True(t, re.MatchString(v), "%q should match %s", v, tt.symbol)
			}
			for _, v := range tt.invalid {
				assert.False(t, re.MatchString(v), "%q should not match %s", v, tt.symbol)
			}
		})
	}
}
