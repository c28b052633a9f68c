// Package clientip resolves the originating client address of an HTTP
// request. The rate limiter keys its buckets on this value, so the
// resolution order must prefer the headers set by trusted edges over
// anything the client can forge on a direct connection.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in trust order. X-Forwarded-For is handled separately
// because it carries a list.
var singleIPHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
}

// GetIP resolves the client address for r, falling back to RemoteAddr
// when no proxy header carries a parseable IP. The result is the
// normalized form produced by net.IP.String, never the raw header value.
func GetIP(r *http.Request) string {
	for _, h := range singleIPHeaders {
		if ip := normalize(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	// First parseable entry wins; forged garbage ahead of the real
	// address is skipped rather than trusted.
	for entry := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if ip := normalize(entry); ip != "" {
			return ip
		}
	}

	if ip := normalize(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, as httptest and some proxies set it.
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
