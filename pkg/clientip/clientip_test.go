package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "cloudflare header beats forwarded chain",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Forwarded-For": "192.0.2.9"},
			remoteAddr: "203.0.113.7:443",
			want:       "198.51.100.1",
		},
		{
			name:       "platform header beats forwarded chain",
			headers:    map[string]string{"DO-Connecting-IP": "198.51.100.2", "X-Forwarded-For": "192.0.2.9"},
			remoteAddr: "203.0.113.7:443",
			want:       "198.51.100.2",
		},
		{
			name:       "first parseable forwarded entry wins",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 192.0.2.9, 10.0.0.1"},
			remoteAddr: "203.0.113.7:443",
			want:       "192.0.2.9",
		},
		{
			name:       "real ip after unusable forwarded chain",
			headers:    map[string]string{"X-Forwarded-For": "garbage", "X-Real-IP": "192.0.2.10"},
			remoteAddr: "203.0.113.7:443",
			want:       "192.0.2.10",
		},
		{
			name:       "forged edge header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "<script>"},
			remoteAddr: "203.0.113.7:443",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv6 normalized from expanded form",
			headers:    map[string]string{"X-Real-IP": "2001:0db8:0000:0000:0000:0000:0000:0001"},
			remoteAddr: "203.0.113.7:443",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}
