package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, inbound string) (captured string, rec *httptest.ResponseRecorder) {
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = requestid.FromContext(r.Context())
		}))
		req := httptest.NewRequest("GET", "/", nil)
		if inbound != "" {
			req.Header.Set(requestid.Header, inbound)
		}
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return captured, rec
	}

	t.Run("generates uuid when absent", func(t *testing.T) {
		t.Parallel()

		captured, rec := run(t, "")
		require.NotEmpty(t, captured)
		_, err := uuid.Parse(captured)
		assert.NoError(t, err)
		assert.Equal(t, captured, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses well-formed inbound id", func(t *testing.T) {
		t.Parallel()

		captured, rec := run(t, "trace_abc-123")
		assert.Equal(t, "trace_abc-123", captured)
		assert.Equal(t, "trace_abc-123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces hostile inbound id", func(t *testing.T) {
		t.Parallel()

		captured, _ := run(t, "bad id\nwith newline")
		assert.NotEqual(t, "bad id\nwith newline", captured)
		_, err := uuid.Parse(captured)
		assert.NoError(t, err)
	})
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
