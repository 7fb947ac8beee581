package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/requestid"
)

func serve(t *testing.T, mw func(http.Handler) http.Handler, header string) (ctxID, respID string) {
	t.Helper()

	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates a uuid when missing", func(t *testing.T) {
		t.Parallel()

		ctxID, respID := serve(t, requestid.Middleware(), "")
		assert.Equal(t, ctxID, respID)
		_, err := uuid.Parse(ctxID)
		require.NoError(t, err)
	})

	t.Run("reuses a valid incoming id", func(t *testing.T) {
		t.Parallel()

		ctxID, respID := serve(t, requestid.Middleware(), "req_123-abc")
		assert.Equal(t, "req_123-abc", ctxID)
		assert.Equal(t, "req_123-abc", respID)
	})

	t.Run("replaces invalid ids", func(t *testing.T) {
		t.Parallel()

		mw := requestid.Middleware(requestid.WithGenerator(func() string { return "fresh" }))
		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 129)} {
			ctxID, respID := serve(t, mw, bad)
			assert.Equal(t, "fresh", ctxID, bad)
			assert.Equal(t, "fresh", respID, bad)
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := requestid.LoggerExtractor()

	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
