package ratelimiter

import (
	"errors"
	"net/http"
	"strconv"
)

// KeyFunc extracts the client key from a request. Requests with an empty key
// are not limited.
type KeyFunc func(r *http.Request) string

// ErrorFunc writes the response for a denied request or a store failure.
// Denied requests receive an error matching ErrLimitExceeded.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middleware)

type middleware struct {
	onError ErrorFunc
}

// WithErrorFunc replaces the plain-text error responses.
func WithErrorFunc(fn ErrorFunc) MiddlewareOption {
	if fn == nil {
		panic("ratelimiter: error func cannot be nil")
	}
	return func(m *middleware) { m.onError = fn }
}

func defaultErrorFunc(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ErrLimitExceeded) {
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Middleware takes one token per request from the bucket of key(r).
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if b == nil || key == nil {
		panic("ratelimiter: bucket and key func are required")
	}
	m := middleware{onError: defaultErrorFunc}
	for _, opt := range opts {
		opt(&m)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				m.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if s := int(res.RetryAfter().Seconds()); s > 0 {
					h.Set("Retry-After", strconv.Itoa(s))
				}
				m.onError(w, r, ErrLimitExceeded)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
