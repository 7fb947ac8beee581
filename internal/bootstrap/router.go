package bootstrap

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/namegen/handler"
	"github.com/dmitrymomot/namegen/pkg/clientip"
	"github.com/dmitrymomot/namegen/pkg/httpserver"
	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/ratelimiter"
	"github.com/dmitrymomot/namegen/pkg/requestid"
	"github.com/dmitrymomot/namegen/svc/names"
)

const healthPrefix = "/health/"

// Router returns the HTTP handler of the web server: health probes under
// /health and the names front end at the root.
func (a *App) Router() http.Handler {
	views := names.DefaultViews()

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(),
		clientip.Middleware,
		a.logRequests,
		middleware.Recoverer,
	)

	r.Get(healthPrefix+"live", httpserver.Liveness())
	r.Get(healthPrefix+"ready", httpserver.Readiness(a.Log, a.checks...))

	var guards []func(http.Handler) http.Handler
	if a.limiter != nil {
		errorHandler := handler.NewErrorHandler(a.Log, views.ErrorHandlerConfig())
		guards = append(guards, ratelimiter.Middleware(a.limiter, clientip.Key,
			ratelimiter.WithErrorFunc(func(w http.ResponseWriter, r *http.Request, err error) {
				status := handler.ErrServiceUnavailable
				if errors.Is(err, ratelimiter.ErrLimitExceeded) {
					status = handler.ErrTooManyRequests
				}
				errorHandler(handler.NewContext(w, r), errors.Join(status, err))
			}),
		))
	}

	r.Mount("/", names.NewWeb(a.Names, views, a.Log).Handle(guards...))
	return r
}

// logRequests writes one record per request. Probes are logged at debug level.
func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		level := slog.LevelInfo
		if strings.HasPrefix(r.URL.Path, healthPrefix) {
			level = slog.LevelDebug
		}
		a.Log.Log(r.Context(), level, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}
