package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/requestid"
	"github.com/dmitrymomot/namegen/pkg/validator"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	Fields    map[string][]string
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders a full error page for regular HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders an inline notification for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#errors".
	ToastTarget string

	// ToastMode defaults to PatchInner.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	Fields     map[string][]string
	LogLevel   slog.Level
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#errors"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchInner
	}
	return cfg
}

// ClassifyError maps err to a status code and a user-facing message.
// Validation errors take precedence over HTTP errors.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = http.StatusText(httpErr.Code)
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Fields = verrs.Map()
		messages := make([]string, 0, len(verrs))
		for _, v := range verrs {
			messages = append(messages, v.Message)
		}
		info.Message = strings.Join(messages, "; ")
	}

	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	} else {
		info.Type = "error"
		info.LogLevel = slog.LevelError
	}
	return info
}

// NewErrorHandler creates the error handler shared by all routes.
// DataStar requests get an inline toast, other JSON clients the error
// envelope and everything else a full error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := ClassifyError(err)
		logError(log, r, err, info)

		var resp Response
		switch {
		case IsDataStar(r):
			if cfg.ErrorToast == nil {
				http.Error(w, info.Message, info.StatusCode)
				return
			}
			// SSE patches are always sent with 200.
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				Fields:    info.Fields,
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
		case WantsJSON(r):
			resp = JSONError(err)
		case cfg.ErrorPage != nil:
			resp = templStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
				Error:      info.Message,
				StatusCode: info.StatusCode,
				RequestID:  reqID,
				RetryURL:   "/",
			}))
		default:
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		renderError(log, resp, w, r)
	}
}

// NewJSONErrorHandler creates an error handler for API routes that always
// answers with the JSON error envelope.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		r := ctx.Request()
		logError(log, r, err, ClassifyError(err))
		renderError(log, JSONError(err), ctx.ResponseWriter(), r)
	}
}

func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

func renderError(log *slog.Logger, resp Response, w http.ResponseWriter, r *http.Request) {
	if err := resp.Render(w, r); err != nil {
		log.ErrorContext(r.Context(), "failed to render error response",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Component("error_handler"),
		)
	}
}
