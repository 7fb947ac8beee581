package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/handler"
	"github.com/dmitrymomot/namegen/pkg/requestid"
	"github.com/dmitrymomot/namegen/pkg/validator"
)

func newErrorHandler(buf *bytes.Buffer) handler.ErrorHandler[handler.Context] {
	log := slog.New(slog.NewTextHandler(buf, nil))
	return handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return textComponent(fmt.Sprintf("page %d: %s", p.StatusCode, p.Error))
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return textComponent(fmt.Sprintf(`<div id="errors">%s: %s</div>`, p.Type, p.Message))
		},
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	info := handler.ClassifyError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, info.StatusCode)
	assert.Equal(t, slog.LevelError, info.LogLevel)

	info = handler.ClassifyError(errors.Join(handler.ErrServiceUnavailable, errors.New("exhausted")))
	assert.Equal(t, http.StatusServiceUnavailable, info.StatusCode)
	assert.Equal(t, "Service Unavailable", info.Message)

	verr := validator.Apply(validator.MinNum("count", 0, 1))
	info = handler.ClassifyError(verr)
	assert.Equal(t, http.StatusUnprocessableEntity, info.StatusCode)
	assert.Equal(t, "warning", info.Type)
	assert.Equal(t, slog.LevelWarn, info.LogLevel)
	assert.Contains(t, info.Fields, "count")
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("page for regular requests", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-1"))
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), errors.Join(handler.ErrBadGateway, errors.New("model down")))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "page 502: Bad Gateway", w.Body.String())
		assert.Contains(t, logs.String(), "request_id=req-1")
		assert.Contains(t, logs.String(), "model down")
	})

	t.Run("json for api clients", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/names", nil)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), validator.Apply(validator.MinNum("count", 0, 1)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"validation_error"`)
		assert.Contains(t, logs.String(), "level=WARN")
	})

	t.Run("toast for datastar requests", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		eh := newErrorHandler(&logs)

		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		req.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), validator.Apply(validator.MinNum("count", 0, 1)))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
		assert.Contains(t, w.Body.String(), "#errors")
		assert.Contains(t, w.Body.String(), "warning")
	})

	t.Run("plain text without components", func(t *testing.T) {
		t.Parallel()

		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Not Found")
	})
}
