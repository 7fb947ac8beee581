package names_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namegen/pkg/logger"
	"github.com/dmitrymomot/namegen/pkg/model"
	"github.com/dmitrymomot/namegen/pkg/novelty"
	"github.com/dmitrymomot/namegen/svc/names"
)

func newServer(t *testing.T, gen *fakeGenerator) *httptest.Server {
	t.Helper()

	svc := names.NewService(gen, alphabet, names.WithMaxCount(10))
	srv := httptest.NewServer(names.NewWeb(svc, names.DefaultViews(), logger.Discard()).Handle())
	t.Cleanup(srv.Close)
	return srv
}

func postForm(t *testing.T, srv *httptest.Server, path string, form url.Values, header http.Header) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp, readAll(t, resp)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestWeb_Index(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &fakeGenerator{names: []string{"x"}})

	resp, err := srv.Client().Get(srv.URL + "/?seed=AN&count=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	body := readAll(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `id="generate-form"`)
	assert.Contains(t, body, `value="an"`)
	assert.Contains(t, body, `value="3"`)
	assert.Contains(t, body, `max="10"`)
	assert.Contains(t, body, `maxlength="5"`)
}

func TestWeb_Generate(t *testing.T) {
	t.Parallel()

	t.Run("regular form post renders the page", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &fakeGenerator{names: []string{"anya", "anton"}})
		resp, body := postForm(t, srv, "/generate", url.Values{"seed": {"An"}, "count": {"2"}}, nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "<li>Anya</li>")
		assert.Contains(t, body, "<li>Anton</li>")
		assert.Contains(t, body, `name="names" value="anya"`)
		assert.Contains(t, body, `id="generate-form"`)
	})

	t.Run("datastar request receives an output patch", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &fakeGenerator{names: []string{"anya"}})
		resp, body := postForm(t, srv, "/generate", url.Values{"seed": {"an"}},
			http.Header{"Accept": {"text/event-stream"}})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#output")
		assert.Contains(t, body, "Anya")
		assert.NotContains(t, body, "generate-form")
	})

	t.Run("validation failure renders 422 page", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{names: []string{"x"}}
		srv := newServer(t, gen)
		resp, body := postForm(t, srv, "/generate", url.Values{"seed": {"123"}, "count": {"0"}}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, body, "must be at least 1")
		assert.Zero(t, gen.callCount())
	})

	t.Run("validation failure over datastar renders a toast", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &fakeGenerator{names: []string{"x"}})
		_, body := postForm(t, srv, "/generate", url.Values{"count": {"abc"}},
			http.Header{"Accept": {"text/event-stream"}})

		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#errors")
		assert.Contains(t, body, "must be a whole number")
	})

	t.Run("exhaustion is service unavailable", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{err: fmt.Errorf("%w: accepted 0 of 1 after 100 batches", novelty.ErrGenerationExhausted)}
		srv := newServer(t, gen)
		resp, _ := postForm(t, srv, "/generate", url.Values{"seed": {"a"}}, nil)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestWeb_Download(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &fakeGenerator{names: []string{"x"}})

	resp, body := postForm(t, srv, "/download", url.Values{"names": {"anya", "bob"}}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "generated_names.txt")
	assert.Equal(t, "Anya\nBob\n", body)

	resp, _ = postForm(t, srv, "/download", url.Values{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestWeb_API(t *testing.T) {
	t.Parallel()

	post := func(t *testing.T, srv *httptest.Server, body string) (*http.Response, map[string]any) {
		t.Helper()

		resp, err := srv.Client().Post(srv.URL+"/api/v1/names", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp, out
	}

	t.Run("returns names and meta", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &fakeGenerator{names: []string{"mira", "milo"}})
		resp, out := post(t, srv, `{"seed":"Mi","count":2}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"names": []any{"mira", "milo"}}, out["data"])
		assert.Equal(t, map[string]any{"seed": "mi", "count": float64(2)}, out["meta"])
	})

	t.Run("validation error envelope", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &fakeGenerator{names: []string{"x"}})
		resp, out := post(t, srv, `{"seed":"a1","count":50}`)

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		detail := out["error"].(map[string]any)
		assert.Equal(t, "validation_error", detail["code"])
		fields := detail["details"].(map[string]any)
		assert.Contains(t, fields, "seed")
		assert.Contains(t, fields, "count")
	})

	t.Run("model failure is bad gateway", func(t *testing.T) {
		t.Parallel()

		gen := &fakeGenerator{err: errors.Join(model.ErrPredict, errors.New("connection refused"))}
		srv := newServer(t, gen)
		resp, out := post(t, srv, `{"count":1}`)

		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		detail := out["error"].(map[string]any)
		assert.Equal(t, "bad_gateway", detail["code"])
	})

	t.Run("malformed body is bad request", func(t *testing.T) {
		t.Parallel()

		srv := newServer(t, &fakeGenerator{names: []string{"x"}})
		resp, out := post(t, srv, `{"seed":`)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "bad_request", out["error"].(map[string]any)["code"])
	})
}

func TestWeb_Guards(t *testing.T) {
	t.Parallel()

	svc := names.NewService(&fakeGenerator{names: []string{"x"}}, alphabet)
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	srv := httptest.NewServer(names.NewWeb(svc, names.DefaultViews(), logger.Discard()).Handle(deny))
	t.Cleanup(srv.Close)

	resp, _ := postForm(t, srv, "/generate", url.Values{"seed": {"a"}}, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp, _ = postForm(t, srv, "/download", url.Values{"names": {"anya"}}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "download does not run the generator")

	page, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	page.Body.Close()
	assert.Equal(t, http.StatusOK, page.StatusCode)
}
