package names

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/namegen/handler"
	"github.com/dmitrymomot/namegen/pkg/binder"
	"github.com/dmitrymomot/namegen/pkg/sanitizer"
)

// Web serves the generator page, the form endpoints and the JSON API.
type Web struct {
	svc             *Service
	views           Views
	errorHandler    handler.ErrorHandler[handler.Context]
	apiErrorHandler handler.ErrorHandler[handler.Context]
}

// NewWeb creates the HTTP front end for svc. Request errors are logged to log.
func NewWeb(svc *Service, views Views, log *slog.Logger) *Web {
	if svc == nil {
		panic("names: service cannot be nil")
	}
	return &Web{
		svc:             svc,
		views:           views,
		errorHandler:    handler.NewErrorHandler(log, views.ErrorHandlerConfig()),
		apiErrorHandler: handler.NewJSONErrorHandler(log),
	}
}

// Handle returns the routes:
//
//	GET  /              generator page
//	POST /generate      generate from the form (DataStar patch of #output)
//	POST /download      submitted names as a text attachment
//	POST /api/v1/names  JSON API
//
// guards wrap the routes that run the generator, such as a rate limiter.
func (h *Web) Handle(guards ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.index,
		handler.WithBinders[handler.Context, pageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, pageRequest](h.errorHandler),
	))

	r.With(guards...).Post("/generate", handler.Wrap(h.generate,
		handler.WithBinders[handler.Context, generateRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, generateRequest](h.errorHandler),
	))

	r.Post("/download", handler.Wrap(h.download,
		handler.WithBinders[handler.Context, downloadRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, downloadRequest](h.errorHandler),
	))

	r.With(guards...).Post("/api/v1/names", handler.Wrap(h.apiGenerate,
		handler.WithBinders[handler.Context, apiRequest](
			binder.JSON(), // application/json
			binder.Form(), // skipped unless the body is a form
		),
		handler.WithErrorHandler[handler.Context, apiRequest](h.apiErrorHandler),
	))

	return r
}

type pageRequest struct {
	Seed  string `query:"seed"`
	Count string `query:"count"`
}

func (h *Web) index(_ handler.Context, req pageRequest) handler.Response {
	count := req.Count
	if count == "" {
		count = "1"
	}
	return handler.Templ(h.views.Page(PageParams{
		Seed:          sanitizer.Seed(req.Seed),
		Count:         count,
		MaxCount:      h.svc.MaxCount(),
		MaxSeedLength: h.svc.MaxSeedLength(),
	}))
}

type generateRequest struct {
	Seed  string `form:"seed"`
	Count string `form:"count"`
}

func (h *Web) generate(ctx handler.Context, req generateRequest) handler.Response {
	res, err := h.svc.Generate(ctx, Request(req))
	if err != nil {
		return handler.Error(httpError(err))
	}

	results := ResultsParams{
		Seed:    res.Seed,
		Names:   res.Names,
		Display: sanitizer.CapitalizeAll(res.Names),
	}
	page := PageParams{
		Seed:          res.Seed,
		Count:         strconv.Itoa(res.Count),
		MaxCount:      h.svc.MaxCount(),
		MaxSeedLength: h.svc.MaxSeedLength(),
		Results:       &results,
	}
	return handler.TemplPartial(
		h.views.Results(results),
		h.views.Page(page),
		handler.WithTarget(outputTarget),
	)
}

type downloadRequest struct {
	Names []string `form:"names"`
}

func (h *Web) download(_ handler.Context, req downloadRequest) handler.Response {
	names, err := h.svc.ValidateNames(req.Names)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Attachment(AttachmentName, sanitizer.CapitalizeAll(names))
}

type apiRequest struct {
	Seed  string      `json:"seed" form:"seed"`
	Count json.Number `json:"count" form:"count"`
}

type apiResponse struct {
	Names []string `json:"names"`
}

func (h *Web) apiGenerate(ctx handler.Context, req apiRequest) handler.Response {
	res, err := h.svc.Generate(ctx, Request{Seed: req.Seed, Count: req.Count.String()})
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.JSON(apiResponse{Names: res.Names}, handler.WithJSONMeta(map[string]any{
		"seed":  res.Seed,
		"count": res.Count,
	}))
}
