// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap applies binders, decorators and an ErrorHandler around it:
//
//	type generateRequest struct {
//		Seed  string `form:"seed"`
//		Count string `form:"count"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, generateRequest](
//		func(ctx handler.Context, req generateRequest) handler.Response {
//			names, err := svc.Generate(ctx, req.Seed, req.Count)
//			if err != nil {
//				return handler.JSONError(err)
//			}
//			return handler.JSON(names)
//		},
//	)
//
//	r.Post("/generate", handler.Wrap(h, handler.WithBinders[handler.Context, generateRequest](binder.Form())))
//
// # Responses
//
// JSON and JSONError write the {data, meta, error} envelope. Text writes a
// plain body and Attachment a downloadable file. Templ and TemplPartial
// render templ components, switching to a DataStar SSE patch when the
// request comes from DataStar (see IsDataStar).
//
// # Errors
//
// HTTPError carries a status code and a translation key. NewErrorHandler
// classifies errors (validator.ValidationErrors become 422, HTTPError keeps
// its code, anything else is 500), logs them with the request id and renders
// a JSON body, an error page or a DataStar toast depending on the request.
package handler
