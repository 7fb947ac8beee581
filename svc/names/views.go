package names

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/namegen/handler"
)

const (
	outputTarget = "#output"
	errorsTarget = "#errors"
)

// PageParams contains data for rendering the generator page.
type PageParams struct {
	Seed          string
	Count         string
	MaxCount      int
	MaxSeedLength int
	Results       *ResultsParams
}

// ResultsParams contains data for rendering a list of generated names.
type ResultsParams struct {
	Seed    string
	Names   []string // as generated, submitted back for download
	Display []string // capitalized for display
}

// Views holds the components rendered by the web handler.
type Views struct {
	Page       func(PageParams) templ.Component
	Results    func(ResultsParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// ErrorHandlerConfig returns the error components for handler.NewErrorHandler.
func (v Views) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:   v.ErrorPage,
		ErrorToast:  v.ErrorToast,
		ToastTarget: errorsTarget,
		ToastMode:   handler.PatchInner,
	}
}

var views = template.Must(template.New("names").Parse(`
{{define "head"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Name generator</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"></script>
</head>
<body>{{end}}

{{define "foot"}}</body>
</html>{{end}}

{{define "page"}}{{template "head"}}
<main>
<h1>Name generator</h1>
<form id="generate-form" method="post" action="/generate" data-on-submit="@post('/generate', {contentType: 'form'})">
<label for="seed">Initial characters</label>
<input id="seed" name="seed" type="text" value="{{.Seed}}" maxlength="{{.MaxSeedLength}}" autocomplete="off">
<label for="count">How many names</label>
<input id="count" name="count" type="number" min="1" max="{{.MaxCount}}" value="{{.Count}}">
<button type="submit">Generate</button>
</form>
{{template "output" .Results}}
</main>
{{template "foot"}}{{end}}

{{define "output"}}<section id="output">
<div id="errors" role="alert"></div>
<div id="results">{{if .}}{{template "results" .}}{{end}}</div>
</section>{{end}}

{{define "results"}}<ol class="names">{{range .Display}}<li>{{.}}</li>{{end}}</ol>
<form method="post" action="/download">
<input type="hidden" name="seed" value="{{.Seed}}">
{{range .Names}}<input type="hidden" name="names" value="{{.}}">
{{end}}<button type="submit">Download</button>
</form>{{end}}

{{define "toast"}}<div class="toast toast-{{.Type}}">
<p>{{.Message}}</p>
{{if .RequestID}}<small>Request ID: {{.RequestID}}</small>{{end}}
</div>{{end}}

{{define "error"}}{{template "head"}}
<main>
<h1>{{.StatusCode}}</h1>
<p>{{.Error}}</p>
{{if .RequestID}}<small>Request ID: {{.RequestID}}</small>{{end}}
<p><a href="{{.RetryURL}}">Back</a></p>
</main>
{{template "foot"}}{{end}}
`))

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return views.ExecuteTemplate(w, name, data)
	})
}

// DefaultViews returns the built-in HTML views.
func DefaultViews() Views {
	return Views{
		Page: func(p PageParams) templ.Component {
			return render("page", p)
		},
		Results: func(p ResultsParams) templ.Component {
			return render("output", &p)
		},
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return render("error", p)
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return render("toast", p)
		},
	}
}
