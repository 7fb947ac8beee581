package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms.
const DefaultMaxMemory = 1 << 20 // 1 MB

// Form binds urlencoded and multipart form values to `form:"name"` fields.
//
//	type generateRequest struct {
//		Seed  string   `form:"seed"`
//		Count string   `form:"count"`
//		Names []string `form:"names"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
