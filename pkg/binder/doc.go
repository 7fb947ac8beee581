// Package binder fills request structs from HTTP requests.
//
// Each binder handles one source and one struct tag:
//
//	Form()  - application/x-www-form-urlencoded and multipart/form-data bodies, `form:"name"`
//	JSON()  - application/json bodies, `json:"name"`
//	Query() - URL query parameters, `query:"name"`
//
// Form and JSON return ErrBinderNotApplicable when the request body has a
// different content type, so a handler can accept both by listing both
// binders. Supported field types for tag-based binders are strings, signed
// and unsigned integers, floats, bools, slices of those and pointers to them.
package binder
