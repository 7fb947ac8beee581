package binder

import "errors"

var (
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
	ErrInvalidTarget       = errors.New("binding target must be a non-nil pointer to struct")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm   = errors.New("failed to parse form data")
	ErrFailedToParseQuery  = errors.New("failed to parse query parameters")
)
