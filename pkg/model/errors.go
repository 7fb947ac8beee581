package model

import "errors"

var (
	// ErrPredict wraps any failure returned by an adapter.
	ErrPredict = errors.New("model prediction failed")

	// ErrBatchShape is returned when inputs, outputs or state rows do not line up.
	ErrBatchShape = errors.New("invalid batch shape")

	// ErrInvalidDistribution is returned when a predicted distribution has no usable mass.
	ErrInvalidDistribution = errors.New("invalid probability distribution")
)
