package remote

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid remote model configuration")
	ErrRequestFailed     = errors.New("model server request failed")
	ErrUnexpectedStatus  = errors.New("unexpected model server status")
	ErrInvalidResponse   = errors.New("invalid model server response")
	ErrModelNotAvailable = errors.New("model is not available")
)
