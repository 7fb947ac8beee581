package names

import (
	"context"
	"errors"

	"github.com/dmitrymomot/namegen/handler"
	"github.com/dmitrymomot/namegen/pkg/model"
	"github.com/dmitrymomot/namegen/pkg/novelty"
)

// httpError attaches the HTTP status for a generation failure to err.
// Validation errors are returned unchanged and rendered as 422.
func httpError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, novelty.ErrGenerationExhausted):
		return errors.Join(handler.ErrServiceUnavailable, err)
	case errors.Is(err, model.ErrPredict),
		errors.Is(err, model.ErrBatchShape),
		errors.Is(err, model.ErrInvalidDistribution):
		return errors.Join(handler.ErrBadGateway, err)
	case errors.Is(err, novelty.ErrInvalidSeed),
		errors.Is(err, novelty.ErrSeedTooLong),
		errors.Is(err, novelty.ErrInvalidCount):
		return errors.Join(handler.ErrUnprocessableEntity, err)
	case errors.Is(err, context.DeadlineExceeded):
		return errors.Join(handler.ErrGatewayTimeout, err)
	case errors.Is(err, context.Canceled):
		return errors.Join(handler.ErrRequestTimeout, err)
	default:
		return err
	}
}
