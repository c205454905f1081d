package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/christoffel/menuapp/internal/session"
)

// sessionError maps controller errors onto Connect codes. Validation problems
// and unknown filters are the caller's fault; route guards and the empty
// removal selection are precondition failures the client surfaces as notices.
func sessionError(err error) error {
	var vErr *session.ValidationError
	switch {
	case errors.Is(err, session.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrItemNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, session.ErrWrongRoute):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrEmptySelection):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, session.ErrUnknownFilter):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.As(err, &vErr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
