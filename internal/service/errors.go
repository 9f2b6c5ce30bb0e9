package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/kleurenwiezen/internal/calculator"
	"github.com/mmynk/kleurenwiezen/internal/middleware"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

// ErrorKindHeader names the scoring failure on InvalidArgument responses.
const ErrorKindHeader = "Kw-Error-Kind"

// toConnectError maps engine and storage errors to Connect codes.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	if kind := calculator.Kind(err); kind != "" {
		connectErr = connect.NewError(connect.CodeInvalidArgument, err)
		connectErr.Meta().Set(ErrorKindHeader, string(kind))
		return connectErr
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// requireGroup returns the group the call is scoped to.
func requireGroup(ctx context.Context) (string, error) {
	groupID := middleware.GetGroupID(ctx)
	if groupID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, middleware.ErrMissingJoinCode)
	}
	return groupID, nil
}
