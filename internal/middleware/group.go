package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

// JoinCodeHeader carries the join code of the group a call acts on.
const JoinCodeHeader = "Kw-Join-Code"

// joinCodeParam is the query parameter fallback for plain downloads.
const joinCodeParam = "code"

var (
	ErrMissingJoinCode = errors.New("join code required")
	ErrUnknownJoinCode = errors.New("unknown join code")
)

// GroupResolver looks up a group by join code.
type GroupResolver interface {
	GetGroupByJoinCode(ctx context.Context, joinCode string) (*models.Group, error)
}

// GetGroupID extracts the group ID resolved from the join code.
// Returns empty string if the call carried no join code.
func GetGroupID(ctx context.Context) string {
	groupID, _ := ctx.Value(GroupIDKey).(string)
	return groupID
}

// WithGroupID returns a context scoped to the given group.
func WithGroupID(ctx context.Context, groupID string) context.Context {
	return context.WithValue(ctx, GroupIDKey, groupID)
}

// GroupScope resolves the Kw-Join-Code header to a group and stores its ID in
// the context. Calls without the header pass through unscoped; handlers that
// need a group reject them.
func GroupScope(resolver GroupResolver) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			code := strings.TrimSpace(req.Header().Get(JoinCodeHeader))
			if code == "" {
				return next(ctx, req)
			}

			group, err := resolver.GetGroupByJoinCode(ctx, code)
			if errors.Is(err, storage.ErrNotFound) {
				return nil, connect.NewError(connect.CodeNotFound, ErrUnknownJoinCode)
			}
			if err != nil {
				slog.Error("Failed to resolve join code", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeInternal, err)
			}

			return next(WithGroupID(ctx, group.ID), req)
		}
	}
}

// RequireGroupHTTP is the plain HTTP counterpart of GroupScope. The join code
// comes from the header or the "code" query parameter and is mandatory.
func RequireGroupHTTP(resolver GroupResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := strings.TrimSpace(r.Header.Get(JoinCodeHeader))
			if code == "" {
				code = strings.TrimSpace(r.URL.Query().Get(joinCodeParam))
			}
			if code == "" {
				http.Error(w, ErrMissingJoinCode.Error(), http.StatusUnauthorized)
				return
			}

			group, err := resolver.GetGroupByJoinCode(r.Context(), code)
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, ErrUnknownJoinCode.Error(), http.StatusNotFound)
				return
			}
			if err != nil {
				slog.Error("Failed to resolve join code", "path", r.URL.Path, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithGroupID(r.Context(), group.ID)))
		})
	}
}
