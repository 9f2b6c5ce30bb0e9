package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/kleurenwiezen/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and records its duration. It logs the procedure name, user ID, group ID,
// duration, and any error codes/messages. m may be nil.
func LoggingInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			duration := elapsed.Milliseconds()
			userID := GetUserID(ctx) // empty if anonymous
			groupID := GetGroupID(ctx)

			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					m.ObserveRPC(procedure, connectErr.Code().String(), elapsed)
					slog.Warn("RPC error",
						"procedure", procedure,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"user_id", userID,
						"group_id", groupID,
						"duration_ms", duration,
					)
				} else {
					m.ObserveRPC(procedure, connect.CodeUnknown.String(), elapsed)
					slog.Error("RPC error",
						"procedure", procedure,
						"error", err,
						"user_id", userID,
						"group_id", groupID,
						"duration_ms", duration,
					)
				}
			} else {
				m.ObserveRPC(procedure, "ok", elapsed)
				slog.Info("RPC ok",
					"procedure", procedure,
					"user_id", userID,
					"group_id", groupID,
					"duration_ms", duration,
				)
			}

			return resp, err
		}
	}
}

// RequestLogger logs plain HTTP requests that do not go through Connect.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
