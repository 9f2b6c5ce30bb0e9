package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/kleurenwiezen/internal/auth"
	"github.com/mmynk/kleurenwiezen/internal/config"
	"github.com/mmynk/kleurenwiezen/internal/metrics"
	"github.com/mmynk/kleurenwiezen/internal/middleware"
	"github.com/mmynk/kleurenwiezen/internal/service"
	"github.com/mmynk/kleurenwiezen/internal/storage/sqlite"
	"github.com/mmynk/kleurenwiezen/pkg/proto/protoconnect"
)

const shutdownTimeout = 10 * time.Second

func serve(ctx context.Context, cfg *config.Config) error {
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	secret := cfg.JWT.Secret
	if secret == "" {
		secret = uuid.NewString()
		slog.Warn("JWT_SECRET not set, tokens will not survive a restart")
	}
	jwtManager := auth.NewJWTManager(secret, cfg.JWT.TTL)
	m := metrics.New()

	interceptors := connect.WithInterceptors(
		middleware.OptionalAuth(jwtManager),
		middleware.GroupScope(store),
		middleware.LoggingInterceptor(m),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger, corsMiddleware)

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(protoconnect.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, slog.Default()),
		interceptors,
	))
	mount(protoconnect.NewGroupServiceHandler(service.NewGroupService(store), interceptors))
	mount(protoconnect.NewSessionServiceHandler(service.NewSessionService(store, m), interceptors))
	mount(protoconnect.NewStatsServiceHandler(service.NewStatsService(store), interceptors))

	r.Mount("/download", service.NewDownloads(store).Routes())
	r.Handle("/metrics", m.Handler())

	staticDir, err := filepath.Abs(cfg.Server.StaticPath)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)
	r.NotFound(staticHandler(staticDir))

	// h2c for HTTP/2 without TLS
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// staticHandler serves the frontend and falls back to index.html for unknown
// paths.
func staticHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean("/"+urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, Authorization, "+middleware.JoinCodeHeader)
		w.Header().Set("Access-Control-Expose-Headers",
			"Connect-Protocol-Version, Connect-Timeout-Ms, "+service.ErrorKindHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
