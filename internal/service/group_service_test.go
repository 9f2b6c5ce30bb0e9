package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/kleurenwiezen/internal/auth"
	"github.com/mmynk/kleurenwiezen/internal/metrics"
	"github.com/mmynk/kleurenwiezen/internal/middleware"
	"github.com/mmynk/kleurenwiezen/internal/storage"
	"github.com/mmynk/kleurenwiezen/internal/storage/sqlite"
	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
	"github.com/mmynk/kleurenwiezen/pkg/proto/protoconnect"
)

const testSecret = "test-secret"

type testEnv struct {
	store    *sqlite.SQLiteStore
	metrics  *metrics.Metrics
	server   *httptest.Server
	groups   protoconnect.GroupServiceClient
	sessions protoconnect.SessionServiceClient
	stats    protoconnect.StatsServiceClient
	auth     protoconnect.AuthServiceClient
}

// setupTestServer serves every service over httptest on a temp database.
// wrap, when given, decorates the store seen by the services.
func setupTestServer(t *testing.T, wrap ...func(storage.Store) storage.Store) *testEnv {
	t.Helper()

	// Create temp database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	var svcStore storage.Store = store
	for _, w := range wrap {
		svcStore = w(svcStore)
	}

	m := metrics.New()
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.OptionalAuth(jwtManager),
		middleware.GroupScope(store),
		middleware.LoggingInterceptor(m),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(svcStore), interceptors))
	mux.Handle(protoconnect.NewSessionServiceHandler(NewSessionService(svcStore, m), interceptors))
	mux.Handle(protoconnect.NewStatsServiceHandler(NewStatsService(svcStore), interceptors))
	mux.Handle(protoconnect.NewAuthServiceHandler(
		NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, slog.Default()),
		interceptors,
	))
	mux.Handle("/download/", http.StripPrefix("/download", NewDownloads(svcStore).Routes()))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return &testEnv{
		store:    store,
		metrics:  m,
		server:   server,
		groups:   protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		sessions: protoconnect.NewSessionServiceClient(http.DefaultClient, server.URL),
		stats:    protoconnect.NewStatsServiceClient(http.DefaultClient, server.URL),
		auth:     protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
	}
}

// scoped builds a request carrying the group's join code.
func scoped[T any](code string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set(middleware.JoinCodeHeader, code)
	return req
}

// seedGroup creates a group with Ann, Bart, Chris and Dirk and returns its
// join code and player ids in that order.
func seedGroup(t *testing.T, env *testEnv) (string, []string) {
	t.Helper()

	resp, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:    "Donderdagavond",
		Players: []string{"Ann", "Bart", "Chris", "Dirk"},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	ids := make([]string, len(resp.Msg.Players))
	for i, p := range resp.Msg.Players {
		ids[i] = p.Id
	}
	return resp.Msg.Group.JoinCode, ids
}

func requireCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T", err)
	}
	if connectErr.Code() != want {
		t.Fatalf("expected %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
	return connectErr
}

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:    "Camelot",
		Players: []string{"Ann", " ", "Bart"},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if resp.Msg.Group == nil {
		t.Fatal("expected group in response")
	}
	if resp.Msg.Group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if resp.Msg.Group.JoinCode == "" {
		t.Error("expected generated join code")
	}
	if resp.Msg.Group.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}
	if len(resp.Msg.Players) != 2 {
		t.Errorf("players: expected 2 (blank names skipped), got %d", len(resp.Msg.Players))
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{Name: "  "}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestCreateGroup_DuplicateJoinCode(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	req := &pb.CreateGroupRequest{Name: "Camelot", JoinCode: "camelot-vast"}
	if _, err := env.groups.CreateGroup(ctx, connect.NewRequest(req)); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	_, err := env.groups.CreateGroup(ctx, connect.NewRequest(req))
	requireCode(t, err, connect.CodeAlreadyExists)
}

func TestJoinGroup(t *testing.T) {
	env := setupTestServer(t)
	code, ids := seedGroup(t, env)

	resp, err := env.groups.JoinGroup(context.Background(), connect.NewRequest(&pb.JoinGroupRequest{JoinCode: code}))
	if err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Donderdagavond" {
		t.Errorf("name: expected 'Donderdagavond', got '%s'", resp.Msg.Group.Name)
	}
	if len(resp.Msg.Players) != len(ids) {
		t.Errorf("players: expected %d, got %d", len(ids), len(resp.Msg.Players))
	}
}

func TestJoinGroup_NotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.groups.JoinGroup(context.Background(), connect.NewRequest(&pb.JoinGroupRequest{JoinCode: "bestaat-niet"}))
	requireCode(t, err, connect.CodeNotFound)
}

func TestAddPlayer(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	code, _ := seedGroup(t, env)

	if _, err := env.groups.AddPlayer(ctx, scoped(code, &pb.AddPlayerRequest{Name: "Eva"})); err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}

	resp, err := env.groups.ListPlayers(ctx, scoped(code, &pb.ListPlayersRequest{}))
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(resp.Msg.Players) != 5 {
		t.Fatalf("players: expected 5, got %d", len(resp.Msg.Players))
	}
	if resp.Msg.Players[4].Name != "Eva" {
		t.Errorf("expected players ordered by name, got %s last", resp.Msg.Players[4].Name)
	}
}

func TestGroupScope(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	seedGroup(t, env)

	t.Run("missing join code", func(t *testing.T) {
		_, err := env.groups.ListPlayers(ctx, connect.NewRequest(&pb.ListPlayersRequest{}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("unknown join code", func(t *testing.T) {
		_, err := env.groups.ListPlayers(ctx, scoped("onbekend", &pb.ListPlayersRequest{}))
		requireCode(t, err, connect.CodeNotFound)
	})

	t.Run("groups do not see each other", func(t *testing.T) {
		other, _ := seedGroup(t, env)
		resp, err := env.groups.ListPlayers(ctx, scoped(other, &pb.ListPlayersRequest{}))
		if err != nil {
			t.Fatalf("ListPlayers failed: %v", err)
		}
		if len(resp.Msg.Players) != 4 {
			t.Errorf("expected only the other group's 4 players, got %d", len(resp.Msg.Players))
		}
	})
}
