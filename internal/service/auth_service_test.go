package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
)

func TestAuthService(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)

	reg, err := env.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		Password:    password,
		DisplayName: "Ann",
	}))
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Msg.Token)
	assert.Equal(t, strings.ToLower(email), reg.Msg.User.Email)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := env.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email:       email,
			Password:    password,
			DisplayName: "Ann",
		}))
		requireCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := env.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email:       gofakeit.Email(),
			Password:    "kort",
			DisplayName: "Bart",
		}))
		requireCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := env.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: email, Password: password}))
		require.NoError(t, err)
		assert.Equal(t, reg.Msg.User.Id, resp.Msg.User.Id)

		_, err = env.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: email, Password: "verkeerd-wachtwoord"}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("current user", func(t *testing.T) {
		req := connect.NewRequest(&pb.GetCurrentUserRequest{})
		req.Header().Set("Authorization", "Bearer "+reg.Msg.Token)
		resp, err := env.auth.GetCurrentUser(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Ann", resp.Msg.User.DisplayName)

		_, err = env.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("group owner", func(t *testing.T) {
		req := connect.NewRequest(&pb.CreateGroupRequest{Name: "Camelot"})
		req.Header().Set("Authorization", "Bearer "+reg.Msg.Token)
		resp, err := env.groups.CreateGroup(ctx, req)
		require.NoError(t, err)

		group, err := env.store.GetGroup(ctx, resp.Msg.Group.Id)
		require.NoError(t, err)
		assert.Equal(t, reg.Msg.User.Id, group.OwnerID)
	})
}
