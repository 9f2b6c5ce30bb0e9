package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kleurenwiezen/internal/middleware"
	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
	"github.com/mmynk/kleurenwiezen/pkg/proto/protoconnect"
)

var (
	errGroupNameRequired  = errors.New("group name required")
	errPlayerNameRequired = errors.New("player name required")
)

var _ protoconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group and its initial players. The caller, when
// signed in, becomes the owner.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"players_count", len(req.Msg.Players),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errGroupNameRequired)
	}

	group := &models.Group{
		Name:     name,
		JoinCode: strings.TrimSpace(req.Msg.JoinCode),
		OwnerID:  middleware.GetUserID(ctx),
	}

	// Save to storage (generates ID, join code and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	players := make([]*models.Player, 0, len(req.Msg.Players))
	for _, playerName := range req.Msg.Players {
		playerName = strings.TrimSpace(playerName)
		if playerName == "" {
			continue
		}
		player := &models.Player{GroupID: group.ID, Name: playerName}
		if err := s.store.CreatePlayer(ctx, player); err != nil {
			slog.Error("CreateGroup failed to add player", "group_id", group.ID, "error", err)
			return nil, toConnectError(err)
		}
		players = append(players, player)
	}

	slog.Info("Group created", "group_id", group.ID, "join_code", group.JoinCode)

	return connect.NewResponse(&pb.CreateGroupResponse{
		Group:   toProtoGroup(group),
		Players: toProtoPlayers(players),
	}), nil
}

// JoinGroup resolves a join code. Clients send the code back in the
// Kw-Join-Code header on every later call.
func (s *GroupService) JoinGroup(ctx context.Context, req *connect.Request[pb.JoinGroupRequest]) (*connect.Response[pb.JoinGroupResponse], error) {
	slog.Info("JoinGroup request received")

	group, err := s.store.GetGroupByJoinCode(ctx, req.Msg.JoinCode)
	if err != nil {
		slog.Warn("JoinGroup failed", "error", err)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, middleware.ErrUnknownJoinCode)
		}
		return nil, toConnectError(err)
	}

	players, err := s.store.ListPlayers(ctx, group.ID)
	if err != nil {
		slog.Error("JoinGroup failed to list players", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("JoinGroup successful", "group_id", group.ID, "name", group.Name)

	return connect.NewResponse(&pb.JoinGroupResponse{
		Group:   toProtoGroup(group),
		Players: toProtoPlayers(players),
	}), nil
}

// AddPlayer adds a player to the caller's group.
func (s *GroupService) AddPlayer(ctx context.Context, req *connect.Request[pb.AddPlayerRequest]) (*connect.Response[pb.AddPlayerResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddPlayer request received", "group_id", groupID, "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(errPlayerNameRequired)
	}

	player := &models.Player{GroupID: groupID, Name: name}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		slog.Error("AddPlayer failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Player added", "group_id", groupID, "player_id", player.ID)

	return connect.NewResponse(&pb.AddPlayerResponse{
		Player: &pb.Player{Id: player.ID, Name: player.Name},
	}), nil
}

// ListPlayers returns the caller's group players ordered by name.
func (s *GroupService) ListPlayers(ctx context.Context, req *connect.Request[pb.ListPlayersRequest]) (*connect.Response[pb.ListPlayersResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}

	players, err := s.store.ListPlayers(ctx, groupID)
	if err != nil {
		slog.Error("ListPlayers failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListPlayers successful", "group_id", groupID, "count", len(players))

	return connect.NewResponse(&pb.ListPlayersResponse{
		Players: toProtoPlayers(players),
	}), nil
}
