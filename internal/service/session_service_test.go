package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
	"github.com/mmynk/kleurenwiezen/pkg/proto/protoconnect"
)

func createSession(t *testing.T, env *testEnv, code, date string) *pb.Session {
	t.Helper()

	resp, err := env.sessions.CreateSession(context.Background(), scoped(code, &pb.CreateSessionRequest{Date: date}))
	require.NoError(t, err, "CreateSession")
	return resp.Msg.Session
}

func addRound(t *testing.T, env *testEnv, code, sessionID string, round *pb.RoundInput) *pb.Round {
	t.Helper()

	resp, err := env.sessions.AddRound(context.Background(), scoped(code, &pb.AddRoundRequest{
		SessionId: sessionID,
		Round:     round,
	}))
	require.NoError(t, err, "AddRound")
	return resp.Msg.Round
}

func single(players []string, winner string, overtricks int32) *pb.RoundInput {
	return &pb.RoundInput{
		Players:    players,
		Bid:        "SINGLE",
		Winners:    []string{winner},
		Overtricks: overtricks,
	}
}

func TestCreateSession(t *testing.T) {
	env := setupTestServer(t)
	code, _ := seedGroup(t, env)

	session := createSession(t, env, code, "2025-01-09")
	assert.NotEmpty(t, session.Id)
	assert.Equal(t, "2025-01-09", session.Date)
	assert.Equal(t, "Avond 2025-01-09", session.Title)

	_, err := env.sessions.CreateSession(context.Background(), scoped(code, &pb.CreateSessionRequest{Date: "9 januari"}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestAddRound(t *testing.T) {
	env := setupTestServer(t)
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	first := addRound(t, env, code, session.Id, single(players, players[0], 1))
	assert.Equal(t, int32(1), first.Number)
	assert.Equal(t, "Enkel", first.BidLabel)
	assert.Equal(t, int32(1), first.Multiplier)
	if diff := cmp.Diff(map[string]int32{
		players[0]: 9, players[1]: -3, players[2]: -3, players[3]: -3,
	}, first.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	second := addRound(t, env, code, session.Id, &pb.RoundInput{
		Players: players,
		Bid:     "dubbel",
		Winners: []string{players[1], players[2]},
		Pass:    true,
	})
	assert.Equal(t, int32(2), second.Number)
	assert.Equal(t, "DOUBLE", second.Bid)
	assert.Equal(t, int32(2), second.Multiplier)
	if diff := cmp.Diff(map[string]int32{
		players[0]: -4, players[1]: 4, players[2]: 4, players[3]: -4,
	}, second.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	resp, err := env.sessions.GetSession(context.Background(), scoped(code, &pb.GetSessionRequest{SessionId: session.Id}))
	require.NoError(t, err)

	assert.Len(t, resp.Msg.Rounds, 2)
	assert.Equal(t, int32(3), resp.Msg.NextRoundNumber)

	totals := make(map[string]int32)
	var sum int32
	for _, pt := range resp.Msg.Totals {
		totals[pt.PlayerId] = pt.Points
		sum += pt.Points
	}
	assert.Zero(t, sum, "session totals must sum to zero")
	if diff := cmp.Diff(map[string]int32{
		players[0]: 5, players[1]: 1, players[2]: 1, players[3]: -7,
	}, totals); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"1", "2"}, resp.Msg.Chart.Labels)
	require.Len(t, resp.Msg.Chart.Series, 4)
	assert.Equal(t, "Ann", resp.Msg.Chart.Series[0].Name)
	assert.Equal(t, []int32{9, 5}, resp.Msg.Chart.Series[0].Values)

	// One SINGLE and one DOUBLE series
	assert.Equal(t, 2, testutil.CollectAndCount(env.metrics.Registry(), "kleurenwiezen_rounds_scored_total"))
}

func TestAddRound_ScoringErrors(t *testing.T) {
	env := setupTestServer(t)
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	tests := []struct {
		name  string
		round *pb.RoundInput
		kind  string
	}{
		{
			name:  "two winners on a single",
			round: &pb.RoundInput{Players: players, Bid: "SINGLE", Winners: players[:2]},
			kind:  "InvalidWinnerCount",
		},
		{
			name:  "unknown bid",
			round: &pb.RoundInput{Players: players, Bid: "POKER", Winners: players[:1]},
			kind:  "UnknownBid",
		},
		{
			name:  "three players",
			round: &pb.RoundInput{Players: players[:3], Bid: "SINGLE", Winners: players[:1]},
			kind:  "InvalidPlayerCount",
		},
		{
			name:  "winner not at the table",
			round: &pb.RoundInput{Players: players, Bid: "ABUNDANCE", Winners: []string{"onbekend"}},
			kind:  "InvalidWinnerCount",
		},
		{
			name:  "duplicate player",
			round: &pb.RoundInput{Players: []string{players[0], players[0], players[1], players[2]}, Bid: "SINGLE", Winners: players[:1]},
			kind:  "InvalidPlayerCount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.sessions.AddRound(context.Background(), scoped(code, &pb.AddRoundRequest{
				SessionId: session.Id,
				Round:     tt.round,
			}))
			connectErr := requireCode(t, err, connect.CodeInvalidArgument)
			assert.Equal(t, tt.kind, connectErr.Meta().Get(ErrorKindHeader))
		})
	}
}

func TestAddRound_PlayerNotInGroup(t *testing.T) {
	env := setupTestServer(t)
	code, players := seedGroup(t, env)
	_, strangers := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	table := []string{players[0], players[1], players[2], strangers[0]}
	_, err := env.sessions.AddRound(context.Background(), scoped(code, &pb.AddRoundRequest{
		SessionId: session.Id,
		Round:     single(table, players[0], 0),
	}))
	connectErr := requireCode(t, err, connect.CodeInvalidArgument)
	assert.Empty(t, connectErr.Meta().Get(ErrorKindHeader))
}

// failingScores stores everything except scores.
type failingScores struct {
	storage.Store
}

func (failingScores) CreateScores(ctx context.Context, scores []models.Score) error {
	return errors.New("disk full")
}

func TestAddRound_ScoresFailRemovesRound(t *testing.T) {
	env := setupTestServer(t, func(s storage.Store) storage.Store { return failingScores{Store: s} })
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	_, err := env.sessions.AddRound(context.Background(), scoped(code, &pb.AddRoundRequest{
		SessionId: session.Id,
		Round:     single(players, players[0], 0),
	}))
	requireCode(t, err, connect.CodeInternal)

	rounds, err := env.store.ListRounds(context.Background(), []string{session.Id})
	require.NoError(t, err)
	assert.Empty(t, rounds, "round must be removed when its scores cannot be stored")
}

func TestPreviewRound(t *testing.T) {
	env := setupTestServer(t)
	players := []string{"a", "b", "c", "d"}

	resp, err := env.sessions.PreviewRound(context.Background(), connect.NewRequest(&pb.PreviewRoundRequest{
		Round: &pb.RoundInput{
			Players:    players,
			Bid:        "ABUNDANCE",
			Winners:    []string{"c"},
			SecondPass: true,
			FullRound:  true,
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, int32(8), resp.Msg.Multiplier)
	if diff := cmp.Diff(map[string]int32{"a": -48, "b": -48, "c": 144, "d": -48}, resp.Msg.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	_, err = env.sessions.PreviewRound(context.Background(), connect.NewRequest(&pb.PreviewRoundRequest{}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestPreviewRound_JSON(t *testing.T) {
	env := setupTestServer(t)

	body := `{"round":{"players":["a","b","c","d"],"bid":"SINGLE","winners":["a"],"overtricks":1,"secondPass":true}}`
	resp, err := http.Post(env.server.URL+protoconnect.SessionServicePreviewRoundProcedure, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got struct {
		Points     map[string]int `json:"points"`
		Multiplier int            `json:"multiplier"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 2, got.Multiplier)
	assert.Equal(t, map[string]int{"a": 18, "b": -6, "c": -6, "d": -6}, got.Points)
}

func TestDeleteRound(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	code, players := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	first := addRound(t, env, code, session.Id, single(players, players[0], 0))
	addRound(t, env, code, session.Id, single(players, players[1], 0))

	_, err := env.sessions.DeleteRound(ctx, scoped(code, &pb.DeleteRoundRequest{RoundId: first.Id}))
	require.NoError(t, err)

	resp, err := env.sessions.GetSession(ctx, scoped(code, &pb.GetSessionRequest{SessionId: session.Id}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Rounds, 1)
	assert.Equal(t, int32(2), resp.Msg.Rounds[0].Number)
	assert.Equal(t, int32(3), resp.Msg.NextRoundNumber)

	_, err = env.sessions.DeleteRound(ctx, scoped(code, &pb.DeleteRoundRequest{RoundId: first.Id}))
	requireCode(t, err, connect.CodeNotFound)
}

func TestSessions_OtherGroupIsHidden(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	code, players := seedGroup(t, env)
	other, _ := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")
	round := addRound(t, env, code, session.Id, single(players, players[0], 0))

	_, err := env.sessions.GetSession(ctx, scoped(other, &pb.GetSessionRequest{SessionId: session.Id}))
	requireCode(t, err, connect.CodeNotFound)

	_, err = env.sessions.DeleteRound(ctx, scoped(other, &pb.DeleteRoundRequest{RoundId: round.Id}))
	requireCode(t, err, connect.CodeNotFound)

	_, err = env.sessions.DeleteSession(ctx, scoped(other, &pb.DeleteSessionRequest{SessionId: session.Id}))
	requireCode(t, err, connect.CodeNotFound)

	list, err := env.sessions.ListSessions(ctx, scoped(other, &pb.ListSessionsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Sessions)
}

func TestListAndDeleteSessions(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	code, players := seedGroup(t, env)

	older := createSession(t, env, code, "2025-01-02")
	newer := createSession(t, env, code, "2025-01-09")
	addRound(t, env, code, older.Id, single(players, players[3], 2))

	resp, err := env.sessions.ListSessions(ctx, scoped(code, &pb.ListSessionsRequest{}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Sessions, 2)
	assert.Equal(t, newer.Id, resp.Msg.Sessions[0].Session.Id)
	assert.Zero(t, resp.Msg.Sessions[0].RoundCount)
	assert.Equal(t, int32(1), resp.Msg.Sessions[1].RoundCount)
	assert.Equal(t, int32(12), resp.Msg.Sessions[1].Totals[3].Points)

	_, err = env.sessions.DeleteSession(ctx, scoped(code, &pb.DeleteSessionRequest{SessionId: older.Id}))
	require.NoError(t, err)

	resp, err = env.sessions.ListSessions(ctx, scoped(code, &pb.ListSessionsRequest{}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Sessions, 1)
	assert.Equal(t, newer.Id, resp.Msg.Sessions[0].Session.Id)

	_, err = env.sessions.DeleteSession(ctx, scoped(code, &pb.DeleteSessionRequest{}))
	requireCode(t, err, connect.CodeInvalidArgument)
}

func TestNotes(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	code, _ := seedGroup(t, env)
	session := createSession(t, env, code, "2025-01-09")

	first, err := env.sessions.SaveNote(ctx, scoped(code, &pb.SaveNoteRequest{SessionId: session.Id, Body: " Bart trakteert "}))
	require.NoError(t, err)
	assert.Equal(t, "Bart trakteert", first.Msg.Note.Body)

	second, err := env.sessions.SaveNote(ctx, scoped(code, &pb.SaveNoteRequest{SessionId: session.Id, Body: "Dirk trakteert"}))
	require.NoError(t, err)
	assert.Equal(t, first.Msg.Note.Id, second.Msg.Note.Id, "saving again updates the same note")

	got, err := env.sessions.GetSession(ctx, scoped(code, &pb.GetSessionRequest{SessionId: session.Id}))
	require.NoError(t, err)
	require.NotNil(t, got.Msg.Note)
	assert.Equal(t, "Dirk trakteert", got.Msg.Note.Body)

	_, err = env.sessions.SaveNote(ctx, scoped(code, &pb.SaveNoteRequest{SessionId: session.Id, Body: "   "}))
	requireCode(t, err, connect.CodeInvalidArgument)

	_, err = env.sessions.DeleteNote(ctx, scoped(code, &pb.DeleteNoteRequest{SessionId: session.Id}))
	require.NoError(t, err)

	got, err = env.sessions.GetSession(ctx, scoped(code, &pb.GetSessionRequest{SessionId: session.Id}))
	require.NoError(t, err)
	assert.Nil(t, got.Msg.Note)

	_, err = env.sessions.DeleteNote(ctx, scoped(code, &pb.DeleteNoteRequest{SessionId: session.Id}))
	requireCode(t, err, connect.CodeNotFound)
}
