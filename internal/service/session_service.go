package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/kleurenwiezen/internal/calculator"
	"github.com/mmynk/kleurenwiezen/internal/metrics"
	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
	"github.com/mmynk/kleurenwiezen/pkg/proto/protoconnect"
)

const dateLayout = "2006-01-02"

var (
	errRoundRequired     = errors.New("round required")
	errNoteBodyRequired  = errors.New("note body required")
	errSessionHasNoNote  = errors.New("session has no note")
	errSessionIDRequired = errors.New("session_id required")
)

var _ protoconnect.SessionServiceHandler = (*SessionService)(nil)

// SessionService implements the Connect SessionService. It owns the
// round/score write protocol: a round is inserted first, then its scores, and
// the round is deleted again when the scores cannot be stored.
type SessionService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewSessionService creates a SessionService. m may be nil.
func NewSessionService(store storage.Store, m *metrics.Metrics) *SessionService {
	return &SessionService{store: store, metrics: m}
}

// CreateSession starts a new evening for the caller's group.
func (s *SessionService) CreateSession(ctx context.Context, req *connect.Request[pb.CreateSessionRequest]) (*connect.Response[pb.CreateSessionResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateSession request received", "group_id", groupID, "date", req.Msg.Date)

	date := strings.TrimSpace(req.Msg.Date)
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, invalidArgument(fmt.Errorf("date must be YYYY-MM-DD: %w", err))
		}
	}

	session := &models.Session{
		GroupID: groupID,
		Date:    date,
		Title:   strings.TrimSpace(req.Msg.Title),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("CreateSession failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Session created", "session_id", session.ID, "date", session.Date)

	return connect.NewResponse(&pb.CreateSessionResponse{Session: toProtoSession(session)}), nil
}

// ListSessions returns the group's sessions newest first, with round counts
// and per-player totals.
func (s *SessionService) ListSessions(ctx context.Context, req *connect.Request[pb.ListSessionsRequest]) (*connect.Response[pb.ListSessionsResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}

	data, err := loadGroupData(ctx, s.store, groupID)
	if err != nil {
		slog.Error("ListSessions failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListSessions successful", "group_id", groupID, "count", len(data.sessions))

	return connect.NewResponse(&pb.ListSessionsResponse{
		Sessions: data.summaries(data.overview()),
	}), nil
}

// GetSession returns a session's rounds, totals, round-level series and note.
func (s *SessionService) GetSession(ctx context.Context, req *connect.Request[pb.GetSessionRequest]) (*connect.Response[pb.GetSessionResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("GetSession request received", "session_id", req.Msg.SessionId)

	session, err := s.groupSession(ctx, groupID, req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	view, err := loadSessionView(ctx, s.store, session)
	if err != nil {
		slog.Error("GetSession failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}

	note, err := s.store.LatestNote(ctx, session.ID)
	if err != nil {
		slog.Error("GetSession failed to load note", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}

	rounds := make([]*pb.Round, len(view.rounds))
	for i, r := range view.rounds {
		rounds[i] = toProtoRound(r, view.points[r.ID])
	}

	slog.Info("GetSession successful", "session_id", session.ID, "rounds", len(rounds))

	return connect.NewResponse(&pb.GetSessionResponse{
		Session:         toProtoSession(session),
		Rounds:          rounds,
		Totals:          toProtoTotals(view.players, view.totals),
		NextRoundNumber: int32(nextRoundNumber(view.rounds)),
		Chart:           toProtoChart(view.chart, playerNames(view.players)),
		Note:            toProtoNote(note),
	}), nil
}

// DeleteSession removes a session with its rounds, scores and notes.
func (s *SessionService) DeleteSession(ctx context.Context, req *connect.Request[pb.DeleteSessionRequest]) (*connect.Response[emptypb.Empty], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteSession request received", "session_id", req.Msg.SessionId)

	session, err := s.groupSession(ctx, groupID, req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteSession(ctx, session.ID); err != nil {
		slog.Error("DeleteSession failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Session deleted", "session_id", session.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// PreviewRound scores a round without storing it.
func (s *SessionService) PreviewRound(ctx context.Context, req *connect.Request[pb.PreviewRoundRequest]) (*connect.Response[pb.PreviewRoundResponse], error) {
	input, points, err := s.scoreRound(req.Msg.Round)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&pb.PreviewRoundResponse{
		Points:     toProtoPoints(points),
		Multiplier: int32(input.Multiplier),
	}), nil
}

// AddRound scores a round and stores it with its four scores as the next
// round of the session.
func (s *SessionService) AddRound(ctx context.Context, req *connect.Request[pb.AddRoundRequest]) (*connect.Response[pb.AddRoundResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddRound request received", "session_id", req.Msg.SessionId)

	session, err := s.groupSession(ctx, groupID, req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	input, points, err := s.scoreRound(req.Msg.Round)
	if err != nil {
		return nil, err
	}

	if err := s.checkSeated(ctx, groupID, input.Players); err != nil {
		return nil, err
	}

	existing, err := s.store.ListRounds(ctx, []string{session.ID})
	if err != nil {
		slog.Error("AddRound failed to list rounds", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}

	round := &models.Round{
		SessionID:  session.ID,
		Number:     nextRoundNumber(existing),
		BidKind:    string(input.Bid),
		Overtricks: calculator.NormalizeOvertricks(input.Bid, input.Overtricks),
		Multiplier: input.Multiplier,
	}
	if err := s.store.CreateRound(ctx, round); err != nil {
		slog.Error("AddRound failed to insert round", "session_id", session.ID, "number", round.Number, "error", err)
		return nil, toConnectError(err)
	}

	scores := make([]models.Score, 0, len(input.Players))
	for _, p := range input.Players {
		scores = append(scores, models.Score{RoundID: round.ID, PlayerID: p, Points: points[p]})
	}
	if err := s.store.CreateScores(ctx, scores); err != nil {
		slog.Error("AddRound failed to insert scores", "round_id", round.ID, "error", err)
		// The round must not outlive a failed score insert
		if delErr := s.store.DeleteRound(context.WithoutCancel(ctx), round.ID); delErr != nil {
			slog.Error("AddRound compensating delete failed", "round_id", round.ID, "error", delErr)
		}
		return nil, toConnectError(err)
	}

	s.metrics.RoundScored(string(input.Bid))
	slog.Info("Round added",
		"session_id", session.ID,
		"round_id", round.ID,
		"number", round.Number,
		"bid", round.BidKind,
		"multiplier", round.Multiplier,
	)

	return connect.NewResponse(&pb.AddRoundResponse{Round: toProtoRound(round, points)}), nil
}

// DeleteRound removes a round and its scores.
func (s *SessionService) DeleteRound(ctx context.Context, req *connect.Request[pb.DeleteRoundRequest]) (*connect.Response[emptypb.Empty], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteRound request received", "round_id", req.Msg.RoundId)

	round, err := s.store.GetRound(ctx, req.Msg.RoundId)
	if err != nil {
		slog.Warn("DeleteRound failed", "round_id", req.Msg.RoundId, "error", err)
		return nil, toConnectError(err)
	}
	if _, err := s.groupSession(ctx, groupID, round.SessionID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteRound(ctx, round.ID); err != nil {
		slog.Error("DeleteRound failed", "round_id", round.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Round deleted", "round_id", round.ID, "session_id", round.SessionID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// SaveNote updates the session's note, or writes the first one.
func (s *SessionService) SaveNote(ctx context.Context, req *connect.Request[pb.SaveNoteRequest]) (*connect.Response[pb.SaveNoteResponse], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}

	body := strings.TrimSpace(req.Msg.Body)
	if body == "" {
		return nil, invalidArgument(errNoteBodyRequired)
	}

	session, err := s.groupSession(ctx, groupID, req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	latest, err := s.store.LatestNote(ctx, session.ID)
	if err != nil {
		slog.Error("SaveNote failed to load note", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}

	note := &models.SessionNote{SessionID: session.ID, Body: body}
	if latest != nil {
		note.ID = latest.ID
		note.CreatedAt = latest.CreatedAt
	}
	if err := s.store.SaveNote(ctx, note); err != nil {
		slog.Error("SaveNote failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Note saved", "session_id", session.ID, "note_id", note.ID)
	return connect.NewResponse(&pb.SaveNoteResponse{Note: toProtoNote(note)}), nil
}

// DeleteNote removes the session's note.
func (s *SessionService) DeleteNote(ctx context.Context, req *connect.Request[pb.DeleteNoteRequest]) (*connect.Response[emptypb.Empty], error) {
	groupID, err := requireGroup(ctx)
	if err != nil {
		return nil, err
	}

	session, err := s.groupSession(ctx, groupID, req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	latest, err := s.store.LatestNote(ctx, session.ID)
	if err != nil {
		slog.Error("DeleteNote failed to load note", "session_id", session.ID, "error", err)
		return nil, toConnectError(err)
	}
	if latest == nil {
		return nil, connect.NewError(connect.CodeNotFound, errSessionHasNoNote)
	}

	if err := s.store.DeleteNote(ctx, latest.ID); err != nil {
		slog.Error("DeleteNote failed", "note_id", latest.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Note deleted", "session_id", session.ID, "note_id", latest.ID)
	return connect.NewResponse(&emptypb.Empty{}), nil
}

// groupSession loads a session and hides sessions of other groups.
func (s *SessionService) groupSession(ctx context.Context, groupID, sessionID string) (*models.Session, error) {
	return findGroupSession(ctx, s.store, groupID, sessionID)
}

func findGroupSession(ctx context.Context, store storage.Store, groupID, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, invalidArgument(errSessionIDRequired)
	}
	session, err := store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if session.GroupID != groupID {
		return nil, toConnectError(fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound))
	}
	return session, nil
}

// scoreRound parses and scores a round, counting rejections by kind.
func (s *SessionService) scoreRound(in *pb.RoundInput) (calculator.RoundInput, map[string]int, error) {
	if in == nil {
		return calculator.RoundInput{}, nil, invalidArgument(errRoundRequired)
	}

	input := calculator.RoundInput{
		Players:    in.Players,
		Winners:    in.Winners,
		Overtricks: int(in.Overtricks),
		Multiplier: calculator.Multipliers{
			Pass:       in.Pass,
			SecondPass: in.SecondPass,
			FullRound:  in.FullRound,
		}.Factor(),
	}

	kind, err := calculator.ParseBidKind(in.Bid)
	if err == nil {
		input.Bid = kind
		var points map[string]int
		if points, err = calculator.ScoreRound(input); err == nil {
			return input, points, nil
		}
	}

	errKind := calculator.Kind(err)
	s.metrics.ScoringFailed(string(errKind))
	slog.Warn("Round rejected", "bid", in.Bid, "kind", errKind, "error", err)
	return input, nil, toConnectError(err)
}

// checkSeated verifies every seated player belongs to the group.
func (s *SessionService) checkSeated(ctx context.Context, groupID string, players []string) error {
	members, err := s.store.ListPlayers(ctx, groupID)
	if err != nil {
		return toConnectError(err)
	}
	known := make(map[string]bool, len(members))
	for _, p := range members {
		known[p.ID] = true
	}
	for _, p := range players {
		if !known[p] {
			return invalidArgument(fmt.Errorf("player %q is not in this group", p))
		}
	}
	return nil
}

func nextRoundNumber(rounds []*models.Round) int {
	next := 1
	for _, r := range rounds {
		if r.Number >= next {
			next = r.Number + 1
		}
	}
	return next
}

// sessionView is one session folded for display.
type sessionView struct {
	players []*models.Player
	rounds  []*models.Round           // by number
	points  map[string]map[string]int // round id -> player id -> points
	totals  map[string]int
	chart   calculator.Chart // one step per round
}

func loadSessionView(ctx context.Context, store storage.Store, session *models.Session) (*sessionView, error) {
	players, err := store.ListPlayers(ctx, session.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	rounds, err := store.ListRounds(ctx, []string{session.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	scores, err := store.ListScores(ctx, roundIDs(rounds))
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	points := make(map[string]map[string]int, len(rounds))
	for _, sc := range scores {
		if points[sc.RoundID] == nil {
			points[sc.RoundID] = make(map[string]int, calculator.PlayersPerRound)
		}
		points[sc.RoundID][sc.PlayerID] = sc.Points
	}

	playerIDs := make([]string, len(players))
	for i, p := range players {
		playerIDs[i] = p.ID
	}
	records, scoreRows := roundRecords(rounds), scoreRecords(scores)
	ov := calculator.Aggregate([]string{session.ID}, playerIDs, records, scoreRows)
	folded := calculator.RoundTotals(playerIDs, records, scoreRows)

	return &sessionView{
		players: players,
		rounds:  rounds,
		points:  points,
		totals:  ov.Totals,
		chart:   calculator.Cumulative(playerIDs, calculator.RoundSteps(folded)),
	}, nil
}
