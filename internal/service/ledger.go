package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/mmynk/kleurenwiezen/internal/calculator"
	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
	pb "github.com/mmynk/kleurenwiezen/pkg/proto"
)

// groupData is everything recorded for one group, loaded in four queries.
type groupData struct {
	players  []*models.Player
	sessions []*models.Session // oldest first
	rounds   []*models.Round
	scores   []models.Score
}

func loadGroupData(ctx context.Context, store storage.Store, groupID string) (*groupData, error) {
	players, err := store.ListPlayers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	sessions, err := store.ListSessions(ctx, groupID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	sessionIDs := make([]string, len(sessions))
	for i, s := range sessions {
		sessionIDs[i] = s.ID
	}
	rounds, err := store.ListRounds(ctx, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load rounds: %w", err)
	}
	scores, err := store.ListScores(ctx, roundIDs(rounds))
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	return &groupData{players: players, sessions: sessions, rounds: rounds, scores: scores}, nil
}

func (d *groupData) playerIDs() []string {
	ids := make([]string, len(d.players))
	for i, p := range d.players {
		ids[i] = p.ID
	}
	return ids
}

func (d *groupData) sessionIDs() []string {
	ids := make([]string, len(d.sessions))
	for i, s := range d.sessions {
		ids[i] = s.ID
	}
	return ids
}

func (d *groupData) overview() calculator.Overview {
	return calculator.Aggregate(d.sessionIDs(), d.playerIDs(), roundRecords(d.rounds), scoreRecords(d.scores))
}

// sessionChart is the group-wide cumulative series, one step per session
// labelled with its date.
func (d *groupData) sessionChart(ov calculator.Overview) calculator.Chart {
	labels := make([]calculator.SessionLabel, len(d.sessions))
	for i, s := range d.sessions {
		labels[i] = calculator.SessionLabel{SessionID: s.ID, Label: s.Date}
	}
	return calculator.Cumulative(d.playerIDs(), calculator.SessionSteps(ov, labels))
}

// summaries returns session summaries, newest first.
func (d *groupData) summaries(ov calculator.Overview) []*pb.SessionSummary {
	out := make([]*pb.SessionSummary, 0, len(d.sessions))
	for i := len(d.sessions) - 1; i >= 0; i-- {
		s := d.sessions[i]
		summary, _ := ov.Session(s.ID)
		out = append(out, &pb.SessionSummary{
			Session:    toProtoSession(s),
			RoundCount: int32(summary.RoundCount),
			Totals:     toProtoTotals(d.players, summary.Totals),
		})
	}
	return out
}

func playerNames(players []*models.Player) map[string]string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	return names
}

func roundIDs(rounds []*models.Round) []string {
	ids := make([]string, len(rounds))
	for i, r := range rounds {
		ids[i] = r.ID
	}
	return ids
}

func roundRecords(rounds []*models.Round) []calculator.RoundRecord {
	out := make([]calculator.RoundRecord, len(rounds))
	for i, r := range rounds {
		out[i] = calculator.RoundRecord{
			ID:        r.ID,
			SessionID: r.SessionID,
			Number:    r.Number,
			Bid:       calculator.BidKind(r.BidKind),
		}
	}
	return out
}

func scoreRecords(scores []models.Score) []calculator.ScoreRecord {
	out := make([]calculator.ScoreRecord, len(scores))
	for i, sc := range scores {
		out[i] = calculator.ScoreRecord{RoundID: sc.RoundID, PlayerID: sc.PlayerID, Points: sc.Points}
	}
	return out
}

func toProtoGroup(g *models.Group) *pb.Group {
	return &pb.Group{Id: g.ID, Name: g.Name, JoinCode: g.JoinCode, CreatedAt: g.CreatedAt}
}

func toProtoPlayers(players []*models.Player) []*pb.Player {
	out := make([]*pb.Player, len(players))
	for i, p := range players {
		out[i] = &pb.Player{Id: p.ID, Name: p.Name}
	}
	return out
}

func toProtoSession(s *models.Session) *pb.Session {
	return &pb.Session{Id: s.ID, Date: s.Date, Title: s.Title}
}

func toProtoNote(n *models.SessionNote) *pb.Note {
	if n == nil {
		return nil
	}
	return &pb.Note{Id: n.ID, Body: n.Body, CreatedAt: n.CreatedAt}
}

func toProtoRound(r *models.Round, points map[string]int) *pb.Round {
	kind := calculator.BidKind(r.BidKind)
	return &pb.Round{
		Id:         r.ID,
		Number:     int32(r.Number),
		Bid:        r.BidKind,
		BidLabel:   kind.Label(),
		Overtricks: int32(r.Overtricks),
		Multiplier: int32(r.Multiplier),
		Points:     toProtoPoints(points),
	}
}

// toProtoTotals lists the group's players in name order, followed by any ids
// that scored but are no longer known, in id order.
func toProtoTotals(players []*models.Player, totals map[string]int) []*pb.PlayerTotal {
	out := make([]*pb.PlayerTotal, 0, len(totals))
	known := make(map[string]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
		out = append(out, &pb.PlayerTotal{PlayerId: p.ID, Name: p.Name, Points: int32(totals[p.ID])})
	}

	var extra []string
	for id := range totals {
		if !known[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		out = append(out, &pb.PlayerTotal{PlayerId: id, Name: id, Points: int32(totals[id])})
	}
	return out
}

func toProtoChart(c calculator.Chart, names map[string]string) *pb.Chart {
	out := &pb.Chart{Labels: c.Labels, Series: make([]*pb.Series, len(c.Series))}
	for i, s := range c.Series {
		out.Series[i] = &pb.Series{PlayerId: s.PlayerID, Name: names[s.PlayerID], Values: int32s(s.Values)}
	}
	return out
}

func toProtoPoints(points map[string]int) map[string]int32 {
	out := make(map[string]int32, len(points))
	for id, p := range points {
		out[id] = int32(p)
	}
	return out
}

func int32s(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}
