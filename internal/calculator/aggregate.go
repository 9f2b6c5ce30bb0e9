package calculator

import "sort"

// RoundRecord is the minimal view of a persisted round needed for aggregation.
type RoundRecord struct {
	ID        string
	SessionID string
	Number    int
	Bid       BidKind
}

// ScoreRecord is one persisted (round, player, points) row.
type ScoreRecord struct {
	RoundID  string
	PlayerID string
	Points   int
}

// SessionSummary holds the folded results of one session.
type SessionSummary struct {
	SessionID  string
	Totals     map[string]int
	RoundCount int
	BidCounts  map[BidKind]int
}

// Overview holds per-session summaries, in the order the session ids were
// supplied, and their group-wide sums.
type Overview struct {
	Sessions   []SessionSummary
	Totals     map[string]int
	RoundCount int
	BidCounts  map[BidKind]int
}

// Session returns the summary for id, if present.
func (o Overview) Session(id string) (SessionSummary, bool) {
	for _, s := range o.Sessions {
		if s.SessionID == id {
			return s, true
		}
	}
	return SessionSummary{}, false
}

// Aggregate folds rounds and scores into per-session and group-wide totals.
//
// Every supplied player and every bid kind is present in each map, at 0 when
// there is no data. Rounds of unknown sessions and scores of unknown rounds
// are skipped; rounds with an unknown bid kind are counted as rounds but not
// per kind. Inputs are not modified.
func Aggregate(sessionIDs, playerIDs []string, rounds []RoundRecord, scores []ScoreRecord) Overview {
	overview := Overview{
		Sessions:  make([]SessionSummary, len(sessionIDs)),
		Totals:    zeroTotals(playerIDs),
		BidCounts: zeroBidCounts(),
	}

	index := make(map[string]int, len(sessionIDs))
	for i, id := range sessionIDs {
		index[id] = i
		overview.Sessions[i] = SessionSummary{
			SessionID: id,
			Totals:    zeroTotals(playerIDs),
			BidCounts: zeroBidCounts(),
		}
	}

	roundSession := make(map[string]int, len(rounds))
	for _, r := range rounds {
		i, ok := index[r.SessionID]
		if !ok {
			continue
		}
		roundSession[r.ID] = i
		s := &overview.Sessions[i]
		s.RoundCount++
		if _, known := s.BidCounts[r.Bid]; known {
			s.BidCounts[r.Bid]++
		}
	}

	for _, sc := range scores {
		i, ok := roundSession[sc.RoundID]
		if !ok {
			continue
		}
		overview.Sessions[i].Totals[sc.PlayerID] += sc.Points
	}

	for _, s := range overview.Sessions {
		for p, v := range s.Totals {
			overview.Totals[p] += v
		}
		overview.RoundCount += s.RoundCount
		for k, v := range s.BidCounts {
			overview.BidCounts[k] += v
		}
	}

	return overview
}

// RoundPoints is the folded result of one round.
type RoundPoints struct {
	RoundID string
	Number  int
	Bid     BidKind
	Points  map[string]int
}

// RoundTotals returns one entry per round, ordered by round number, with
// every supplied player present (0 when a score row is missing). Scores of
// rounds not in the list are skipped.
func RoundTotals(playerIDs []string, rounds []RoundRecord, scores []ScoreRecord) []RoundPoints {
	ordered := make([]RoundRecord, len(rounds))
	copy(ordered, rounds)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	out := make([]RoundPoints, len(ordered))
	index := make(map[string]int, len(ordered))
	for i, r := range ordered {
		index[r.ID] = i
		out[i] = RoundPoints{RoundID: r.ID, Number: r.Number, Bid: r.Bid, Points: zeroTotals(playerIDs)}
	}
	for _, sc := range scores {
		if i, ok := index[sc.RoundID]; ok {
			out[i].Points[sc.PlayerID] += sc.Points
		}
	}
	return out
}

func zeroTotals(playerIDs []string) map[string]int {
	m := make(map[string]int, len(playerIDs))
	for _, p := range playerIDs {
		m[p] = 0
	}
	return m
}

func zeroBidCounts() map[BidKind]int {
	m := make(map[BidKind]int, len(catalog))
	for _, b := range catalog {
		m[b.Kind] = 0
	}
	return m
}
