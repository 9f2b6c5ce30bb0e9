package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregate(t *testing.T) {
	sessions := []string{"s1", "s2", "empty"}
	rounds := []RoundRecord{
		{ID: "r1", SessionID: "s1", Number: 1, Bid: BidSingle},
		{ID: "r2", SessionID: "s1", Number: 2, Bid: BidAbundance},
		{ID: "r3", SessionID: "s2", Number: 1, Bid: BidSingle},
		{ID: "r4", SessionID: "elsewhere", Number: 1, Bid: BidSoloSlam},
		{ID: "r5", SessionID: "s2", Number: 2, Bid: "LEGACY"},
	}
	scores := []ScoreRecord{
		{RoundID: "r1", PlayerID: "ann", Points: 6},
		{RoundID: "r1", PlayerID: "bart", Points: -2},
		{RoundID: "r1", PlayerID: "chris", Points: -2},
		{RoundID: "r1", PlayerID: "dirk", Points: -2},
		{RoundID: "r2", PlayerID: "ann", Points: -6},
		{RoundID: "r2", PlayerID: "bart", Points: 18},
		{RoundID: "r2", PlayerID: "chris", Points: -6},
		{RoundID: "r2", PlayerID: "dirk", Points: -6},
		{RoundID: "r3", PlayerID: "chris", Points: 12},
		{RoundID: "r3", PlayerID: "dirk", Points: -4},
		{RoundID: "r4", PlayerID: "ann", Points: 48},
		{RoundID: "missing", PlayerID: "ann", Points: 100},
	}

	got := Aggregate(sessions, table, rounds, scores)

	wantCounts := func(kv map[BidKind]int) map[BidKind]int {
		m := zeroBidCounts()
		for k, v := range kv {
			m[k] = v
		}
		return m
	}
	want := Overview{
		Sessions: []SessionSummary{
			{
				SessionID:  "s1",
				Totals:     map[string]int{"ann": 0, "bart": 16, "chris": -8, "dirk": -8},
				RoundCount: 2,
				BidCounts:  wantCounts(map[BidKind]int{BidSingle: 1, BidAbundance: 1}),
			},
			{
				SessionID:  "s2",
				Totals:     map[string]int{"ann": 0, "bart": 0, "chris": 12, "dirk": -4},
				RoundCount: 2,
				BidCounts:  wantCounts(map[BidKind]int{BidSingle: 1}),
			},
			{
				SessionID: "empty",
				Totals:    map[string]int{"ann": 0, "bart": 0, "chris": 0, "dirk": 0},
				BidCounts: zeroBidCounts(),
			},
		},
		Totals:     map[string]int{"ann": 0, "bart": 16, "chris": 4, "dirk": -12},
		RoundCount: 4,
		BidCounts:  wantCounts(map[BidKind]int{BidSingle: 2, BidAbundance: 1}),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_EmptySession(t *testing.T) {
	got := Aggregate([]string{"quiet"}, table, nil, nil)

	s, ok := got.Session("quiet")
	if !ok {
		t.Fatal("session missing from overview")
	}
	for _, p := range table {
		if s.Totals[p] != 0 {
			t.Errorf("%s total = %d, want 0", p, s.Totals[p])
		}
	}
	for _, kind := range BidKinds() {
		if n, ok := s.BidCounts[kind]; !ok || n != 0 {
			t.Errorf("%s count = %d (present %v), want 0", kind, n, ok)
		}
	}
	if s.RoundCount != 0 || got.RoundCount != 0 {
		t.Errorf("round counts = %d/%d, want 0/0", s.RoundCount, got.RoundCount)
	}
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	rounds := []RoundRecord{{ID: "r1", SessionID: "s1", Number: 1, Bid: BidSingle}}
	scores := []ScoreRecord{{RoundID: "r1", PlayerID: "ann", Points: 6}}
	before := append([]ScoreRecord(nil), scores...)

	Aggregate([]string{"s1"}, table, rounds, scores)
	Aggregate([]string{"s1"}, table, rounds, scores)

	if diff := cmp.Diff(before, scores); diff != "" {
		t.Errorf("scores mutated (-before +after):\n%s", diff)
	}
}

func TestRoundTotals(t *testing.T) {
	rounds := []RoundRecord{
		{ID: "r2", SessionID: "s1", Number: 2, Bid: BidDouble},
		{ID: "r1", SessionID: "s1", Number: 1, Bid: BidSingle},
	}
	scores := []ScoreRecord{
		{RoundID: "r1", PlayerID: "ann", Points: 6},
		{RoundID: "r1", PlayerID: "bart", Points: -2},
		{RoundID: "r2", PlayerID: "chris", Points: 3},
		{RoundID: "gone", PlayerID: "dirk", Points: 9},
	}

	got := RoundTotals(table, rounds, scores)

	want := []RoundPoints{
		{RoundID: "r1", Number: 1, Bid: BidSingle, Points: map[string]int{"ann": 6, "bart": -2, "chris": 0, "dirk": 0}},
		{RoundID: "r2", Number: 2, Bid: BidDouble, Points: map[string]int{"ann": 0, "bart": 0, "chris": 3, "dirk": 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RoundTotals() mismatch (-want +got):\n%s", diff)
	}
	if rounds[0].ID != "r2" {
		t.Error("RoundTotals reordered its input")
	}
}
