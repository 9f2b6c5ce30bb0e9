package calculator

import (
	"errors"
	"fmt"
	"testing"
)

var table = []string{"ann", "bart", "chris", "dirk"}

func TestScoreRound(t *testing.T) {
	tests := []struct {
		name       string
		bid        BidKind
		winners    []string
		overtricks int
		multiplier int
		want       map[string]int
	}{
		{
			name:    "single made exactly",
			bid:     BidSingle,
			winners: []string{"ann"},
			want:    map[string]int{"ann": 6, "bart": -2, "chris": -2, "dirk": -2},
		},
		{
			name:       "single with two overtricks",
			bid:        BidSingle,
			winners:    []string{"bart"},
			overtricks: 2,
			want:       map[string]int{"ann": -4, "bart": 12, "chris": -4, "dirk": -4},
		},
		{
			name:       "single one short",
			bid:        BidSingle,
			winners:    []string{"ann"},
			overtricks: -1,
			want:       map[string]int{"ann": -9, "bart": 3, "chris": 3, "dirk": 3},
		},
		{
			name:       "double with one overtrick",
			bid:        BidDouble,
			winners:    []string{"ann", "chris"},
			overtricks: 1,
			want:       map[string]int{"ann": 3, "bart": -3, "chris": 3, "dirk": -3},
		},
		{
			name:       "double two short",
			bid:        BidDouble,
			winners:    []string{"ann", "bart"},
			overtricks: -2,
			want:       map[string]int{"ann": -4, "bart": -4, "chris": 4, "dirk": 4},
		},
		{
			name:       "treble one short",
			bid:        BidTreble,
			winners:    []string{"ann", "bart"},
			overtricks: -1,
			want:       map[string]int{"ann": -6, "bart": -6, "chris": 6, "dirk": 6},
		},
		{
			name:       "treble with one overtrick",
			bid:        BidTreble,
			winners:    []string{"chris", "dirk"},
			overtricks: 1,
			want:       map[string]int{"ann": -6, "bart": -6, "chris": 6, "dirk": 6},
		},
		{
			name:       "small misery two winners",
			bid:        BidSmallMisery,
			winners:    []string{"ann", "dirk"},
			multiplier: 1,
			want:       map[string]int{"ann": 6, "bart": -6, "chris": -6, "dirk": 6},
		},
		{
			name:    "small misery one winner",
			bid:     BidSmallMisery,
			winners: []string{"chris"},
			want:    map[string]int{"ann": -4, "bart": -4, "chris": 12, "dirk": -4},
		},
		{
			name:    "large misery three winners",
			bid:     BidLargeMisery,
			winners: []string{"ann", "bart", "chris"},
			want:    map[string]int{"ann": 8, "bart": 8, "chris": 8, "dirk": -24},
		},
		{
			name:       "abundance doubled",
			bid:        BidAbundance,
			winners:    []string{"ann"},
			multiplier: 2,
			want:       map[string]int{"ann": 36, "bart": -12, "chris": -12, "dirk": -12},
		},
		{
			name:       "abundance ignores overtricks",
			bid:        BidAbundance,
			winners:    []string{"bart"},
			overtricks: 5,
			want:       map[string]int{"ann": -6, "bart": 18, "chris": -6, "dirk": -6},
		},
		{
			name:    "solo slam",
			bid:     BidSoloSlam,
			winners: []string{"dirk"},
			want:    map[string]int{"ann": -16, "bart": -16, "chris": -16, "dirk": 48},
		},
		{
			name:       "non-positive multiplier counts as one",
			bid:        BidSingle,
			winners:    []string{"ann"},
			multiplier: -3,
			want:       map[string]int{"ann": 6, "bart": -2, "chris": -2, "dirk": -2},
		},
		{
			name:       "duplicate winner collapses",
			bid:        BidSingle,
			winners:    []string{"ann", "ann"},
			multiplier: 16,
			want:       map[string]int{"ann": 96, "bart": -32, "chris": -32, "dirk": -32},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreRound(RoundInput{
				Players:    table,
				Bid:        tt.bid,
				Winners:    tt.winners,
				Overtricks: tt.overtricks,
				Multiplier: tt.multiplier,
			})
			if err != nil {
				t.Fatalf("ScoreRound() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ScoreRound() returned %d entries, want %d", len(got), len(tt.want))
			}
			for p, want := range tt.want {
				if got[p] != want {
					t.Errorf("%s: got %d, want %d", p, got[p], want)
				}
			}
		})
	}
}

func TestScoreRound_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       RoundInput
		wantKind ErrorKind
	}{
		{
			name:     "three players",
			in:       RoundInput{Players: table[:3], Bid: BidSingle, Winners: []string{"ann"}},
			wantKind: KindInvalidPlayerCount,
		},
		{
			name:     "five players",
			in:       RoundInput{Players: append([]string{"eva"}, table...), Bid: BidSingle, Winners: []string{"ann"}},
			wantKind: KindInvalidPlayerCount,
		},
		{
			name:     "repeated player",
			in:       RoundInput{Players: []string{"ann", "ann", "bart", "chris"}, Bid: BidSingle, Winners: []string{"ann"}},
			wantKind: KindInvalidPlayerCount,
		},
		{
			name:     "empty player id",
			in:       RoundInput{Players: []string{"ann", "", "bart", "chris"}, Bid: BidSingle, Winners: []string{"ann"}},
			wantKind: KindInvalidPlayerCount,
		},
		{
			name:     "unknown bid",
			in:       RoundInput{Players: table, Bid: "GRAND_SLAM", Winners: []string{"ann"}},
			wantKind: KindUnknownBid,
		},
		{
			name:     "winner not at the table",
			in:       RoundInput{Players: table, Bid: BidSingle, Winners: []string{"eva"}},
			wantKind: KindInvalidWinnerCount,
		},
		{
			name:     "no winners",
			in:       RoundInput{Players: table, Bid: BidSmallMisery},
			wantKind: KindInvalidWinnerCount,
		},
		{
			name:     "double with one winner",
			in:       RoundInput{Players: table, Bid: BidDouble, Winners: []string{"ann"}},
			wantKind: KindInvalidWinnerCount,
		},
		{
			name:     "misery with four winners",
			in:       RoundInput{Players: table, Bid: BidLargeMisery, Winners: table},
			wantKind: KindInvalidWinnerCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreRound(tt.in)
			if err == nil {
				t.Fatalf("ScoreRound() = %v, want error", got)
			}
			if kind := Kind(err); kind != tt.wantKind {
				t.Errorf("Kind(%v) = %q, want %q", err, kind, tt.wantKind)
			}
		})
	}
}

func TestScoreRound_WinnerCountErrorNamesRange(t *testing.T) {
	_, err := ScoreRound(RoundInput{Players: table, Bid: BidSmallMisery, Winners: table})

	var winnerErr *WinnerCountError
	if !errors.As(err, &winnerErr) {
		t.Fatalf("error = %v, want *WinnerCountError", err)
	}
	if winnerErr.Min != 1 || winnerErr.Max != 3 || winnerErr.Got != 4 {
		t.Errorf("range = [%d,%d] got %d, want [1,3] got 4", winnerErr.Min, winnerErr.Max, winnerErr.Got)
	}
}

func TestScoreRound_WinnerCountOutsideRangeForEveryBid(t *testing.T) {
	for _, bid := range Bids() {
		for n := 0; n <= len(table); n++ {
			if n >= bid.MinWinners && n <= bid.MaxWinners {
				continue
			}
			_, err := ScoreRound(RoundInput{Players: table, Bid: bid.Kind, Winners: table[:n]})
			if Kind(err) != KindInvalidWinnerCount {
				t.Errorf("%s with %d winners: error = %v, want InvalidWinnerCount", bid.Kind, n, err)
			}
		}
	}
}

func TestScoreRound_ZeroSum(t *testing.T) {
	for _, bid := range Bids() {
		for n := bid.MinWinners; n <= bid.MaxWinners; n++ {
			for o := -13; o <= 13; o++ {
				for _, m := range []int{1, 2, 4, 8, 16} {
					points, err := ScoreRound(RoundInput{Players: table, Bid: bid.Kind, Winners: table[:n], Overtricks: o, Multiplier: m})
					if err != nil {
						t.Fatalf("%s winners=%d o=%d m=%d: %v", bid.Kind, n, o, m, err)
					}
					sum := 0
					for _, v := range points {
						sum += v
					}
					if sum != 0 || len(points) != PlayersPerRound {
						t.Fatalf("%s winners=%d o=%d m=%d: %v sums to %d", bid.Kind, n, o, m, points, sum)
					}
				}
			}
		}
	}
}

func TestScoreRound_Deterministic(t *testing.T) {
	in := RoundInput{Players: table, Bid: BidTreble, Winners: []string{"bart", "dirk"}, Overtricks: 3, Multiplier: 4}

	first, err := ScoreRound(in)
	if err != nil {
		t.Fatalf("ScoreRound() error = %v", err)
	}
	second, err := ScoreRound(in)
	if err != nil {
		t.Fatalf("ScoreRound() error = %v", err)
	}
	for p, v := range first {
		if second[p] != v {
			t.Errorf("%s: second run %d, first run %d", p, second[p], v)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"no losers", ErrNoLosers, KindNoLosers},
		{"zero sum", &ZeroSumError{Sum: 3}, KindNonZeroSum},
		{"player count", ErrInvalidPlayerCount, KindInvalidPlayerCount},
		{"winner count", &WinnerCountError{Bid: BidSingle, Min: 1, Max: 1, Got: 2}, KindInvalidWinnerCount},
		{"distribution", &DistributionError{Bid: BidDouble, WinnerAmount: 3, Share: 1.5}, KindImpossibleDistribution},
		{"wrapped unknown bid", fmt.Errorf("%w: %q", ErrUnknownBid, "POKER"), KindUnknownBid},
		{"wrapped zero sum", fmt.Errorf("scoring: %w", &ZeroSumError{Sum: -1}), KindNonZeroSum},
		{"nil", nil, ""},
		{"foreign", errors.New("database locked"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestPayout_Distribution(t *testing.T) {
	// Unreachable through ScoreRound with the catalog ranges; exercised here
	// with a synthetic misery pool.
	bid := Bid{Kind: "ODD_MISERY", MinWinners: 1, MaxWinners: 3, Class: ClassMisery, Pool: 10}
	_, _, err := payout(bid, 3, 1, 0)

	var distErr *DistributionError
	if !errors.As(err, &distErr) {
		t.Fatalf("payout() error = %v, want *DistributionError", err)
	}
	if Kind(err) != KindImpossibleDistribution {
		t.Errorf("Kind() = %q, want %q", Kind(err), KindImpossibleDistribution)
	}
}

func TestMultipliers_Factor(t *testing.T) {
	tests := []struct {
		m    Multipliers
		want int
	}{
		{Multipliers{}, 1},
		{Multipliers{Pass: true}, 2},
		{Multipliers{SecondPass: true}, 4},
		{Multipliers{FullRound: true}, 2},
		{Multipliers{Pass: true, FullRound: true}, 4},
		{Multipliers{Pass: true, SecondPass: true, FullRound: true}, 16},
	}
	for _, tt := range tests {
		if got := tt.m.Factor(); got != tt.want {
			t.Errorf("%+v.Factor() = %d, want %d", tt.m, got, tt.want)
		}
	}
}
