package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBid is returned when a bid kind is not part of the catalog.
var ErrUnknownBid = errors.New("unknown bid kind")

// BidKind is the contract declared for a round.
type BidKind string

const (
	BidSingle      BidKind = "SINGLE"
	BidDouble      BidKind = "DOUBLE"
	BidTreble      BidKind = "TREBLE"
	BidAbundance   BidKind = "ABUNDANCE"
	BidSmallMisery BidKind = "SMALL_MISERY"
	BidLargeMisery BidKind = "LARGE_MISERY"
	BidSoloSlam    BidKind = "SOLO_SLAM"
)

// PayoutClass describes how a bid turns into points.
type PayoutClass int

const (
	// ClassFormula payouts scale with the overtrick count.
	ClassFormula PayoutClass = iota
	// ClassFixed payouts are constant per winner and per loser.
	ClassFixed
	// ClassMisery payouts split a fixed pool over winners and losers.
	ClassMisery
)

func (c PayoutClass) String() string {
	switch c {
	case ClassFormula:
		return "formula"
	case ClassFixed:
		return "fixed"
	case ClassMisery:
		return "misery"
	default:
		return fmt.Sprintf("PayoutClass(%d)", int(c))
	}
}

// Bid is one catalog entry.
type Bid struct {
	Kind  BidKind
	Label string

	// MinWinners and MaxWinners bound the size of the declared winner set.
	MinWinners int
	MaxWinners int

	Class PayoutClass

	// Base and Slope apply to ClassFormula: a winner earns Base + Slope*overtricks.
	Base  int
	Slope int

	// WinnerPoints and LoserPoints apply to ClassFixed.
	WinnerPoints int
	LoserPoints  int

	// Pool applies to ClassMisery.
	Pool int
}

var catalog = []Bid{
	{Kind: BidSingle, Label: "Enkel", MinWinners: 1, MaxWinners: 1, Class: ClassFormula, Base: 6, Slope: 3},
	{Kind: BidDouble, Label: "Dubbel", MinWinners: 2, MaxWinners: 2, Class: ClassFormula, Base: 2, Slope: 1},
	{Kind: BidTreble, Label: "Troel", MinWinners: 2, MaxWinners: 2, Class: ClassFormula, Base: 4, Slope: 2},
	{Kind: BidAbundance, Label: "Abondance", MinWinners: 1, MaxWinners: 1, Class: ClassFixed, WinnerPoints: 18, LoserPoints: -6},
	{Kind: BidSmallMisery, Label: "Kleine misère", MinWinners: 1, MaxWinners: 3, Class: ClassMisery, Pool: 12},
	{Kind: BidLargeMisery, Label: "Grote misère", MinWinners: 1, MaxWinners: 3, Class: ClassMisery, Pool: 24},
	{Kind: BidSoloSlam, Label: "Solo slim", MinWinners: 1, MaxWinners: 1, Class: ClassFixed, WinnerPoints: 48, LoserPoints: -16},
}

// Flemish table names, accepted by ParseBidKind.
var aliases = map[string]BidKind{
	"ENKEL":         BidSingle,
	"DUBBEL":        BidDouble,
	"TROEL":         BidTreble,
	"ABONDANCE":     BidAbundance,
	"KLEINE_MISERE": BidSmallMisery,
	"GROTE_MISERE":  BidLargeMisery,
	"SOLO_SLIM":     BidSoloSlam,
}

// Bids returns the catalog in display order.
func Bids() []Bid {
	out := make([]Bid, len(catalog))
	copy(out, catalog)
	return out
}

// BidKinds returns every kind in display order.
func BidKinds() []BidKind {
	kinds := make([]BidKind, len(catalog))
	for i, b := range catalog {
		kinds[i] = b.Kind
	}
	return kinds
}

// LookupBid returns the catalog entry for kind.
func LookupBid(kind BidKind) (Bid, error) {
	for _, b := range catalog {
		if b.Kind == kind {
			return b, nil
		}
	}
	return Bid{}, fmt.Errorf("%w: %q", ErrUnknownBid, string(kind))
}

// ParseBidKind accepts a catalog kind or its Flemish table name, ignoring
// case, surrounding whitespace and spaces/dashes used instead of underscores.
func ParseBidKind(s string) (BidKind, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if kind, ok := aliases[key]; ok {
		return kind, nil
	}
	kind := BidKind(key)
	if _, err := LookupBid(kind); err != nil {
		return "", err
	}
	return kind, nil
}

// NormalizeOvertricks returns the overtrick count to persist for a round:
// only formula bids keep it.
func NormalizeOvertricks(kind BidKind, overtricks int) int {
	b, err := LookupBid(kind)
	if err != nil || b.Class != ClassFormula {
		return 0
	}
	return overtricks
}

// Label returns the display label for kind, or the raw kind when unknown.
func (k BidKind) Label() string {
	if b, err := LookupBid(k); err == nil {
		return b.Label
	}
	return string(k)
}

// WinnerRangeText renders the range the way players read it: "1" or "1-3".
func (b Bid) WinnerRangeText() string {
	if b.MinWinners == b.MaxWinners {
		return fmt.Sprintf("%d", b.MinWinners)
	}
	return fmt.Sprintf("%d-%d", b.MinWinners, b.MaxWinners)
}
