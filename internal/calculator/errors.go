package calculator

import (
	"errors"
	"fmt"
)

// ErrorKind names a scoring failure so callers can branch on it without
// matching messages.
type ErrorKind string

const (
	KindInvalidPlayerCount     ErrorKind = "InvalidPlayerCount"
	KindInvalidWinnerCount     ErrorKind = "InvalidWinnerCount"
	KindNoLosers               ErrorKind = "NoLosers"
	KindImpossibleDistribution ErrorKind = "ImpossibleDistribution"
	KindNonZeroSum             ErrorKind = "NonZeroSumInvariantViolation"
	KindUnknownBid             ErrorKind = "UnknownBid"
)

var (
	// ErrInvalidPlayerCount is returned when a round does not have exactly
	// four distinct players.
	ErrInvalidPlayerCount = errors.New("a round needs exactly 4 distinct players")

	// ErrNoLosers is returned when every player is declared a winner.
	ErrNoLosers = errors.New("a round needs at least 1 loser")
)

// WinnerCountError reports a winner selection outside the bid's range, or a
// winner that is not seated at the table.
type WinnerCountError struct {
	Bid BidKind
	Min int
	Max int
	Got int

	// Stranger is set when a winner id is not one of the round's players.
	Stranger string
}

func (e *WinnerCountError) Error() string {
	if e.Stranger != "" {
		return fmt.Sprintf("winner %q is not one of the players", e.Stranger)
	}
	if e.Min == e.Max {
		return fmt.Sprintf("%s needs %d winner(s), got %d", e.Bid, e.Min, e.Got)
	}
	return fmt.Sprintf("%s needs %d to %d winners, got %d", e.Bid, e.Min, e.Max, e.Got)
}

// DistributionError reports a payout that cannot be split into whole points.
type DistributionError struct {
	Bid BidKind

	// WinnerAmount is the per-winner amount that was attempted.
	WinnerAmount int

	// Share is the fractional per-player amount that triggered the failure.
	Share float64
}

func (e *DistributionError) Error() string {
	return fmt.Sprintf("%s cannot be split into whole points (winner %d, share %g)", e.Bid, e.WinnerAmount, e.Share)
}

// ZeroSumError is a correctness guard: the four amounts of a round did not
// add up to zero.
type ZeroSumError struct {
	Sum int
}

func (e *ZeroSumError) Error() string {
	return fmt.Sprintf("round points sum to %d, not 0", e.Sum)
}

// Kind maps a scoring error to its taxonomy name. It returns "" for errors
// that do not come from the scorer.
func Kind(err error) ErrorKind {
	var (
		winnerErr *WinnerCountError
		distErr   *DistributionError
		sumErr    *ZeroSumError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPlayerCount):
		return KindInvalidPlayerCount
	case errors.Is(err, ErrNoLosers):
		return KindNoLosers
	case errors.Is(err, ErrUnknownBid):
		return KindUnknownBid
	case errors.As(err, &winnerErr):
		return KindInvalidWinnerCount
	case errors.As(err, &distErr):
		return KindImpossibleDistribution
	case errors.As(err, &sumErr):
		return KindNonZeroSum
	default:
		return ""
	}
}
