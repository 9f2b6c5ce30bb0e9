package models

// Round is one scored hand. It is created together with exactly four Scores
// and deleted together with them.
type Round struct {
	// ID is the unique identifier for the round (UUID format).
	ID string

	// SessionID is the session this round belongs to.
	SessionID string

	// Number is the 1-based position within the session, unique per session.
	Number int

	// BidKind is the declared contract (calculator.BidKind as a string).
	BidKind string

	// Overtricks is only meaningful for formula bids and stored as 0 otherwise.
	Overtricks int

	// Multiplier is the product of the round's multiplier flags, at least 1.
	Multiplier int
}

// Score is one player's signed point delta for a round.
type Score struct {
	RoundID  string
	PlayerID string
	Points   int
}
