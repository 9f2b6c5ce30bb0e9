package models

// Session is one evening of play. Its running totals are derived from the
// scores of its rounds.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// GroupID is the group this session belongs to.
	GroupID string

	// Date is the calendar date of play in YYYY-MM-DD format.
	Date string

	// Title defaults to "Avond <date>".
	Title string
}

// SessionNote is free text attached to a session. A session shows at most
// one note: the latest one.
type SessionNote struct {
	ID        string
	SessionID string
	Body      string

	// CreatedAt is the Unix timestamp when the note was first saved.
	CreatedAt int64
}
