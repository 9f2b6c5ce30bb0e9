package models

// Group owns players and sessions and scopes every query.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// JoinCode is the shared secret players enter to reach the group
	// (e.g., "camelot-2026-1f3a9c2e"). Unique across groups.
	JoinCode string

	// Name is the display name of the group (e.g., "Donderdagavond").
	Name string

	// OwnerID is the user who created the group. Empty for groups created
	// without an account.
	OwnerID string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Player is one of a group's regulars. Players are immutable once created.
type Player struct {
	// ID is the unique identifier for the player (UUID format).
	ID string

	// GroupID is the group this player belongs to.
	GroupID string

	// Name is the display name shown in score tables and charts.
	Name string
}
