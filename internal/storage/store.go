// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/kleurenwiezen/internal/models"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// e.g. a second round with the same number in one session.
	ErrConflict = errors.New("conflict")
)

// Store defines the persistence operations the services rely on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	GroupStore
	SessionStore
	RoundStore
	NoteStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}

// GroupStore persists groups and their players.
type GroupStore interface {
	// CreateGroup persists a new group. ID, JoinCode and CreatedAt are
	// populated when empty.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	GetGroupByJoinCode(ctx context.Context, joinCode string) (*models.Group, error)

	// CreatePlayer persists a new player; ID is populated when empty.
	CreatePlayer(ctx context.Context, player *models.Player) error

	// ListPlayers returns the group's players ordered by name.
	ListPlayers(ctx context.Context, groupID string) ([]*models.Player, error)
}

// SessionStore persists sessions.
type SessionStore interface {
	// CreateSession persists a new session; ID and Title are populated when empty.
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ListSessions returns the group's sessions ordered by date, oldest first
	// when ascending is true.
	ListSessions(ctx context.Context, groupID string, ascending bool) ([]*models.Session, error)

	// DeleteSession removes a session with its notes, rounds and scores.
	DeleteSession(ctx context.Context, sessionID string) error
}

// RoundStore persists rounds and scores.
//
// A round without its scores is invalid: callers that see CreateScores fail
// after a successful CreateRound must DeleteRound.
type RoundStore interface {
	// CreateRound persists a round without scores. Returns ErrConflict when
	// the session already has a round with the same number.
	CreateRound(ctx context.Context, round *models.Round) error

	// CreateScores persists all scores of one round in one transaction.
	CreateScores(ctx context.Context, scores []models.Score) error

	GetRound(ctx context.Context, roundID string) (*models.Round, error)

	// ListRounds returns the rounds of the given sessions ordered by session
	// and round number.
	ListRounds(ctx context.Context, sessionIDs []string) ([]*models.Round, error)

	// ListScores returns the scores of the given rounds.
	ListScores(ctx context.Context, roundIDs []string) ([]models.Score, error)

	// DeleteRound removes a round's scores and then the round.
	DeleteRound(ctx context.Context, roundID string) error
}

// NoteStore persists session notes.
type NoteStore interface {
	// LatestNote returns the newest note of a session, or nil when none exists.
	LatestNote(ctx context.Context, sessionID string) (*models.SessionNote, error)

	// SaveNote updates note.ID when set, otherwise inserts a new note.
	SaveNote(ctx context.Context, note *models.SessionNote) error

	DeleteNote(ctx context.Context, noteID string) error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail and GetUserByID return nil, nil when the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
