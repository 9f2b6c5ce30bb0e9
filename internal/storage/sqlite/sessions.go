package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

const dateLayout = "2006-01-02"

// CreateSession persists a new session. Date defaults to today and Title to
// "Avond <date>".
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Date == "" {
		session.Date = time.Now().Format(dateLayout)
	}
	if session.Title == "" {
		session.Title = generateTitle(session.Date)
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, group_id, date, title) VALUES (?, ?, ?, ?)",
		session.ID, session.GroupID, session.Date, session.Title,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, group_id, date, title FROM sessions WHERE id = ?",
		sessionID,
	).Scan(&session.ID, &session.GroupID, &session.Date, &session.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions retrieves a group's sessions ordered by date.
func (s *SQLiteStore) ListSessions(ctx context.Context, groupID string, ascending bool) ([]*models.Session, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_id, date, title FROM sessions WHERE group_id = ? ORDER BY date "+order+", rowid "+order,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(&session.ID, &session.GroupID, &session.Date, &session.Title); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// DeleteSession removes a session together with its scores, rounds and notes.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM scores WHERE round_id IN (SELECT id FROM rounds WHERE session_id = ?)",
		sessionID,
	); err != nil {
		return fmt.Errorf("failed to delete session scores: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM rounds WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete session rounds: %w", err)
	}
	if err := deleteOne(ctx, tx, "session", sessionID, "DELETE FROM sessions WHERE id = ?"); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// generateTitle creates the default title for a session date.
func generateTitle(date string) string {
	return fmt.Sprintf("Avond %s", date)
}
