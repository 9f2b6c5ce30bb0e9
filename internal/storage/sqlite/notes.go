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

// LatestNote retrieves the newest note of a session. Returns nil, nil when
// the session has no note.
func (s *SQLiteStore) LatestNote(ctx context.Context, sessionID string) (*models.SessionNote, error) {
	note := &models.SessionNote{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, body, created_at FROM session_notes
		 WHERE session_id = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		sessionID,
	).Scan(&note.ID, &note.SessionID, &note.Body, &note.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// SaveNote updates an existing note body, or inserts the first note of a session.
func (s *SQLiteStore) SaveNote(ctx context.Context, note *models.SessionNote) error {
	if note.ID != "" {
		res, err := s.db.ExecContext(ctx, "UPDATE session_notes SET body = ? WHERE id = ?", note.Body, note.ID)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("note %s: %w", note.ID, storage.ErrNotFound)
		}
		return nil
	}

	note.ID = uuid.New().String()
	if note.CreatedAt == 0 {
		note.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO session_notes (id, session_id, body, created_at) VALUES (?, ?, ?, ?)",
		note.ID, note.SessionID, note.Body, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// DeleteNote removes a note by ID.
func (s *SQLiteStore) DeleteNote(ctx context.Context, noteID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteOne(ctx, tx, "note", noteID, "DELETE FROM session_notes WHERE id = ?"); err != nil {
		return err
	}
	return tx.Commit()
}
