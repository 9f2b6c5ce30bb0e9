package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

// CreateRound persists a round without its scores.
func (s *SQLiteStore) CreateRound(ctx context.Context, round *models.Round) error {
	if round.ID == "" {
		round.ID = uuid.New().String()
	}
	if round.Multiplier < 1 {
		round.Multiplier = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (id, session_id, round_no, bid_kind, overtricks, multiplier)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		round.ID, round.SessionID, round.Number, round.BidKind, round.Overtricks, round.Multiplier,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("round %d of session %s already exists: %w", round.Number, round.SessionID, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}
	return nil
}

// CreateScores persists the scores of a round in one transaction.
func (s *SQLiteStore) CreateScores(ctx context.Context, scores []models.Score) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO scores (round_id, player_id, points) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare score insert: %w", err)
	}
	defer stmt.Close()

	for _, sc := range scores {
		if _, err := stmt.ExecContext(ctx, sc.RoundID, sc.PlayerID, sc.Points); err != nil {
			return fmt.Errorf("failed to insert score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetRound retrieves a round by ID.
func (s *SQLiteStore) GetRound(ctx context.Context, roundID string) (*models.Round, error) {
	r := &models.Round{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, session_id, round_no, bid_kind, overtricks, multiplier FROM rounds WHERE id = ?",
		roundID,
	).Scan(&r.ID, &r.SessionID, &r.Number, &r.BidKind, &r.Overtricks, &r.Multiplier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("round %s: %w", roundID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return r, nil
}

// ListRounds retrieves the rounds of the given sessions.
func (s *SQLiteStore) ListRounds(ctx context.Context, sessionIDs []string) ([]*models.Round, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, round_no, bid_kind, overtricks, multiplier
		 FROM rounds WHERE session_id IN (`+placeholders(len(sessionIDs))+`)
		 ORDER BY session_id, round_no`,
		anyArgs(sessionIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*models.Round
	for rows.Next() {
		r := &models.Round{}
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Number, &r.BidKind, &r.Overtricks, &r.Multiplier); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}

	return rounds, nil
}

// ListScores retrieves the scores of the given rounds.
func (s *SQLiteStore) ListScores(ctx context.Context, roundIDs []string) ([]models.Score, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT round_id, player_id, points FROM scores WHERE round_id IN ("+placeholders(len(roundIDs))+")",
		anyArgs(roundIDs)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		var sc models.Score
		if err := rows.Scan(&sc.RoundID, &sc.PlayerID, &sc.Points); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return scores, nil
}

// DeleteRound removes a round's scores and then the round itself.
func (s *SQLiteStore) DeleteRound(ctx context.Context, roundID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM scores WHERE round_id = ?", roundID); err != nil {
		return fmt.Errorf("failed to delete scores: %w", err)
	}
	if err := deleteOne(ctx, tx, "round", roundID, "DELETE FROM rounds WHERE id = ?"); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
