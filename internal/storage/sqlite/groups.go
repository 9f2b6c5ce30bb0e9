package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

// CreateGroup persists a new group, generating ID, join code and CreatedAt
// when they are empty.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	if group.JoinCode == "" {
		group.JoinCode = generateJoinCode(group.Name, time.Unix(group.CreatedAt, 0))
	}

	var owner any
	if group.OwnerID != "" {
		owner = group.OwnerID
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (id, join_code, name, owner, created_at) VALUES (?, ?, ?, ?, ?)",
		group.ID, group.JoinCode, group.Name, owner, group.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("join code %q already taken: %w", group.JoinCode, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.getGroup(ctx, "id", groupID)
}

// GetGroupByJoinCode retrieves a group by its join code.
func (s *SQLiteStore) GetGroupByJoinCode(ctx context.Context, joinCode string) (*models.Group, error) {
	return s.getGroup(ctx, "join_code", strings.TrimSpace(joinCode))
}

func (s *SQLiteStore) getGroup(ctx context.Context, column, value string) (*models.Group, error) {
	group := &models.Group{}
	var owner sql.NullString

	err := s.db.QueryRowContext(ctx,
		"SELECT id, join_code, name, owner, created_at FROM groups WHERE "+column+" = ?",
		value,
	).Scan(&group.ID, &group.JoinCode, &group.Name, &owner, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if owner.Valid {
		group.OwnerID = owner.String
	}
	return group, nil
}

// CreatePlayer persists a new player.
func (s *SQLiteStore) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO players (id, group_id, name) VALUES (?, ?, ?)",
		player.ID, player.GroupID, player.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// ListPlayers retrieves all players of a group ordered by name.
func (s *SQLiteStore) ListPlayers(ctx context.Context, groupID string) ([]*models.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, group_id, name FROM players WHERE group_id = ? ORDER BY name, id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		p := &models.Player{}
		if err := rows.Scan(&p.ID, &p.GroupID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}

	return players, nil
}

// generateJoinCode builds a readable, hard to guess code such as
// "camelot-2026-1f3a9c2e".
func generateJoinCode(name string, created time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	slug := slugify(name)
	if slug == "" {
		slug = "groep"
	}
	return fmt.Sprintf("%s-%d-%s", slug, created.Year(), suffix)
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
