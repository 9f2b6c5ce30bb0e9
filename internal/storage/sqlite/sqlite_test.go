package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mmynk/kleurenwiezen/internal/models"
	"github.com/mmynk/kleurenwiezen/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedTable creates a group with four players and one session.
func seedTable(t *testing.T, store *SQLiteStore) (*models.Group, []*models.Player, *models.Session) {
	t.Helper()
	ctx := context.Background()

	group := &models.Group{Name: "Donderdag"}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	var players []*models.Player
	for i := 0; i < 4; i++ {
		p := &models.Player{GroupID: group.ID, Name: gofakeit.FirstName()}
		if err := store.CreatePlayer(ctx, p); err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		players = append(players, p)
	}

	session := &models.Session{GroupID: group.ID, Date: "2025-03-06"}
	if err := store.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return group, players, session
}

func roundScores(roundID string, players []*models.Player, points ...int) []models.Score {
	scores := make([]models.Score, len(players))
	for i, p := range players {
		scores[i] = models.Score{RoundID: roundID, PlayerID: p.ID, Points: points[i]}
	}
	return scores
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates ID and join code", func(t *testing.T) {
		group := &models.Group{Name: "De Kaarters"}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if !strings.HasPrefix(group.JoinCode, "de-kaarters-") {
			t.Errorf("Unexpected join code: %s", group.JoinCode)
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetGroupByJoinCode resolves the group", func(t *testing.T) {
		group := &models.Group{Name: "Camelot", JoinCode: "camelot-2026-abc"}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		got, err := store.GetGroupByJoinCode(ctx, "  camelot-2026-abc ")
		if err != nil {
			t.Fatalf("GetGroupByJoinCode failed: %v", err)
		}
		if got.ID != group.ID || got.Name != "Camelot" {
			t.Errorf("Got group %+v, want %+v", got, group)
		}
	})

	t.Run("duplicate join code is a conflict", func(t *testing.T) {
		err := store.CreateGroup(ctx, &models.Group{Name: "Copy", JoinCode: "camelot-2026-abc"})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("unknown join code is not found", func(t *testing.T) {
		_, err := store.GetGroupByJoinCode(ctx, "nope")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListPlayers orders by name", func(t *testing.T) {
		group := &models.Group{Name: "Order"}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		for _, name := range []string{"Zoë", "Anna", "Marc"} {
			if err := store.CreatePlayer(ctx, &models.Player{GroupID: group.ID, Name: name}); err != nil {
				t.Fatalf("CreatePlayer failed: %v", err)
			}
		}

		players, err := store.ListPlayers(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListPlayers failed: %v", err)
		}
		var names []string
		for _, p := range players {
			names = append(names, p.Name)
		}
		if strings.Join(names, ",") != "Anna,Marc,Zoë" {
			t.Errorf("Unexpected order: %v", names)
		}
	})
}

func TestSQLiteStore_Sessions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, _, first := seedTable(t, store)

	t.Run("CreateSession generates title", func(t *testing.T) {
		if first.Title != "Avond 2025-03-06" {
			t.Errorf("Unexpected title: %s", first.Title)
		}
	})

	t.Run("CreateSession defaults date to today", func(t *testing.T) {
		session := &models.Session{GroupID: group.ID}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if session.Date != time.Now().Format("2006-01-02") {
			t.Errorf("Unexpected date: %s", session.Date)
		}
	})

	t.Run("ListSessions orders by date", func(t *testing.T) {
		older := &models.Session{GroupID: group.ID, Date: "2024-12-19", Title: "Kerst"}
		if err := store.CreateSession(ctx, older); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		asc, err := store.ListSessions(ctx, group.ID, true)
		if err != nil {
			t.Fatalf("ListSessions failed: %v", err)
		}
		desc, err := store.ListSessions(ctx, group.ID, false)
		if err != nil {
			t.Fatalf("ListSessions failed: %v", err)
		}
		if len(asc) != 3 || len(desc) != 3 {
			t.Fatalf("Expected 3 sessions, got %d/%d", len(asc), len(desc))
		}
		if asc[0].ID != older.ID {
			t.Errorf("Ascending should start with the oldest session, got %s", asc[0].Date)
		}
		if desc[2].ID != older.ID {
			t.Errorf("Descending should end with the oldest session, got %s", desc[2].Date)
		}
	})

	t.Run("GetSession returns error for nonexistent session", func(t *testing.T) {
		_, err := store.GetSession(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_Rounds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, players, session := seedTable(t, store)

	round := &models.Round{SessionID: session.ID, Number: 1, BidKind: "SINGLE", Multiplier: 2}
	if err := store.CreateRound(ctx, round); err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	if err := store.CreateScores(ctx, roundScores(round.ID, players, 12, -4, -4, -4)); err != nil {
		t.Fatalf("CreateScores failed: %v", err)
	}

	t.Run("ListRounds and ListScores return the round", func(t *testing.T) {
		rounds, err := store.ListRounds(ctx, []string{session.ID})
		if err != nil {
			t.Fatalf("ListRounds failed: %v", err)
		}
		if len(rounds) != 1 || rounds[0].Number != 1 || rounds[0].Multiplier != 2 {
			t.Fatalf("Unexpected rounds: %+v", rounds)
		}

		scores, err := store.ListScores(ctx, []string{round.ID})
		if err != nil {
			t.Fatalf("ListScores failed: %v", err)
		}
		sum := 0
		for _, sc := range scores {
			sum += sc.Points
		}
		if len(scores) != 4 || sum != 0 {
			t.Errorf("Expected 4 scores summing to 0, got %d summing to %d", len(scores), sum)
		}
	})

	t.Run("same round number is a conflict", func(t *testing.T) {
		err := store.CreateRound(ctx, &models.Round{SessionID: session.ID, Number: 1, BidKind: "DOUBLE"})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("round for unknown session is rejected", func(t *testing.T) {
		err := store.CreateRound(ctx, &models.Round{SessionID: "ghost", Number: 1, BidKind: "DOUBLE"})
		if err == nil {
			t.Error("Expected foreign key error, got nil")
		}
	})

	t.Run("empty id lists return nothing", func(t *testing.T) {
		rounds, err := store.ListRounds(ctx, nil)
		if err != nil || len(rounds) != 0 {
			t.Errorf("ListRounds(nil) = %v, %v", rounds, err)
		}
		scores, err := store.ListScores(ctx, nil)
		if err != nil || len(scores) != 0 {
			t.Errorf("ListScores(nil) = %v, %v", scores, err)
		}
	})

	t.Run("DeleteRound removes scores first", func(t *testing.T) {
		if err := store.DeleteRound(ctx, round.ID); err != nil {
			t.Fatalf("DeleteRound failed: %v", err)
		}
		scores, err := store.ListScores(ctx, []string{round.ID})
		if err != nil {
			t.Fatalf("ListScores failed: %v", err)
		}
		if len(scores) != 0 {
			t.Errorf("Expected scores to be deleted, got %d", len(scores))
		}
		if _, err := store.GetRound(ctx, round.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("DeleteRound on missing round is not found", func(t *testing.T) {
		if err := store.DeleteRound(ctx, round.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_DeleteSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	group, players, session := seedTable(t, store)

	round := &models.Round{SessionID: session.ID, Number: 1, BidKind: "ABUNDANCE", Multiplier: 1}
	if err := store.CreateRound(ctx, round); err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	if err := store.CreateScores(ctx, roundScores(round.ID, players, 18, -6, -6, -6)); err != nil {
		t.Fatalf("CreateScores failed: %v", err)
	}
	if err := store.SaveNote(ctx, &models.SessionNote{SessionID: session.ID, Body: "Marc trakteert"}); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	if err := store.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	sessions, err := store.ListSessions(ctx, group.ID, true)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("Expected no sessions, got %d", len(sessions))
	}
	scores, err := store.ListScores(ctx, []string{round.ID})
	if err != nil {
		t.Fatalf("ListScores failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected scores to be deleted, got %d", len(scores))
	}
}

func TestSQLiteStore_Notes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	_, _, session := seedTable(t, store)

	note, err := store.LatestNote(ctx, session.ID)
	if err != nil || note != nil {
		t.Fatalf("LatestNote on empty session = %v, %v", note, err)
	}

	note = &models.SessionNote{SessionID: session.ID, Body: "eerste"}
	if err := store.SaveNote(ctx, note); err != nil {
		t.Fatalf("SaveNote insert failed: %v", err)
	}
	firstID := note.ID

	note.Body = "aangepast"
	if err := store.SaveNote(ctx, note); err != nil {
		t.Fatalf("SaveNote update failed: %v", err)
	}
	if note.ID != firstID {
		t.Errorf("Update changed note ID from %s to %s", firstID, note.ID)
	}

	latest, err := store.LatestNote(ctx, session.ID)
	if err != nil {
		t.Fatalf("LatestNote failed: %v", err)
	}
	if latest == nil || latest.Body != "aangepast" {
		t.Fatalf("Unexpected note: %+v", latest)
	}

	if err := store.DeleteNote(ctx, latest.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if err := store.DeleteNote(ctx, latest.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("Lies@Example.be", "Lies", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := store.GetUserByEmail(ctx, "lies@example.be")
	if err != nil || got == nil {
		t.Fatalf("GetUserByEmail = %v, %v", got, err)
	}
	if got.ID != user.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, user.ID)
	}

	missing, err := store.GetUserByID(ctx, "nobody")
	if err != nil || missing != nil {
		t.Errorf("GetUserByID(nobody) = %v, %v; want nil, nil", missing, err)
	}

	dup := models.NewUser("lies@example.be", "Other", "hash")
	if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}

func TestGenerateJoinCode(t *testing.T) {
	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		wantPrefix string
	}{
		{"Camelot", "camelot-2026-"},
		{"De Kaarters!", "de-kaarters-2026-"},
		{"  Café  Wiezen ", "caf-wiezen-2026-"},
		{"", "groep-2026-"},
	}

	for _, tt := range tests {
		t.Run(tt.wantPrefix, func(t *testing.T) {
			got := generateJoinCode(tt.name, created)
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("generateJoinCode(%q) = %q, want prefix %q", tt.name, got, tt.wantPrefix)
			}
			if len(got) != len(tt.wantPrefix)+8 {
				t.Errorf("generateJoinCode(%q) = %q, want 8 character suffix", tt.name, got)
			}
		})
	}
}
