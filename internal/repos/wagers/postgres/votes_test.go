package wagers

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/angelmontes7/openplay-wagers/internal/infra/pgtestutil"
	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
	"github.com/shopspring/decimal"
)

func seedParticipant(t *testing.T, db *sql.DB, wagerID, userID, team string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO wager_participants (wager_id, user_id, team_name, bet_amount)
		VALUES ($1, $2, $3, 20.00)
		RETURNING id
	`, wagerID, userID, team).Scan(&id)
	if err != nil {
		t.Fatalf("seed participant: %v", err)
	}

	return id
}

func withTx(t *testing.T, db *sql.DB, fn func(tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	fn(tx)

	err = tx.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestWagers_SetAndClearVotes(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedWager(t, db, testWagerID, wagers.StatusPending)
	p1 := seedParticipant(t, db, testWagerID, "u1", "Red")
	p2 := seedParticipant(t, db, testWagerID, "u2", "Blue")

	repo := New(db)

	withTx(t, db, func(tx *sql.Tx) {
		if err := repo.SetVote(tx, p1, "Red"); err != nil {
			t.Fatalf("set vote p1: %v", err)
		}
		if err := repo.SetVote(tx, p2, "Red"); err != nil {
			t.Fatalf("set vote p2: %v", err)
		}
	})

	withTx(t, db, func(tx *sql.Tx) {
		ps, err := repo.Participants(tx, testWagerID)
		if err != nil {
			t.Fatalf("participants: %v", err)
		}
		if len(ps) != 2 {
			t.Fatalf("participants: want 2, got %d", len(ps))
		}
		for _, p := range ps {
			if !p.Voted() || *p.WinningVote != "Red" {
				t.Fatalf("participant %s vote not recorded", p.UserID)
			}
		}
	})

	withTx(t, db, func(tx *sql.Tx) {
		if err := repo.ClearVotes(tx, testWagerID); err != nil {
			t.Fatalf("clear votes: %v", err)
		}
	})

	withTx(t, db, func(tx *sql.Tx) {
		ps, err := repo.Participants(tx, testWagerID)
		if err != nil {
			t.Fatalf("participants: %v", err)
		}
		for _, p := range ps {
			if p.Voted() {
				t.Fatalf("participant %s still has a vote after clear", p.UserID)
			}
		}
	})
}

func TestWagers_SetVote_UnknownParticipant(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	repo := New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = repo.SetVote(tx, 99999, "Red")
	if !errors.Is(err, wagers.ErrParticipantNotFound) {
		t.Fatalf("want ErrParticipantNotFound, got %v", err)
	}
}

func TestWagers_InsertParticipant_Duplicate(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedWager(t, db, testWagerID, wagers.StatusPending)

	repo := New(db)

	p := &wagers.Participant{
		WagerID:   testWagerID,
		UserID:    "u1",
		TeamName:  "Red",
		BetAmount: decimal.RequireFromString("20.00"),
	}

	withTx(t, db, func(tx *sql.Tx) {
		if err := repo.InsertParticipant(tx, p); err != nil {
			t.Fatalf("first insert: %v", err)
		}
		if p.ID == 0 {
			t.Fatal("participant id not returned")
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	dup := &wagers.Participant{
		WagerID:   testWagerID,
		UserID:    "u1",
		TeamName:  "Blue",
		BetAmount: decimal.RequireFromString("20.00"),
	}

	err = repo.InsertParticipant(tx, dup)
	if !errors.Is(err, wagers.ErrDuplicateParticipant) {
		t.Fatalf("want ErrDuplicateParticipant, got %v", err)
	}
}
