package wagers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

const participantColumns = `id, wager_id, user_id, team_name, bet_amount, winning_vote, joined_at`

// Participants reads all participant rows inside the caller's transaction.
// Callers must hold the wager row lock so the "all voted" check cannot race
// a concurrent join or vote.
func (r *wagersRepo) Participants(tx *sql.Tx, wagerID string) ([]wagers.Participant, error) {
	rows, err := tx.Query(`
		SELECT `+participantColumns+`
		FROM wager_participants
		WHERE wager_id = $1
		ORDER BY joined_at, id
	`, wagerID)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (r *wagersRepo) ParticipantsByWager(ctx context.Context, wagerID string) ([]wagers.Participant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+participantColumns+`
		FROM wager_participants
		WHERE wager_id = $1
		ORDER BY joined_at, id
	`, wagerID)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func scanParticipants(rows *sql.Rows) ([]wagers.Participant, error) {
	var out []wagers.Participant

	for rows.Next() {
		var p wagers.Participant

		err := rows.Scan(&p.ID, &p.WagerID, &p.UserID, &p.TeamName,
			&p.BetAmount, &p.WinningVote, &p.JoinedAt)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}

		out = append(out, p)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}

	return out, nil
}
