package wagers

import (
	"database/sql"
	"fmt"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

func (r *wagersRepo) SetVote(tx *sql.Tx, participantID int64, winningTeam string) error {
	res, err := tx.Exec(`
		UPDATE wager_participants
		SET winning_vote = $2
		WHERE id = $1
	`, participantID, winningTeam)
	if err != nil {
		return fmt.Errorf("set vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set vote: rows affected: %w", err)
	}

	if affected == 0 {
		return wagers.ErrParticipantNotFound
	}

	return nil
}

func (r *wagersRepo) ClearVotes(tx *sql.Tx, wagerID string) error {
	_, err := tx.Exec(`
		UPDATE wager_participants
		SET winning_vote = NULL
		WHERE wager_id = $1
	`, wagerID)
	if err != nil {
		return fmt.Errorf("clear votes: %w", err)
	}

	return nil
}
