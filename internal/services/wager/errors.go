package wager

import "errors"

var (
	// ErrInvalidStake — non-positive amount, or a join stake that does not
	// match the wager's base bet amount.
	ErrInvalidStake  = errors.New("bet amount must equal the wager's base bet amount")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrMissingTeam   = errors.New("team name is required")

	ErrOwnWager       = errors.New("creator is already enrolled in this wager")
	ErrNotParticipant = errors.New("user is not a participant of this wager")
	ErrAlreadyVoted   = errors.New("participant has already voted this round")

	// ErrWagerClosed — the wager is terminal; no further mutation is allowed.
	ErrWagerClosed = errors.New("wager is closed")
	// ErrNotJoinable — joins are only accepted while the wager is pending.
	ErrNotJoinable = errors.New("wager is no longer accepting participants")
	// ErrInvalidStatus — the manual path only accepts disputed or closed.
	ErrInvalidStatus = errors.New("status must be disputed or closed")
)
