package wagers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrWagerNotFound        = errors.New("wager not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrDuplicateParticipant = errors.New("user already joined this wager")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusDisputed Status = "disputed"
	StatusClosed   Status = "closed"
)

type Wager struct {
	ID               string
	CreatorID        string
	FacilityID       string
	BaseBetAmount    decimal.Decimal
	TotalAmount      decimal.Decimal
	ParticipantCount int
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Participant struct {
	ID          int64
	WagerID     string
	UserID      string
	TeamName    string
	BetAmount   decimal.Decimal
	WinningVote *string
	JoinedAt    time.Time
}

// Voted reports whether the participant has cast a vote this round.
func (p Participant) Voted() bool {
	return p.WinningVote != nil
}

type Wagers interface {
	// LockAndGet reads the wager row FOR UPDATE, serializing all
	// read-modify-write sequences on the same wager.
	LockAndGet(tx *sql.Tx, wagerID string) (*Wager, error)
	Insert(tx *sql.Tx, w *Wager) error
	InsertParticipant(tx *sql.Tx, p *Participant) error
	UpdateTotals(tx *sql.Tx, wagerID string, total decimal.Decimal, count int) error
	UpdateStatus(tx *sql.Tx, wagerID string, status Status) error
	Participants(tx *sql.Tx, wagerID string) ([]Participant, error)
	SetVote(tx *sql.Tx, participantID int64, winningTeam string) error
	ClearVotes(tx *sql.Tx, wagerID string) error

	Get(ctx context.Context, wagerID string) (*Wager, error)
	ParticipantsByWager(ctx context.Context, wagerID string) ([]Participant, error)
	ListByStatus(ctx context.Context, status Status) ([]Wager, error)
	ListByCreator(ctx context.Context, creatorID string) ([]Wager, error)
}
