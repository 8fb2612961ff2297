// Package wager owns the wager lifecycle: creation, joining, vote-driven
// settlement, dispute handling and every movement of money between the
// participant balances and the platform revenue record.
//
// Every mutating operation runs inside a single database transaction and
// takes the wager row lock (FOR UPDATE) before reading anything else, so
// concurrent joins and votes on the same wager are fully serialized. Money
// is always moved before the status transition commits; if a credit or
// debit fails the whole operation rolls back and the wager keeps its
// pre-resolution state.
package wager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmontes7/openplay-wagers/internal/infra/metrics"
	"github.com/angelmontes7/openplay-wagers/internal/infra/pgutils"
	"github.com/angelmontes7/openplay-wagers/internal/repos/ledger"
	pgledger "github.com/angelmontes7/openplay-wagers/internal/repos/ledger/postgres"
	"github.com/angelmontes7/openplay-wagers/internal/repos/revenue"
	pgrevenue "github.com/angelmontes7/openplay-wagers/internal/repos/revenue/postgres"
	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
	pgwagers "github.com/angelmontes7/openplay-wagers/internal/repos/wagers/postgres"
)

type Engine struct {
	db      *sql.DB
	wagers  wagers.Wagers
	ledger  ledger.Ledger
	revenue revenue.Revenue
}

func New(db *sql.DB) *Engine {
	return &Engine{
		db:      db,
		wagers:  pgwagers.New(db),
		ledger:  pgledger.New(db),
		revenue: pgrevenue.New(db),
	}
}

type CreateParams struct {
	CreatorID     string
	FacilityID    string
	TeamName      string
	BaseBetAmount decimal.Decimal
}

// Create opens a wager and enrolls the creator as participant #1 backing
// their own team. The base bet is debited from the creator's balance at
// creation time (escrow) in the same transaction that inserts the rows.
func (e *Engine) Create(ctx context.Context, p CreateParams) (*wagers.Wager, error) {
	if !p.BaseBetAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if p.TeamName == "" {
		return nil, ErrMissingTeam
	}

	stake := round2(p.BaseBetAmount)

	w := &wagers.Wager{
		ID:               uuid.NewString(),
		CreatorID:        p.CreatorID,
		FacilityID:       p.FacilityID,
		BaseBetAmount:    stake,
		TotalAmount:      stake,
		ParticipantCount: 1,
		Status:           wagers.StatusPending,
	}

	err := pgutils.WithTx(ctx, e.db, func(tx *sql.Tx) error {
		_, err := e.ledger.LockAndGetBalance(tx, p.CreatorID)
		if err != nil {
			return fmt.Errorf("lock creator balance: %w", err)
		}

		err = e.ledger.Debit(tx, p.CreatorID, stake)
		if err != nil {
			return fmt.Errorf("escrow creator stake: %w", err)
		}

		err = e.ledger.LogTransaction(tx, p.CreatorID, ledger.TxWager, stake)
		if err != nil {
			return fmt.Errorf("log escrow: %w", err)
		}

		err = e.wagers.Insert(tx, w)
		if err != nil {
			return fmt.Errorf("insert wager: %w", err)
		}

		creator := &wagers.Participant{
			WagerID:   w.ID,
			UserID:    p.CreatorID,
			TeamName:  p.TeamName,
			BetAmount: stake,
		}

		err = e.wagers.InsertParticipant(tx, creator)
		if err != nil {
			return fmt.Errorf("enroll creator: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create wager: %w", err)
	}

	metrics.WagersCreated.Inc()

	return w, nil
}

type JoinParams struct {
	WagerID   string
	UserID    string
	TeamName  string
	BetAmount decimal.Decimal
}

// Join enrolls another user onto a pending wager. The stake must match the
// wager's base bet amount exactly; the wager row is locked before the totals
// are read so two simultaneous joiners cannot both commit a stale total.
func (e *Engine) Join(ctx context.Context, p JoinParams) (*wagers.Participant, *wagers.Wager, error) {
	if !p.BetAmount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}
	if p.TeamName == "" {
		return nil, nil, ErrMissingTeam
	}

	var (
		joined *wagers.Participant
		w      *wagers.Wager
	)

	err := pgutils.WithTx(ctx, e.db, func(tx *sql.Tx) error {
		var err error

		w, err = e.wagers.LockAndGet(tx, p.WagerID)
		if err != nil {
			return fmt.Errorf("lock wager: %w", err)
		}

		if w.Status == wagers.StatusClosed {
			return ErrWagerClosed
		}
		if w.Status != wagers.StatusPending {
			return ErrNotJoinable
		}
		if p.UserID == w.CreatorID {
			return ErrOwnWager
		}
		if !p.BetAmount.Equal(w.BaseBetAmount) {
			return ErrInvalidStake
		}

		_, err = e.ledger.LockAndGetBalance(tx, p.UserID)
		if err != nil {
			return fmt.Errorf("lock joiner balance: %w", err)
		}

		err = e.ledger.Debit(tx, p.UserID, p.BetAmount)
		if err != nil {
			return fmt.Errorf("escrow joiner stake: %w", err)
		}

		err = e.ledger.LogTransaction(tx, p.UserID, ledger.TxWager, p.BetAmount)
		if err != nil {
			return fmt.Errorf("log escrow: %w", err)
		}

		joined = &wagers.Participant{
			WagerID:   w.ID,
			UserID:    p.UserID,
			TeamName:  p.TeamName,
			BetAmount: p.BetAmount,
		}

		err = e.wagers.InsertParticipant(tx, joined)
		if err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}

		w.TotalAmount = w.TotalAmount.Add(p.BetAmount)
		w.ParticipantCount++

		err = e.wagers.UpdateTotals(tx, w.ID, w.TotalAmount, w.ParticipantCount)
		if err != nil {
			return fmt.Errorf("update totals: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("join wager: %w", err)
	}

	metrics.WagerJoins.Inc()

	return joined, w, nil
}

// VoteResult reports what a recorded vote led to: either the round is still
// open (awaiting votes) or one of the settlement branches ran.
type VoteResult struct {
	Wager   *wagers.Wager
	Outcome Outcome
}

// CastVote records (or updates) the caller's winning-team vote, then checks
// whether every participant has voted and, if so, settles the wager per the
// aggregated outcome. Settlement is idempotent: a closed wager refuses the
// vote at the row lock, so a racing second resolution can never double-pay.
func (e *Engine) CastVote(ctx context.Context, wagerID, userID, winningTeam string) (*VoteResult, error) {
	if winningTeam == "" {
		return nil, ErrMissingTeam
	}

	var res VoteResult

	err := pgutils.WithTx(ctx, e.db, func(tx *sql.Tx) error {
		w, err := e.wagers.LockAndGet(tx, wagerID)
		if err != nil {
			return fmt.Errorf("lock wager: %w", err)
		}

		if w.Status == wagers.StatusClosed {
			return ErrWagerClosed
		}

		participants, err := e.wagers.Participants(tx, wagerID)
		if err != nil {
			return fmt.Errorf("read participants: %w", err)
		}

		voter := findParticipant(participants, userID)
		if voter == nil {
			return ErrNotParticipant
		}

		err = e.wagers.SetVote(tx, voter.ID, winningTeam)
		if err != nil {
			return fmt.Errorf("set vote: %w", err)
		}

		voter.WinningVote = &winningTeam

		outcome := ResolveVotes(participants, w.Status)

		err = e.applyOutcome(tx, w, participants, outcome)
		if err != nil {
			return fmt.Errorf("apply outcome: %w", err)
		}

		res = VoteResult{Wager: w, Outcome: outcome}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cast vote: %w", err)
	}

	metrics.VotesCast.Inc()
	metrics.Resolutions.WithLabelValues(string(res.Outcome.Kind)).Inc()

	return &res, nil
}

// applyOutcome performs the monetary consequences of a completed voting
// round and commits the status transition last, inside the same tx.
func (e *Engine) applyOutcome(tx *sql.Tx, w *wagers.Wager, participants []wagers.Participant, outcome Outcome) error {
	switch outcome.Kind {
	case OutcomeAwaitingVotes:
		return nil

	case OutcomeSingleRefund:
		sole := participants[0]

		err := e.refund(tx, sole.UserID, sole.BetAmount)
		if err != nil {
			return err
		}

		return e.close(tx, w)

	case OutcomeUnanimousWin:
		return e.settleUnanimous(tx, w, participants, outcome)

	case OutcomeFirstDispute:
		err := e.wagers.ClearVotes(tx, w.ID)
		if err != nil {
			return fmt.Errorf("clear votes: %w", err)
		}

		w.Status = wagers.StatusDisputed

		return e.wagers.UpdateStatus(tx, w.ID, wagers.StatusDisputed)

	case OutcomeRepeatDispute:
		return e.settleRepeatDispute(tx, w, participants)

	default:
		return fmt.Errorf("unknown outcome kind %q", outcome.Kind)
	}
}

func (e *Engine) settleUnanimous(tx *sql.Tx, w *wagers.Wager, participants []wagers.Participant, outcome Outcome) error {
	// A unanimous vote for a team nobody backed has no winner to pay; the
	// escrow goes back in full, and the platform takes no fee.
	if len(outcome.Winners) == 0 {
		for _, p := range participants {
			err := e.refund(tx, p.UserID, p.BetAmount)
			if err != nil {
				return err
			}
		}

		return e.close(tx, w)
	}

	fee, shares := splitPot(w.TotalAmount, len(outcome.Winners))

	for i, winner := range outcome.Winners {
		err := e.ledger.Credit(tx, winner.UserID, shares[i])
		if err != nil {
			return fmt.Errorf("credit winner: %w", err)
		}

		err = e.ledger.LogTransaction(tx, winner.UserID, ledger.TxWagerWin, shares[i])
		if err != nil {
			return fmt.Errorf("log win: %w", err)
		}
	}

	err := e.revenue.Record(tx, revenue.Event{
		Source:      "wager_fee",
		Amount:      fee,
		Description: fmt.Sprintf("1%% fee from wager pot of %s", w.TotalAmount.StringFixed(2)),
		UserID:      w.CreatorID,
	})
	if err != nil {
		return fmt.Errorf("record fee: %w", err)
	}

	metrics.PlatformFees.Add(fee.InexactFloat64())

	return e.close(tx, w)
}

func (e *Engine) settleRepeatDispute(tx *sql.Tx, w *wagers.Wager, participants []wagers.Participant) error {
	feeTotal := decimal.Zero

	for _, p := range participants {
		refund, fee := disputeRefund(p.BetAmount)
		feeTotal = feeTotal.Add(fee)

		err := e.refund(tx, p.UserID, refund)
		if err != nil {
			return err
		}
	}

	err := e.revenue.Record(tx, revenue.Event{
		Source:      "wager_dispute_fee",
		Amount:      feeTotal,
		Description: fmt.Sprintf("10%% dispute fee from disputed wager pot of %s", w.TotalAmount.StringFixed(2)),
		UserID:      w.CreatorID,
	})
	if err != nil {
		return fmt.Errorf("record dispute fee: %w", err)
	}

	metrics.PlatformFees.Add(feeTotal.InexactFloat64())

	return e.close(tx, w)
}

func (e *Engine) refund(tx *sql.Tx, userID string, amount decimal.Decimal) error {
	err := e.ledger.Credit(tx, userID, amount)
	if err != nil {
		return fmt.Errorf("credit refund: %w", err)
	}

	err = e.ledger.LogTransaction(tx, userID, ledger.TxWagerRefund, amount)
	if err != nil {
		return fmt.Errorf("log refund: %w", err)
	}

	return nil
}

func (e *Engine) close(tx *sql.Tx, w *wagers.Wager) error {
	w.Status = wagers.StatusClosed

	err := e.wagers.UpdateStatus(tx, w.ID, wagers.StatusClosed)
	if err != nil {
		return fmt.Errorf("close wager: %w", err)
	}

	return nil
}

// ManualClose is the administrative path: a participant marks the wager
// disputed or closed directly, without the full voting round. It is a pure
// status flip; no money moves. The caller must not have voted this round,
// which is what stops the same participant from closing twice.
func (e *Engine) ManualClose(ctx context.Context, wagerID, userID string, target wagers.Status) (*wagers.Wager, error) {
	if target != wagers.StatusDisputed && target != wagers.StatusClosed {
		return nil, ErrInvalidStatus
	}

	var w *wagers.Wager

	err := pgutils.WithTx(ctx, e.db, func(tx *sql.Tx) error {
		var err error

		w, err = e.wagers.LockAndGet(tx, wagerID)
		if err != nil {
			return fmt.Errorf("lock wager: %w", err)
		}

		if w.Status == wagers.StatusClosed {
			return ErrWagerClosed
		}

		participants, err := e.wagers.Participants(tx, wagerID)
		if err != nil {
			return fmt.Errorf("read participants: %w", err)
		}

		caller := findParticipant(participants, userID)
		if caller == nil {
			return ErrNotParticipant
		}
		if caller.Voted() {
			return ErrAlreadyVoted
		}

		w.Status = target

		err = e.wagers.UpdateStatus(tx, wagerID, target)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("manual close: %w", err)
	}

	return w, nil
}

// ResetVotes clears every participant's vote on a non-closed wager, opening
// a fresh voting round.
func (e *Engine) ResetVotes(ctx context.Context, wagerID string) error {
	err := pgutils.WithTx(ctx, e.db, func(tx *sql.Tx) error {
		w, err := e.wagers.LockAndGet(tx, wagerID)
		if err != nil {
			return fmt.Errorf("lock wager: %w", err)
		}

		if w.Status == wagers.StatusClosed {
			return ErrWagerClosed
		}

		err = e.wagers.ClearVotes(tx, wagerID)
		if err != nil {
			return fmt.Errorf("clear votes: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("reset votes: %w", err)
	}

	return nil
}

// List returns the creator's wagers when creatorID is set, otherwise the
// open (pending) wagers.
func (e *Engine) List(ctx context.Context, creatorID string) ([]wagers.Wager, error) {
	if creatorID != "" {
		ws, err := e.wagers.ListByCreator(ctx, creatorID)
		if err != nil {
			return nil, fmt.Errorf("list wagers: %w", err)
		}

		return ws, nil
	}

	ws, err := e.wagers.ListByStatus(ctx, wagers.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}

	return ws, nil
}

type Detail struct {
	Wager        *wagers.Wager
	Participants []wagers.Participant
}

func (e *Engine) GetDetail(ctx context.Context, wagerID string) (*Detail, error) {
	w, err := e.wagers.Get(ctx, wagerID)
	if err != nil {
		return nil, fmt.Errorf("get wager: %w", err)
	}

	participants, err := e.wagers.ParticipantsByWager(ctx, wagerID)
	if err != nil {
		return nil, fmt.Errorf("get participants: %w", err)
	}

	return &Detail{Wager: w, Participants: participants}, nil
}

func findParticipant(participants []wagers.Participant, userID string) *wagers.Participant {
	for i := range participants {
		if participants[i].UserID == userID {
			return &participants[i]
		}
	}

	return nil
}
