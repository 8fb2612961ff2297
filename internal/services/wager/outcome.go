package wager

import (
	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

// OutcomeKind identifies which settlement branch a completed voting round
// selects. Exactly one kind applies to any combination of votes.
type OutcomeKind string

const (
	// OutcomeAwaitingVotes — at least one participant has not voted yet.
	OutcomeAwaitingVotes OutcomeKind = "awaiting_votes"
	// OutcomeSingleRefund — the sole participant gets their full stake back.
	OutcomeSingleRefund OutcomeKind = "single_participant_refund"
	// OutcomeUnanimousWin — every vote names the same team.
	OutcomeUnanimousWin OutcomeKind = "unanimous_win"
	// OutcomeFirstDispute — votes disagree for the first time; a re-vote
	// round is opened.
	OutcomeFirstDispute OutcomeKind = "first_dispute"
	// OutcomeRepeatDispute — votes disagree again on an already disputed
	// wager; everyone is refunded minus the dispute fee.
	OutcomeRepeatDispute OutcomeKind = "repeat_dispute_refund_all"
)

type Outcome struct {
	Kind        OutcomeKind
	WinningTeam string
	// Winners holds the participants whose team matches the unanimous vote.
	// Empty for every kind except OutcomeUnanimousWin, and may be empty even
	// then if the voted team has no members.
	Winners []wagers.Participant
}

// ResolveVotes is the pure decision step of settlement: given the current
// participant rows and the wager's status it selects the settlement branch.
// It performs no I/O; the engine applies the monetary consequences.
//
// Unanimity means the set of votes has exactly one distinct value across all
// participants. Any dissent at all routes to a dispute branch; there is no
// majority rule.
func ResolveVotes(participants []wagers.Participant, status wagers.Status) Outcome {
	for _, p := range participants {
		if !p.Voted() {
			return Outcome{Kind: OutcomeAwaitingVotes}
		}
	}

	if len(participants) == 0 {
		return Outcome{Kind: OutcomeAwaitingVotes}
	}

	if len(participants) == 1 {
		return Outcome{Kind: OutcomeSingleRefund}
	}

	first := *participants[0].WinningVote
	for _, p := range participants[1:] {
		if *p.WinningVote != first {
			if status == wagers.StatusDisputed {
				return Outcome{Kind: OutcomeRepeatDispute}
			}

			return Outcome{Kind: OutcomeFirstDispute}
		}
	}

	var winners []wagers.Participant
	for _, p := range participants {
		if p.TeamName == first {
			winners = append(winners, p)
		}
	}

	return Outcome{Kind: OutcomeUnanimousWin, WinningTeam: first, Winners: winners}
}
