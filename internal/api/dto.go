package api

import (
	"time"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
)

type wagerResponse struct {
	ID               string    `json:"id"`
	CreatorID        string    `json:"creatorId"`
	FacilityID       string    `json:"facilityId"`
	BaseBetAmount    string    `json:"baseBetAmount"`
	TotalAmount      string    `json:"totalAmount"`
	ParticipantCount int       `json:"participantCount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type participantResponse struct {
	ID          int64     `json:"id"`
	WagerID     string    `json:"wagerId"`
	UserID      string    `json:"userId"`
	TeamName    string    `json:"teamName"`
	BetAmount   string    `json:"betAmount"`
	WinningVote *string   `json:"winningVote"`
	JoinedAt    time.Time `json:"joinedAt"`
}

func toWagerResponse(w *wagers.Wager) wagerResponse {
	return wagerResponse{
		ID:               w.ID,
		CreatorID:        w.CreatorID,
		FacilityID:       w.FacilityID,
		BaseBetAmount:    w.BaseBetAmount.StringFixed(2),
		TotalAmount:      w.TotalAmount.StringFixed(2),
		ParticipantCount: w.ParticipantCount,
		Status:           string(w.Status),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func toParticipantResponse(p wagers.Participant) participantResponse {
	return participantResponse{
		ID:          p.ID,
		WagerID:     p.WagerID,
		UserID:      p.UserID,
		TeamName:    p.TeamName,
		BetAmount:   p.BetAmount.StringFixed(2),
		WinningVote: p.WinningVote,
		JoinedAt:    p.JoinedAt,
	}
}

func toWagerResponses(ws []wagers.Wager) []wagerResponse {
	out := make([]wagerResponse, 0, len(ws))
	for i := range ws {
		out = append(out, toWagerResponse(&ws[i]))
	}

	return out
}

func toParticipantResponses(ps []wagers.Participant) []participantResponse {
	out := make([]participantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toParticipantResponse(p))
	}

	return out
}
