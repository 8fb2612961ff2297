package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
	"github.com/angelmontes7/openplay-wagers/internal/services/wager"
)

type createWagerRequest struct {
	CreatorID     string `json:"creatorId"`
	FacilityID    string `json:"facilityId"`
	TeamName      string `json:"teamName"`
	BaseBetAmount string `json:"baseBetAmount"`
}

// CreateWagerHandler handles POST /wagers
func (h *HandlerProvider) CreateWagerHandler(w http.ResponseWriter, r *http.Request) {
	var req createWagerRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.CreatorID == "" {
		writeError(w, http.StatusBadRequest, "creatorId required")
		return
	}
	if req.FacilityID == "" {
		writeError(w, http.StatusBadRequest, "facilityId required")
		return
	}

	amount, err := parseAmount(req.BaseBetAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.engine.Create(r.Context(), wager.CreateParams{
		CreatorID:     req.CreatorID,
		FacilityID:    req.FacilityID,
		TeamName:      req.TeamName,
		BaseBetAmount: amount,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWagerResponse(created))
}

// ListWagersHandler handles GET /wagers?creatorId=
func (h *HandlerProvider) ListWagersHandler(w http.ResponseWriter, r *http.Request) {
	creatorID := r.URL.Query().Get("creatorId")

	ws, err := h.engine.List(r.Context(), creatorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"wagers": toWagerResponses(ws)})
}

// GetWagerHandler handles GET /wagers/{wagerId}
func (h *HandlerProvider) GetWagerHandler(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerId")

	detail, err := h.engine.GetDetail(r.Context(), wagerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"wager":        toWagerResponse(detail.Wager),
		"participants": toParticipantResponses(detail.Participants),
	})
}

type joinWagerRequest struct {
	UserID    string `json:"userId"`
	TeamName  string `json:"teamName"`
	BetAmount string `json:"betAmount"`
}

// JoinWagerHandler handles POST /wagers/{wagerId}/participants
func (h *HandlerProvider) JoinWagerHandler(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerId")

	var req joinWagerRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	amount, err := parseAmount(req.BetAmount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	joined, updated, err := h.engine.Join(r.Context(), wager.JoinParams{
		WagerID:   wagerID,
		UserID:    req.UserID,
		TeamName:  req.TeamName,
		BetAmount: amount,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"participant": toParticipantResponse(*joined),
		"wager":       toWagerResponse(updated),
	})
}

type castVoteRequest struct {
	UserID      string `json:"userId"`
	WinningTeam string `json:"winningTeam"`
}

// CastVoteHandler handles POST /wagers/{wagerId}/votes
func (h *HandlerProvider) CastVoteHandler(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerId")

	var req castVoteRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	res, err := h.engine.CastVote(r.Context(), wagerID, req.UserID, req.WinningTeam)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"outcome": string(res.Outcome.Kind),
		"wager":   toWagerResponse(res.Wager),
	})
}

type updateStatusRequest struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// UpdateStatusHandler handles PATCH /wagers/{wagerId}/status
func (h *HandlerProvider) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerId")

	var req updateStatusRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	updated, err := h.engine.ManualClose(r.Context(), wagerID, req.UserID, wagers.Status(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toWagerResponse(updated))
}

// ResetVotesHandler handles POST /wagers/{wagerId}/votes/reset
func (h *HandlerProvider) ResetVotesHandler(w http.ResponseWriter, r *http.Request) {
	wagerID := chi.URLParam(r, "wagerId")

	err := h.engine.ResetVotes(r.Context(), wagerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
