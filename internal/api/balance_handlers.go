package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmontes7/openplay-wagers/internal/services/balance"
)

// GetBalanceHandler handles GET /user/{userId}/balance
func (h *HandlerProvider) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId in path")
		return
	}

	bal, err := h.balances.GetBalance(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"userId":  userID,
		"balance": bal.StringFixed(2),
	})
}

type fundRequest struct {
	Action string `json:"action"`
	Amount string `json:"amount"`
}

// FundBalanceHandler handles POST /user/{userId}/balance
func (h *HandlerProvider) FundBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId in path")
		return
	}

	var req fundRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var action balance.Action

	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "add":
		action = balance.ActionAdd
	case "subtract":
		action = balance.ActionSubtract
	default:
		writeError(w, http.StatusBadRequest, "invalid action")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	newBalance, err := h.balances.Fund(r.Context(), userID, action, amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"userId":  userID,
		"balance": newBalance.StringFixed(2),
	})
}
