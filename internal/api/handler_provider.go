package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmontes7/openplay-wagers/internal/repos/ledger"
	"github.com/angelmontes7/openplay-wagers/internal/repos/wagers"
	"github.com/angelmontes7/openplay-wagers/internal/services/balance"
	"github.com/angelmontes7/openplay-wagers/internal/services/wager"
)

// HandlerProvider wraps the wager engine and balance service and exposes
// their HTTP handlers.
type HandlerProvider struct {
	engine   *wager.Engine
	balances *balance.Service
}

func NewHandler(engine *wager.Engine, balances *balance.Service) *HandlerProvider {
	return &HandlerProvider{engine: engine, balances: balances}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody reads a size-capped JSON body into dst, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// parseAmount converts a decimal string with up to 2 fractional digits.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount")
	}

	if !d.Equal(d.Round(2)) {
		return decimal.Zero, fmt.Errorf("amount supports up to 2 decimals")
	}

	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be > 0")
	}

	return d, nil
}

// writeDomainError maps engine/repo errors onto HTTP statuses; anything
// unrecognized is logged and surfaced as a generic 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wagers.ErrWagerNotFound),
		errors.Is(err, wagers.ErrParticipantNotFound),
		errors.Is(err, ledger.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "not found")

	case errors.Is(err, wager.ErrInvalidAmount),
		errors.Is(err, wager.ErrMissingTeam),
		errors.Is(err, balance.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, wager.ErrInvalidStake):
		writeError(w, http.StatusConflict, "bet amount must equal base bet amount")

	case errors.Is(err, ledger.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient balance")

	case errors.Is(err, wager.ErrOwnWager),
		errors.Is(err, wagers.ErrDuplicateParticipant),
		errors.Is(err, wager.ErrAlreadyVoted):
		writeError(w, http.StatusConflict, unwrapMessage(err))

	case errors.Is(err, wager.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "user is not a participant of this wager")

	case errors.Is(err, wager.ErrWagerClosed),
		errors.Is(err, wager.ErrNotJoinable),
		errors.Is(err, wager.ErrInvalidStatus):
		writeError(w, http.StatusUnprocessableEntity, unwrapMessage(err))

	default:
		slog.Error("unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// unwrapMessage returns the innermost (sentinel) error text so callers see
// the domain reason without the wrapping chain.
func unwrapMessage(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}

		err = inner
	}
}
