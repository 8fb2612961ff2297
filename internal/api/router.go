package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmontes7/openplay-wagers/internal/services/balance"
	"github.com/angelmontes7/openplay-wagers/internal/services/wager"
)

// NewRouter constructs the chi router with all API endpoints registered.
func NewRouter(engine *wager.Engine, balances *balance.Service) http.Handler {
	h := NewHandler(engine, balances)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/wagers", func(r chi.Router) {
		r.Post("/", h.CreateWagerHandler)
		r.Get("/", h.ListWagersHandler)
		r.Get("/{wagerId}", h.GetWagerHandler)
		r.Post("/{wagerId}/participants", h.JoinWagerHandler)
		r.Post("/{wagerId}/votes", h.CastVoteHandler)
		r.Post("/{wagerId}/votes/reset", h.ResetVotesHandler)
		r.Patch("/{wagerId}/status", h.UpdateStatusHandler)
	})

	r.Get("/user/{userId}/balance", h.GetBalanceHandler)
	r.Post("/user/{userId}/balance", h.FundBalanceHandler)

	return r
}
