package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/angelmontes7/openplay-wagers/internal/services/balance"
	"github.com/angelmontes7/openplay-wagers/internal/services/wager"
)

// NewServer creates and returns a configured *http.Server for the wager API.
func NewServer(port uint16, engine *wager.Engine, balances *balance.Service) *http.Server {
	mux := NewRouter(engine, balances)

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
