package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WagersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openplay_wagers_created_total",
		Help: "Wagers created.",
	})

	WagerJoins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openplay_wager_joins_total",
		Help: "Participants joined onto existing wagers.",
	})

	VotesCast = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openplay_wager_votes_total",
		Help: "Winning-team votes recorded.",
	})

	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "openplay_wager_resolutions_total",
		Help: "Settlement outcomes, by branch.",
	}, []string{"outcome"})

	PlatformFees = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openplay_platform_fees_total",
		Help: "Platform fees retained, in currency units.",
	})
)
