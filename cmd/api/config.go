package main

import (
	"log/slog"
	"time"

	"github.com/angelmontes7/openplay-wagers/internal/config"
)

type apiConfig struct {
	Port            uint16        `envconfig:"APP_PORT" default:"8080"`
	MetricsPort     string        `envconfig:"APP_METRICS_PORT" default:"9090"`
	LogLevel        slog.Level    `envconfig:"APP_LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`
	Postgres        config.PostgresConfig
}
