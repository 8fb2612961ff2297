package logging

import (
	"log/slog"
	"os"
)

// SetupJSON installs a JSON slog logger at the given level as the process
// default.
func SetupJSON(level slog.Level) {
	logger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}),
	)
	slog.SetDefault(logger)
}
