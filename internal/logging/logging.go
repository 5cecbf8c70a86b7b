// Package logging builds the structured slog.Logger used throughout the
// service: a single configured handler (text or JSON, level-gated)
// instead of scattered fmt.Printf call sites.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/facturaIA/docid-service/internal/config"
)

// New builds a slog.Logger from a LoggingConfig: "json" selects
// slog.JSONHandler, anything else falls back to the text handler.
func New(cfg config.LoggingConfig) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
