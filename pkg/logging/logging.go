// Package logging configures structured logging for the server.
//
// Two handlers are supported: a colored console handler (tint) for local
// development and a JSON handler for deployments that ship logs somewhere.
//
// Environment variables:
//
//	LOG_LEVEL:  debug, info, warn, error (default: info)
//	LOG_FORMAT: console, json (default: console)
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default slog logger based on LOG_LEVEL and LOG_FORMAT.
func Setup() {
	SetupWith(levelFromEnv(), os.Getenv("LOG_FORMAT"))
}

// SetupWith installs the default slog logger with an explicit level and format.
func SetupWith(level slog.Level, format string) {
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
	default:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
