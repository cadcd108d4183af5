package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/fete/internal/api"
	"github.com/mmynk/fete/internal/auth"
	"github.com/mmynk/fete/internal/config"
	"github.com/mmynk/fete/internal/service"
	"github.com/mmynk/fete/internal/storage/sqlite"
	"github.com/mmynk/fete/pkg/logging"
)

func main() {
	logging.Setup()

	// Missing secrets or store path is fatal: nothing can run without them.
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	gate := auth.NewGate(cfg.GuestPassword, cfg.AdminPassword, cfg.RequireInviteeMatch, store)

	srv, err := api.New(
		gate,
		sessions,
		service.NewRSVPService(store),
		service.NewAdminService(store),
		cfg.StaticDir,
	)
	if err != nil {
		slog.Error("failed to build api", "error", err)
		os.Exit(1)
	}

	// h2c allows HTTP/2 without TLS when a proxy in front terminates it.
	handler := h2c.NewHandler(srv.Routes(), &http2.Server{})

	slog.Info("server starting",
		"addr", cfg.Addr,
		"static_dir", cfg.StaticDir,
		"invitee_match", cfg.RequireInviteeMatch,
	)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
