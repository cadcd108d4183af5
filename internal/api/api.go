// Package api exposes the HTTP surface: the gate and session endpoints, the
// guest RSVP endpoints, the admin dashboard, and the static site itself.
package api

import (
	"errors"

	"github.com/mmynk/fete/internal/auth"
	"github.com/mmynk/fete/internal/service"
)

// API wires the gate, session manager, and services for the HTTP handlers.
type API struct {
	gate      *auth.Gate
	sessions  *auth.SessionManager
	rsvps     *service.RSVPService
	admin     *service.AdminService
	staticDir string
}

// New initialises the API layer. staticDir may be empty to disable serving
// the static bundle (useful in tests).
func New(gate *auth.Gate, sessions *auth.SessionManager, rsvps *service.RSVPService, admin *service.AdminService, staticDir string) (*API, error) {
	if gate == nil {
		return nil, errors.New("gate is required")
	}
	if sessions == nil {
		return nil, errors.New("session manager is required")
	}
	if rsvps == nil {
		return nil, errors.New("rsvp service is required")
	}
	if admin == nil {
		return nil, errors.New("admin service is required")
	}
	return &API{
		gate:      gate,
		sessions:  sessions,
		rsvps:     rsvps,
		admin:     admin,
		staticDir: staticDir,
	}, nil
}
