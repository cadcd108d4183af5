package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/fete/internal/auth"
	"github.com/mmynk/fete/internal/middleware"
)

// Routes constructs the chi router containing all endpoints.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.OptionalSession(a.sessions)).Get("/session", a.handleSessionState)
		r.Post("/session/guest", a.handleGuestLogin)
		r.Post("/session/admin", a.handleAdminLogin)
		r.Delete("/session", a.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireScope(a.sessions, auth.ScopeGuest))
			r.Get("/rsvps/duplicate", a.handleCheckDuplicate)
			r.Post("/rsvps", a.handleSubmitRSVP)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireScope(a.sessions, auth.ScopeAdmin))
			r.Get("/dashboard", a.handleDashboard)
			r.Get("/rsvps", a.handleListRSVPs)
			r.Get("/invitees", a.handleListInvitees)
			r.Post("/invitees", a.handleAddInvitee)
			r.Put("/invitees/{id}", a.handleUpdateInvitee)
			r.Delete("/invitees/{id}", a.handleDeleteInvitee)
		})
	})

	if a.staticDir != "" {
		r.NotFound(a.handleStatic)
	}

	return r
}
