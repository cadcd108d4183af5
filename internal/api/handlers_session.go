package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/fete/internal/auth"
	"github.com/mmynk/fete/internal/middleware"
)

var errServerTrouble = errors.New("something went wrong, please try again")

type guestLoginRequest struct {
	Password string `json:"password"`
	LastName string `json:"last_name,omitempty"`
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

type sessionInvitee struct {
	LastName    string `json:"last_name"`
	HasPlusOne  bool   `json:"has_plus_one"`
	PlusOneName string `json:"plus_one_name,omitempty"`
}

type sessionState struct {
	Guest   bool            `json:"guest"`
	Admin   bool            `json:"admin"`
	Invitee *sessionInvitee `json:"invitee,omitempty"`
}

// handleGuestLogin is the gate: it verifies the shared secret (and, in the
// name-verified variant, the visitor's last name) and sets the session
// cookie. A failed attempt sets nothing, so resubmission is always safe.
func (a *API) handleGuestLogin(w http.ResponseWriter, r *http.Request) {
	var req guestLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	invitee, err := a.gate.AttemptGuestLogin(r.Context(), req.Password, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidSecret):
			middleware.LoginAttempts.WithLabelValues("guest", "bad_secret").Inc()
			respondError(w, http.StatusUnauthorized, err)
		case errors.Is(err, auth.ErrLastNameRequired):
			middleware.LoginAttempts.WithLabelValues("guest", "invalid").Inc()
			respondError(w, http.StatusBadRequest, err)
		case errors.Is(err, auth.ErrGuestNotListed):
			middleware.LoginAttempts.WithLabelValues("guest", "not_listed").Inc()
			respondError(w, http.StatusUnauthorized, err)
		default:
			middleware.LoginAttempts.WithLabelValues("guest", "error").Inc()
			slog.Error("guest login lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, errServerTrouble)
		}
		return
	}

	token, err := a.sessions.Issue(auth.ScopeGuest, invitee)
	if err != nil {
		slog.Error("failed to issue guest session", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	middleware.LoginAttempts.WithLabelValues("guest", "ok").Inc()

	state := sessionState{Guest: true}
	if invitee != nil {
		slog.Info("guest unlocked", "last_name", invitee.LastName)
		state.Invitee = &sessionInvitee{
			LastName:    invitee.LastName,
			HasPlusOne:  invitee.HasPlusOne,
			PlusOneName: invitee.PlusOneName,
		}
	} else {
		slog.Info("guest unlocked")
	}

	setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, state)
}

// handleAdminLogin is the admin gate, independent of the guest gate.
func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.gate.AttemptAdminLogin(req.Password); err != nil {
		middleware.LoginAttempts.WithLabelValues("admin", "bad_secret").Inc()
		respondError(w, http.StatusUnauthorized, err)
		return
	}

	token, err := a.sessions.Issue(auth.ScopeAdmin, nil)
	if err != nil {
		slog.Error("failed to issue admin session", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	middleware.LoginAttempts.WithLabelValues("admin", "ok").Inc()
	slog.Info("admin unlocked")

	setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, sessionState{Admin: true})
}

// handleLogout expires the session cookie. Tokens are stateless, so this is
// the whole story; expiry bounds anything the client kept around.
func (a *API) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionState reports whether the caller holds a guest or admin
// session, plus the matched invitee for RSVP form pre-fill.
func (a *API) handleSessionState(w http.ResponseWriter, r *http.Request) {
	state := sessionState{}
	if claims := middleware.GetSession(r.Context()); claims != nil {
		switch claims.Scope {
		case auth.ScopeGuest:
			state.Guest = true
			if claims.MatchedLastName != "" {
				state.Invitee = &sessionInvitee{
					LastName:    claims.MatchedLastName,
					HasPlusOne:  claims.HasPlusOne,
					PlusOneName: claims.PlusOneName,
				}
			}
		case auth.ScopeAdmin:
			state.Admin = true
		}
	}
	respondJSON(w, http.StatusOK, state)
}

// setSessionCookie sets the token as a browser-session cookie: no Max-Age,
// so it is gone when the browser session ends.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
