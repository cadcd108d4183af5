package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mmynk/fete/internal/middleware"
	"github.com/mmynk/fete/internal/models"
	"github.com/mmynk/fete/internal/service"
)

type rsvpRequest struct {
	GuestName           string `json:"guest_name"`
	LastName            string `json:"last_name,omitempty"`
	Attending           bool   `json:"attending"`
	PlusOneAttending    *bool  `json:"plus_one_attending,omitempty"`
	Email               string `json:"email,omitempty"`
	Phone               string `json:"phone,omitempty"`
	NumberOfGuests      int    `json:"number_of_guests,omitempty"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	Message             string `json:"message,omitempty"`
}

// handleSubmitRSVP stores one guest response. When the session carries a
// matched invitee and the form left the last name blank, the matched name
// fills in so the response correlates without retyping.
func (a *API) handleSubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var req rsvpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	rsvp := &models.RSVP{
		GuestName:           req.GuestName,
		LastName:            req.LastName,
		Attending:           req.Attending,
		PlusOneAttending:    req.PlusOneAttending,
		Email:               req.Email,
		Phone:               req.Phone,
		NumberOfGuests:      req.NumberOfGuests,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	}

	claims := middleware.GetSession(r.Context())
	if claims != nil && claims.MatchedLastName != "" {
		if rsvp.LastName == "" {
			rsvp.LastName = claims.MatchedLastName
		}
		if !claims.HasPlusOne {
			// Plus-one answers only mean something for eligible invitees.
			rsvp.PlusOneAttending = nil
		}
	}

	if err := a.rsvps.Submit(r.Context(), rsvp); err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNameRequired):
			respondError(w, http.StatusBadRequest, err)
		case errors.Is(err, service.ErrAlreadyResponded):
			middleware.DuplicateRejections.Inc()
			respondError(w, http.StatusConflict, err)
		default:
			slog.Error("rsvp submit failed", "guest_name", req.GuestName, "error", err)
			respondError(w, http.StatusInternalServerError, errServerTrouble)
		}
		return
	}

	middleware.RSVPSubmissions.WithLabelValues(strconv.FormatBool(rsvp.Attending)).Inc()
	respondJSON(w, http.StatusCreated, rsvp)
}

// handleCheckDuplicate lets the form warn before submitting. Best-effort:
// a clean answer here does not reserve anything.
func (a *API) handleCheckDuplicate(w http.ResponseWriter, r *http.Request) {
	lastName := r.URL.Query().Get("last_name")
	email := r.URL.Query().Get("email")
	if lastName == "" {
		if claims := middleware.GetSession(r.Context()); claims != nil {
			lastName = claims.MatchedLastName
		}
	}

	duplicate, err := a.rsvps.CheckDuplicate(r.Context(), lastName, email)
	if err != nil {
		slog.Error("duplicate check failed", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"duplicate": duplicate})
}
