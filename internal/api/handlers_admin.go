package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/fete/internal/service"
	"github.com/mmynk/fete/internal/storage"
)

type addInviteeRequest struct {
	LastName    string `json:"last_name"`
	HasPlusOne  bool   `json:"has_plus_one"`
	PlusOneName string `json:"plus_one_name,omitempty"`
}

type updateInviteeRequest struct {
	HasPlusOne  bool    `json:"has_plus_one"`
	PlusOneName *string `json:"plus_one_name,omitempty"`
}

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := a.admin.Dashboard(r.Context())
	if err != nil {
		slog.Error("dashboard fetch failed", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	respondJSON(w, http.StatusOK, dashboard)
}

func (a *API) handleListRSVPs(w http.ResponseWriter, r *http.Request) {
	rsvps, err := a.admin.ListRSVPs(r.Context())
	if err != nil {
		slog.Error("rsvp list failed", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	respondJSON(w, http.StatusOK, rsvps)
}

func (a *API) handleListInvitees(w http.ResponseWriter, r *http.Request) {
	invitees, err := a.admin.ListInvitees(r.Context())
	if err != nil {
		slog.Error("invitee list failed", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	respondJSON(w, http.StatusOK, invitees)
}

func (a *API) handleAddInvitee(w http.ResponseWriter, r *http.Request) {
	var req addInviteeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	invitee, err := a.admin.AddInvitee(r.Context(), req.LastName, req.HasPlusOne, req.PlusOneName)
	if err != nil {
		if errors.Is(err, service.ErrInviteeLastNameRequired) {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		slog.Error("add invitee failed", "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	respondJSON(w, http.StatusCreated, invitee)
}

func (a *API) handleUpdateInvitee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateInviteeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	invitee, err := a.admin.UpdateInvitee(r.Context(), id, req.HasPlusOne, req.PlusOneName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, err)
			return
		}
		slog.Error("update invitee failed", "invitee_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	respondJSON(w, http.StatusOK, invitee)
}

// handleDeleteInvitee requires confirm=true: the destructive call never
// happens off a bare click.
func (a *API) handleDeleteInvitee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !confirmed {
		respondError(w, http.StatusBadRequest, errors.New("confirmation required: pass confirm=true"))
		return
	}

	if err := a.admin.DeleteInvitee(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, err)
			return
		}
		slog.Error("delete invitee failed", "invitee_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, errServerTrouble)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
