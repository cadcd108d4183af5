// Package service implements the application logic between the HTTP surface
// and the store: RSVP submission and the admin dashboard.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/fete/internal/models"
	"github.com/mmynk/fete/internal/storage"
)

var (
	// ErrGuestNameRequired means the submission had no guest name after
	// trimming.
	ErrGuestNameRequired = errors.New("guest name is required")

	// ErrAlreadyResponded means a response with the same key exists.
	ErrAlreadyResponded = errors.New("looks like you are already on the list")
)

// RSVPService handles guest response submission.
type RSVPService struct {
	store storage.Store
}

// NewRSVPService creates an RSVPService with the given storage backend.
func NewRSVPService(store storage.Store) *RSVPService {
	return &RSVPService{store: store}
}

// CheckDuplicate reports whether a response already exists for the given
// identity. The check is best-effort: it mirrors what Submit will enforce,
// but the store's unique index is the real authority when two submissions
// race.
func (s *RSVPService) CheckDuplicate(ctx context.Context, lastName, email string) (bool, error) {
	probe := models.RSVP{LastName: lastName, Email: email}
	key := probe.DuplicateKey()
	if key == "" {
		return false, nil
	}

	count, err := s.store.CountRSVPsByKey(ctx, key)
	if err != nil {
		return false, fmt.Errorf("duplicate check failed: %w", err)
	}
	return count > 0, nil
}

// Submit validates and stores one response. Validation failures never reach
// the store; a duplicate (detected up front or lost in a race at insert
// time) comes back as ErrAlreadyResponded with no second row written.
func (s *RSVPService) Submit(ctx context.Context, rsvp *models.RSVP) error {
	normalize(rsvp)
	if rsvp.GuestName == "" {
		return ErrGuestNameRequired
	}

	if key := rsvp.DuplicateKey(); key != "" {
		count, err := s.store.CountRSVPsByKey(ctx, key)
		if err != nil {
			return fmt.Errorf("duplicate check failed: %w", err)
		}
		if count > 0 {
			slog.Info("duplicate rsvp rejected", "key", key)
			return ErrAlreadyResponded
		}
	}

	if err := s.store.CreateRSVP(ctx, rsvp); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			// Two submissions raced past the check; the index caught it.
			slog.Info("duplicate rsvp rejected at insert", "guest_name", rsvp.GuestName)
			return ErrAlreadyResponded
		}
		return fmt.Errorf("failed to store rsvp: %w", err)
	}

	slog.Info("rsvp stored",
		"rsvp_id", rsvp.ID,
		"guest_name", rsvp.GuestName,
		"attending", rsvp.Attending,
	)
	return nil
}

// normalize trims all free-text fields and clamps the guest count so that
// "empty" is uniformly the zero value.
func normalize(rsvp *models.RSVP) {
	rsvp.GuestName = strings.TrimSpace(rsvp.GuestName)
	rsvp.LastName = strings.TrimSpace(rsvp.LastName)
	rsvp.Email = strings.TrimSpace(rsvp.Email)
	rsvp.Phone = strings.TrimSpace(rsvp.Phone)
	rsvp.DietaryRestrictions = strings.TrimSpace(rsvp.DietaryRestrictions)
	rsvp.Message = strings.TrimSpace(rsvp.Message)
	if rsvp.NumberOfGuests < 0 {
		rsvp.NumberOfGuests = 0
	}
	if !rsvp.Attending {
		// A declining guest brings nobody.
		rsvp.PlusOneAttending = nil
	}
}
