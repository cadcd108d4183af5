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

// ErrInviteeLastNameRequired means an invitee was added with an empty last
// name after trimming.
var ErrInviteeLastNameRequired = errors.New("invitee last name is required")

// AdminService implements the dashboard: listing responses, managing the
// invitee list, and the aggregate view joining the two.
type AdminService struct {
	store storage.Store
}

// NewAdminService creates an AdminService with the given storage backend.
func NewAdminService(store storage.Store) *AdminService {
	return &AdminService{store: store}
}

// Stats are the dashboard headline numbers.
type Stats struct {
	TotalRSVPs   int `json:"total_rsvps"`
	Attending    int `json:"attending"`
	NotAttending int `json:"not_attending"`
}

// InviteeSummary is an invitee plus the number of responses correlated to it
// by normalized last name.
type InviteeSummary struct {
	models.Invitee
	RSVPCount int `json:"rsvp_count"`
}

// Dashboard bundles everything the admin view renders in one fetch.
type Dashboard struct {
	Stats    Stats            `json:"stats"`
	RSVPs    []models.RSVP    `json:"rsvps"`
	Invitees []InviteeSummary `json:"invitees"`
}

// ListRSVPs returns all responses, newest first.
func (s *AdminService) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	rsvps, err := s.store.ListRSVPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	return rsvps, nil
}

// ListInvitees returns all invitees, alphabetical by last name.
func (s *AdminService) ListInvitees(ctx context.Context) ([]models.Invitee, error) {
	invitees, err := s.store.ListInvitees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitees: %w", err)
	}
	return invitees, nil
}

// Dashboard fetches both collections fresh (the view never caches across tab
// switches) and computes the aggregates: attendance stats plus a per-invitee
// count of correlated responses. The correlation is an in-memory join on the
// normalized last name, fine at guest-list scale.
func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	rsvps, err := s.ListRSVPs(ctx)
	if err != nil {
		return nil, err
	}
	invitees, err := s.ListInvitees(ctx)
	if err != nil {
		return nil, err
	}

	stats := Stats{TotalRSVPs: len(rsvps)}
	countsByName := make(map[string]int)
	for _, rsvp := range rsvps {
		if rsvp.Attending {
			stats.Attending++
		} else {
			stats.NotAttending++
		}
		if key := models.NormalizeKey(rsvp.LastName); key != "" {
			countsByName[key]++
		}
	}

	summaries := make([]InviteeSummary, len(invitees))
	for i, invitee := range invitees {
		summaries[i] = InviteeSummary{
			Invitee:   invitee,
			RSVPCount: countsByName[models.NormalizeKey(invitee.LastName)],
		}
	}

	return &Dashboard{
		Stats:    stats,
		RSVPs:    rsvps,
		Invitees: summaries,
	}, nil
}

// AddInvitee creates a guest-list entry. The last name must be non-empty
// after trimming; this is checked before the store is touched.
func (s *AdminService) AddInvitee(ctx context.Context, lastName string, hasPlusOne bool, plusOneName string) (*models.Invitee, error) {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, ErrInviteeLastNameRequired
	}

	invitee := &models.Invitee{
		LastName:    lastName,
		HasPlusOne:  hasPlusOne,
		PlusOneName: strings.TrimSpace(plusOneName),
	}
	if err := s.store.CreateInvitee(ctx, invitee); err != nil {
		return nil, fmt.Errorf("failed to add invitee: %w", err)
	}

	slog.Info("invitee added", "invitee_id", invitee.ID, "last_name", invitee.LastName)
	return invitee, nil
}

// UpdateInvitee replaces the two mutable fields and returns the updated
// entry. A nil plusOneName keeps the stored name: turning HasPlusOne off
// does not erase who the plus-one was.
func (s *AdminService) UpdateInvitee(ctx context.Context, id string, hasPlusOne bool, plusOneName *string) (*models.Invitee, error) {
	name := ""
	if plusOneName != nil {
		name = strings.TrimSpace(*plusOneName)
	} else {
		existing, err := s.store.GetInvitee(ctx, id)
		if err != nil {
			return nil, err
		}
		name = existing.PlusOneName
	}

	if err := s.store.UpdateInvitee(ctx, id, hasPlusOne, name); err != nil {
		return nil, err
	}

	invitee, err := s.store.GetInvitee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated invitee: %w", err)
	}

	slog.Info("invitee updated", "invitee_id", id, "has_plus_one", hasPlusOne)
	return invitee, nil
}

// DeleteInvitee removes one guest-list entry. Responses correlated to it are
// left untouched; the correlation is display-only.
func (s *AdminService) DeleteInvitee(ctx context.Context, id string) error {
	if err := s.store.DeleteInvitee(ctx, id); err != nil {
		return err
	}
	slog.Info("invitee deleted", "invitee_id", id)
	return nil
}
