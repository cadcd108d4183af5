// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/fete/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert collides with the unique
	// index on the RSVP duplicate key.
	ErrDuplicate = errors.New("duplicate record")
)

// Store defines the interface for invitee and RSVP persistence.
// This abstraction allows swapping storage backends (sqlite, Postgres, a
// hosted row store) without changing the service layer.
type Store interface {
	// CreateInvitee persists a new invitee. ID and CreatedAt are assigned
	// by the store when unset.
	CreateInvitee(ctx context.Context, invitee *models.Invitee) error

	// GetInvitee retrieves an invitee by ID. Returns ErrNotFound if absent.
	GetInvitee(ctx context.Context, id string) (*models.Invitee, error)

	// FindInviteeByLastName looks an invitee up by normalized last name
	// (trim + lowercase). When several entries share a last name the
	// earliest-created wins. Returns ErrNotFound if no entry matches.
	FindInviteeByLastName(ctx context.Context, lastName string) (*models.Invitee, error)

	// ListInvitees returns all invitees ordered alphabetically by last
	// name (case-insensitive).
	ListInvitees(ctx context.Context) ([]models.Invitee, error)

	// UpdateInvitee replaces the two mutable fields of an invitee.
	// Returns ErrNotFound if the invitee does not exist.
	UpdateInvitee(ctx context.Context, id string, hasPlusOne bool, plusOneName string) error

	// DeleteInvitee removes exactly one invitee row.
	// Returns ErrNotFound if the invitee does not exist.
	DeleteInvitee(ctx context.Context, id string) error

	// CreateRSVP persists a new response. ID and CreatedAt are assigned by
	// the store when unset. Returns ErrDuplicate when a response with the
	// same duplicate key already exists.
	CreateRSVP(ctx context.Context, rsvp *models.RSVP) error

	// ListRSVPs returns all responses, newest first.
	ListRSVPs(ctx context.Context) ([]models.RSVP, error)

	// CountRSVPsByKey counts responses whose duplicate key equals key.
	CountRSVPsByKey(ctx context.Context, key string) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
