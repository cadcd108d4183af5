// Package auth implements the credential gates and session tokens that
// stand between visitors and the site.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/fete/internal/models"
	"github.com/mmynk/fete/internal/storage"
)

var (
	// ErrInvalidSecret means the supplied password did not match.
	ErrInvalidSecret = errors.New("invalid password")

	// ErrLastNameRequired means the name-verified gate got no last name.
	ErrLastNameRequired = errors.New("last name required")

	// ErrGuestNotListed means the password matched but the last name is
	// not on the invitee list.
	ErrGuestNotListed = errors.New("name not found on the guest list")
)

// InviteeLookup is the slice of the store the gate needs. This keeps the
// gate independent of the storage implementation.
type InviteeLookup interface {
	FindInviteeByLastName(ctx context.Context, lastName string) (*models.Invitee, error)
}

// Gate verifies visitor credentials. The guest and admin gates are separate
// secrets; the guest gate optionally also verifies the visitor's last name
// against the invitee list.
type Gate struct {
	guestSecret  string
	adminSecret  string
	requireMatch bool
	invitees     InviteeLookup
}

// NewGate creates a gate with the two configured secrets. When requireMatch
// is set, guest logins must also match an invitee last name via lookup.
// Either secret may be supplied as a bcrypt hash instead of plaintext.
func NewGate(guestSecret, adminSecret string, requireMatch bool, invitees InviteeLookup) *Gate {
	return &Gate{
		guestSecret:  guestSecret,
		adminSecret:  adminSecret,
		requireMatch: requireMatch,
		invitees:     invitees,
	}
}

// AttemptGuestLogin verifies the guest secret and, in the name-verified
// variant, resolves the visitor's invitee entry (case-insensitive, first
// match wins). On success it returns the matched invitee, which is nil when
// name verification is disabled. No session state is touched here; issuing
// the token is the caller's job, so a failed attempt can never half-unlock.
func (g *Gate) AttemptGuestLogin(ctx context.Context, secret, lastName string) (*models.Invitee, error) {
	if !verifySecret(g.guestSecret, secret) {
		return nil, ErrInvalidSecret
	}
	if !g.requireMatch {
		return nil, nil
	}

	if strings.TrimSpace(lastName) == "" {
		return nil, ErrLastNameRequired
	}
	invitee, err := g.invitees.FindInviteeByLastName(ctx, lastName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrGuestNotListed
		}
		// Transport/store failure: retryable, distinct from a mismatch.
		return nil, fmt.Errorf("guest list lookup failed: %w", err)
	}
	return invitee, nil
}

// AttemptAdminLogin verifies the admin secret.
func (g *Gate) AttemptAdminLogin(secret string) error {
	if !verifySecret(g.adminSecret, secret) {
		return ErrInvalidSecret
	}
	return nil
}

// verifySecret compares a candidate against the configured secret. A
// configured value with a bcrypt prefix is treated as a hash; anything else
// is compared in constant time.
func verifySecret(configured, candidate string) bool {
	if configured == "" || candidate == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(candidate)) == 1
}
