package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/fete/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session")
	ErrMissingToken = errors.New("session required")
)

// Scope identifies which gate a session was issued by.
type Scope string

const (
	// ScopeGuest unlocks the public site and the RSVP form.
	ScopeGuest Scope = "guest"
	// ScopeAdmin unlocks the admin dashboard.
	ScopeAdmin Scope = "admin"
)

// Claims carries the session state: the scope and, for name-verified guest
// sessions, the matched invitee so the RSVP form can pre-fill plus-one
// eligibility without another lookup.
type Claims struct {
	Scope           Scope  `json:"scope"`
	InviteeID       string `json:"invitee_id,omitempty"`
	MatchedLastName string `json:"matched_last_name,omitempty"`
	HasPlusOne      bool   `json:"has_plus_one,omitempty"`
	PlusOneName     string `json:"plus_one_name,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates signed session tokens. Tokens are
// stateless: logout is the client discarding the cookie, expiry bounds the
// damage of a leaked token.
type SessionManager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewSessionManager creates a session manager signing with secretKey.
// Tokens expire after ttl.
func NewSessionManager(secretKey string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Issue creates a session token for the given scope. invitee may be nil;
// when set, the matched identity rides along in the claims.
func (m *SessionManager) Issue(scope Scope, invitee *models.Invitee) (string, error) {
	now := time.Now()
	claims := &Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if invitee != nil {
		claims.InviteeID = invitee.ID
		claims.MatchedLastName = invitee.LastName
		claims.HasPlusOne = invitee.HasPlusOne
		claims.PlusOneName = invitee.PlusOneName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and validates a session token, returning its claims.
func (m *SessionManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
