package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mmynk/fete/internal/models"
)

func TestSessionManager(t *testing.T) {
	manager := NewSessionManager("test-signing-key", time.Hour)

	t.Run("guest session carries the matched invitee", func(t *testing.T) {
		invitee := &models.Invitee{ID: "inv-1", LastName: "Nguyen", HasPlusOne: true, PlusOneName: "Sam"}
		token, err := manager.Issue(ScopeGuest, invitee)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.Scope != ScopeGuest {
			t.Errorf("scope: got %q, want %q", claims.Scope, ScopeGuest)
		}
		if claims.MatchedLastName != "Nguyen" || claims.InviteeID != "inv-1" {
			t.Errorf("matched identity not carried: %+v", claims)
		}
		if !claims.HasPlusOne || claims.PlusOneName != "Sam" {
			t.Errorf("plus-one eligibility not carried: %+v", claims)
		}
	})

	t.Run("admin session has no invitee", func(t *testing.T) {
		token, err := manager.Issue(ScopeAdmin, nil)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.Scope != ScopeAdmin {
			t.Errorf("scope: got %q, want %q", claims.Scope, ScopeAdmin)
		}
		if claims.MatchedLastName != "" {
			t.Errorf("admin session should not carry a matched name: %+v", claims)
		}
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := NewSessionManager("different-key", time.Hour)
		token, err := other.Issue(ScopeGuest, nil)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := NewSessionManager("test-signing-key", -time.Minute)
		token, err := expired.Issue(ScopeGuest, nil)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
