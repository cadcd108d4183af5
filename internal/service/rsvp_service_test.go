package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/fete/internal/models"
	"github.com/mmynk/fete/internal/storage"
	"github.com/mmynk/fete/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty guest name before touching the store", func(t *testing.T) {
		svc := NewRSVPService(newTestStore(t))
		err := svc.Submit(ctx, &models.RSVP{GuestName: "   ", LastName: "Rivera"})
		if !errors.Is(err, ErrGuestNameRequired) {
			t.Errorf("expected ErrGuestNameRequired, got %v", err)
		}

		duplicate, err := svc.CheckDuplicate(ctx, "Rivera", "")
		if err != nil {
			t.Fatalf("CheckDuplicate failed: %v", err)
		}
		if duplicate {
			t.Error("rejected submission must not leave a row behind")
		}
	})

	t.Run("submit then duplicate check returns true", func(t *testing.T) {
		svc := NewRSVPService(newTestStore(t))
		err := svc.Submit(ctx, &models.RSVP{GuestName: "Alex Rivera", LastName: "Rivera", Attending: true})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		for _, variant := range []string{"Rivera", "rivera", " RIVERA "} {
			duplicate, err := svc.CheckDuplicate(ctx, variant, "")
			if err != nil {
				t.Fatalf("CheckDuplicate(%q) failed: %v", variant, err)
			}
			if !duplicate {
				t.Errorf("CheckDuplicate(%q): expected true after submit", variant)
			}
		}
	})

	t.Run("second submission with the same name is rejected", func(t *testing.T) {
		svc := NewRSVPService(newTestStore(t))
		store := svc.store

		if err := svc.Submit(ctx, &models.RSVP{GuestName: "Alex Rivera", LastName: "Rivera", Attending: true}); err != nil {
			t.Fatalf("first Submit failed: %v", err)
		}
		err := svc.Submit(ctx, &models.RSVP{GuestName: "Alexandra Rivera", LastName: "rivera", Attending: false})
		if !errors.Is(err, ErrAlreadyResponded) {
			t.Errorf("expected ErrAlreadyResponded, got %v", err)
		}

		rsvps, err := store.ListRSVPs(ctx)
		if err != nil {
			t.Fatalf("ListRSVPs failed: %v", err)
		}
		if len(rsvps) != 1 {
			t.Errorf("expected exactly one stored row, got %d", len(rsvps))
		}
	})

	t.Run("email is the fallback duplicate key", func(t *testing.T) {
		svc := NewRSVPService(newTestStore(t))
		if err := svc.Submit(ctx, &models.RSVP{GuestName: "Sam Lee", Email: "sam@example.com", Attending: true}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		duplicate, err := svc.CheckDuplicate(ctx, "", "SAM@example.com ")
		if err != nil {
			t.Fatalf("CheckDuplicate failed: %v", err)
		}
		if !duplicate {
			t.Error("expected email duplicate to be detected")
		}

		err = svc.Submit(ctx, &models.RSVP{GuestName: "Sam L.", Email: "sam@example.com"})
		if !errors.Is(err, ErrAlreadyResponded) {
			t.Errorf("expected ErrAlreadyResponded, got %v", err)
		}
	})

	t.Run("free-text fields are trimmed and declining clears plus-one", func(t *testing.T) {
		svc := NewRSVPService(newTestStore(t))
		yes := true
		rsvp := &models.RSVP{
			GuestName:        "  Dana Cho  ",
			LastName:         " Cho ",
			Attending:        false,
			PlusOneAttending: &yes,
			Message:          "  sorry!  ",
			NumberOfGuests:   -2,
		}
		if err := svc.Submit(ctx, rsvp); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if rsvp.GuestName != "Dana Cho" || rsvp.LastName != "Cho" || rsvp.Message != "sorry!" {
			t.Errorf("fields not trimmed: %+v", rsvp)
		}
		if rsvp.PlusOneAttending != nil {
			t.Error("declining guest should carry no plus-one answer")
		}
		if rsvp.NumberOfGuests != 0 {
			t.Errorf("negative guest count not clamped: %d", rsvp.NumberOfGuests)
		}
	})

	t.Run("no key means no duplicate detection", func(t *testing.T) {
		svc := NewRSVPService(newTestStore(t))
		duplicate, err := svc.CheckDuplicate(ctx, "", "")
		if err != nil {
			t.Fatalf("CheckDuplicate failed: %v", err)
		}
		if duplicate {
			t.Error("empty key must not report a duplicate")
		}
	})
}
