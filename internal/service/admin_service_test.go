package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/fete/internal/models"
	"github.com/mmynk/fete/internal/storage"
)

func TestAdminInvitees(t *testing.T) {
	ctx := context.Background()

	t.Run("AddInvitee rejects empty last name", func(t *testing.T) {
		svc := NewAdminService(newTestStore(t))
		_, err := svc.AddInvitee(ctx, "   ", true, "Sam")
		if !errors.Is(err, ErrInviteeLastNameRequired) {
			t.Errorf("expected ErrInviteeLastNameRequired, got %v", err)
		}
	})

	t.Run("AddInvitee places the entry alphabetically", func(t *testing.T) {
		svc := NewAdminService(newTestStore(t))
		for _, name := range []string{"Zhang", "Alvarez"} {
			if _, err := svc.AddInvitee(ctx, name, false, ""); err != nil {
				t.Fatalf("AddInvitee(%q) failed: %v", name, err)
			}
		}
		if _, err := svc.AddInvitee(ctx, "Nguyen", true, "Sam"); err != nil {
			t.Fatalf("AddInvitee failed: %v", err)
		}

		invitees, err := svc.ListInvitees(ctx)
		if err != nil {
			t.Fatalf("ListInvitees failed: %v", err)
		}
		if len(invitees) != 3 {
			t.Fatalf("expected 3 invitees, got %d", len(invitees))
		}
		if invitees[1].LastName != "Nguyen" {
			t.Errorf("expected Nguyen between Alvarez and Zhang, got order %v",
				[]string{invitees[0].LastName, invitees[1].LastName, invitees[2].LastName})
		}
		if !invitees[1].HasPlusOne || invitees[1].PlusOneName != "Sam" {
			t.Errorf("plus-one fields lost: %+v", invitees[1])
		}
	})

	t.Run("UpdateInvitee with nil plus-one name keeps the stored name", func(t *testing.T) {
		svc := NewAdminService(newTestStore(t))
		invitee, err := svc.AddInvitee(ctx, "Okafor", true, "Ada")
		if err != nil {
			t.Fatalf("AddInvitee failed: %v", err)
		}

		updated, err := svc.UpdateInvitee(ctx, invitee.ID, false, nil)
		if err != nil {
			t.Fatalf("UpdateInvitee failed: %v", err)
		}
		if updated.HasPlusOne {
			t.Error("expected HasPlusOne false")
		}
		if updated.PlusOneName != "Ada" {
			t.Errorf("plus-one name erased by flag change: %q", updated.PlusOneName)
		}
	})

	t.Run("UpdateInvitee with explicit name replaces it", func(t *testing.T) {
		svc := NewAdminService(newTestStore(t))
		invitee, err := svc.AddInvitee(ctx, "Okafor", true, "Ada")
		if err != nil {
			t.Fatalf("AddInvitee failed: %v", err)
		}

		name := "Chidi"
		updated, err := svc.UpdateInvitee(ctx, invitee.ID, true, &name)
		if err != nil {
			t.Fatalf("UpdateInvitee failed: %v", err)
		}
		if updated.PlusOneName != "Chidi" {
			t.Errorf("expected plus-one name replaced, got %q", updated.PlusOneName)
		}
	})

	t.Run("UpdateInvitee unknown ID returns not found", func(t *testing.T) {
		svc := NewAdminService(newTestStore(t))
		_, err := svc.UpdateInvitee(ctx, "no-such-id", true, nil)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteInvitee leaves other rows and responses alone", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewAdminService(store)
		rsvps := NewRSVPService(store)

		keep, err := svc.AddInvitee(ctx, "Keep", false, "")
		if err != nil {
			t.Fatalf("AddInvitee failed: %v", err)
		}
		gone, err := svc.AddInvitee(ctx, "Gone", false, "")
		if err != nil {
			t.Fatalf("AddInvitee failed: %v", err)
		}
		if err := rsvps.Submit(ctx, &models.RSVP{GuestName: "G. Gone", LastName: "Gone", Attending: true}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		if err := svc.DeleteInvitee(ctx, gone.ID); err != nil {
			t.Fatalf("DeleteInvitee failed: %v", err)
		}

		invitees, err := svc.ListInvitees(ctx)
		if err != nil {
			t.Fatalf("ListInvitees failed: %v", err)
		}
		if len(invitees) != 1 || invitees[0].ID != keep.ID {
			t.Errorf("expected only %q to remain, got %+v", keep.LastName, invitees)
		}

		remaining, err := svc.ListRSVPs(ctx)
		if err != nil {
			t.Fatalf("ListRSVPs failed: %v", err)
		}
		if len(remaining) != 1 {
			t.Errorf("deleting an invitee must not touch responses, got %d rows", len(remaining))
		}
	})
}

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	admin := NewAdminService(store)
	rsvps := NewRSVPService(store)

	if _, err := admin.AddInvitee(ctx, "Nguyen", true, "Sam"); err != nil {
		t.Fatalf("AddInvitee failed: %v", err)
	}
	if _, err := admin.AddInvitee(ctx, "Rivera", false, ""); err != nil {
		t.Fatalf("AddInvitee failed: %v", err)
	}

	t.Run("empty dashboard has zero stats", func(t *testing.T) {
		dashboard, err := admin.Dashboard(ctx)
		if err != nil {
			t.Fatalf("Dashboard failed: %v", err)
		}
		if dashboard.Stats != (Stats{}) {
			t.Errorf("expected zero stats, got %+v", dashboard.Stats)
		}
		if len(dashboard.Invitees) != 2 {
			t.Errorf("expected 2 invitee summaries, got %d", len(dashboard.Invitees))
		}
	})

	t.Run("stats and correlation counts track submissions", func(t *testing.T) {
		if err := rsvps.Submit(ctx, &models.RSVP{GuestName: "Alex Rivera", LastName: "Rivera", Attending: true}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if err := rsvps.Submit(ctx, &models.RSVP{GuestName: "Bao Nguyen", LastName: "NGUYEN", Attending: false}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		dashboard, err := admin.Dashboard(ctx)
		if err != nil {
			t.Fatalf("Dashboard failed: %v", err)
		}

		want := Stats{TotalRSVPs: 2, Attending: 1, NotAttending: 1}
		if dashboard.Stats != want {
			t.Errorf("stats: got %+v, want %+v", dashboard.Stats, want)
		}

		counts := make(map[string]int)
		for _, summary := range dashboard.Invitees {
			counts[summary.LastName] = summary.RSVPCount
		}
		if counts["Nguyen"] != 1 {
			t.Errorf("Nguyen correlation count: got %d, want 1 (casing must not matter)", counts["Nguyen"])
		}
		if counts["Rivera"] != 1 {
			t.Errorf("Rivera correlation count: got %d, want 1", counts["Rivera"])
		}
	})

	t.Run("rsvps in the dashboard are newest first", func(t *testing.T) {
		dashboard, err := admin.Dashboard(ctx)
		if err != nil {
			t.Fatalf("Dashboard failed: %v", err)
		}
		if len(dashboard.RSVPs) != 2 {
			t.Fatalf("expected 2 rsvps, got %d", len(dashboard.RSVPs))
		}
		for i := 1; i < len(dashboard.RSVPs); i++ {
			if dashboard.RSVPs[i-1].CreatedAt < dashboard.RSVPs[i].CreatedAt {
				t.Error("rsvps not in newest-first order")
			}
		}
	})
}
