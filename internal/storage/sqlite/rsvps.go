package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fete/internal/models"
	"github.com/mmynk/fete/internal/storage"
)

// CreateRSVP inserts a new response, assigning ID and CreatedAt when unset.
// The normalized duplicate key is stored alongside the row; a collision on
// it comes back as storage.ErrDuplicate.
func (s *SQLiteStore) CreateRSVP(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp.ID == "" {
		rsvp.ID = uuid.New().String()
	}
	if rsvp.CreatedAt == 0 {
		rsvp.CreatedAt = time.Now().Unix()
	}

	var plusOne sql.NullBool
	if rsvp.PlusOneAttending != nil {
		plusOne = sql.NullBool{Bool: *rsvp.PlusOneAttending, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rsvps
		 (id, guest_name, last_name, attending, plus_one_attending, email, phone,
		  number_of_guests, dietary_restrictions, message, duplicate_key, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rsvp.ID, rsvp.GuestName, rsvp.LastName, rsvp.Attending, plusOne,
		rsvp.Email, rsvp.Phone, rsvp.NumberOfGuests,
		rsvp.DietaryRestrictions, rsvp.Message, rsvp.DuplicateKey(), rsvp.CreatedAt,
	)
	if isUniqueViolation(err) {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert rsvp: %w", err)
	}
	return nil
}

// ListRSVPs returns all responses, newest first.
func (s *SQLiteStore) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, guest_name, last_name, attending, plus_one_attending, email, phone,
		        number_of_guests, dietary_restrictions, message, created_at
		 FROM rsvps
		 ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []models.RSVP
	for rows.Next() {
		var rsvp models.RSVP
		var plusOne sql.NullBool
		if err := rows.Scan(
			&rsvp.ID, &rsvp.GuestName, &rsvp.LastName, &rsvp.Attending, &plusOne,
			&rsvp.Email, &rsvp.Phone, &rsvp.NumberOfGuests,
			&rsvp.DietaryRestrictions, &rsvp.Message, &rsvp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		if plusOne.Valid {
			rsvp.PlusOneAttending = &plusOne.Bool
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
	}
	return rsvps, nil
}

// CountRSVPsByKey counts responses stored under the given duplicate key.
func (s *SQLiteStore) CountRSVPsByKey(ctx context.Context, key string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rsvps WHERE duplicate_key = ?",
		key,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rsvps: %w", err)
	}
	return count, nil
}
