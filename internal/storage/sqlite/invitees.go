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

// CreateInvitee inserts a new invitee, assigning ID and CreatedAt when unset.
func (s *SQLiteStore) CreateInvitee(ctx context.Context, invitee *models.Invitee) error {
	if invitee.ID == "" {
		invitee.ID = uuid.New().String()
	}
	if invitee.CreatedAt == 0 {
		invitee.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO invitees (id, last_name, has_plus_one, plus_one_name, created_at) VALUES (?, ?, ?, ?, ?)",
		invitee.ID, invitee.LastName, invitee.HasPlusOne, invitee.PlusOneName, invitee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invitee: %w", err)
	}
	return nil
}

// GetInvitee retrieves an invitee by ID.
func (s *SQLiteStore) GetInvitee(ctx context.Context, id string) (*models.Invitee, error) {
	invitee := &models.Invitee{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, last_name, has_plus_one, plus_one_name, created_at FROM invitees WHERE id = ?",
		id,
	).Scan(&invitee.ID, &invitee.LastName, &invitee.HasPlusOne, &invitee.PlusOneName, &invitee.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitee: %w", err)
	}
	return invitee, nil
}

// FindInviteeByLastName looks up an invitee by normalized last name.
// Ties on last name resolve to the earliest-created entry.
func (s *SQLiteStore) FindInviteeByLastName(ctx context.Context, lastName string) (*models.Invitee, error) {
	invitee := &models.Invitee{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, last_name, has_plus_one, plus_one_name, created_at
		 FROM invitees
		 WHERE lower(trim(last_name)) = ?
		 ORDER BY created_at, id
		 LIMIT 1`,
		models.NormalizeKey(lastName),
	).Scan(&invitee.ID, &invitee.LastName, &invitee.HasPlusOne, &invitee.PlusOneName, &invitee.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find invitee: %w", err)
	}
	return invitee, nil
}

// ListInvitees returns all invitees ordered alphabetically by last name.
func (s *SQLiteStore) ListInvitees(ctx context.Context) ([]models.Invitee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, last_name, has_plus_one, plus_one_name, created_at
		 FROM invitees
		 ORDER BY lower(last_name), created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitees: %w", err)
	}
	defer rows.Close()

	var invitees []models.Invitee
	for rows.Next() {
		var invitee models.Invitee
		if err := rows.Scan(&invitee.ID, &invitee.LastName, &invitee.HasPlusOne, &invitee.PlusOneName, &invitee.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitee: %w", err)
		}
		invitees = append(invitees, invitee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitees: %w", err)
	}
	return invitees, nil
}

// UpdateInvitee replaces the two mutable fields of an invitee. The stored
// plus-one name survives the flag being turned off.
func (s *SQLiteStore) UpdateInvitee(ctx context.Context, id string, hasPlusOne bool, plusOneName string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE invitees SET has_plus_one = ?, plus_one_name = ? WHERE id = ?",
		hasPlusOne, plusOneName, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update invitee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteInvitee removes one invitee row.
func (s *SQLiteStore) DeleteInvitee(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM invitees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invitee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
