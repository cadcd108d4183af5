package models

import "strings"

// Invitee represents one guest-list entry.
type Invitee struct {
	// ID is the unique identifier (UUID format), assigned by the store.
	ID string `json:"id"`

	// LastName is the case-insensitive match key guests are looked up by.
	LastName string `json:"last_name"`

	// HasPlusOne marks whether this invitee may bring a plus-one.
	HasPlusOne bool `json:"has_plus_one"`

	// PlusOneName is the plus-one's name. Meaningful only while HasPlusOne
	// is set; it is kept (not cleared) when the flag is turned off.
	PlusOneName string `json:"plus_one_name,omitempty"`

	// CreatedAt is the Unix timestamp when the entry was added.
	CreatedAt int64 `json:"created_at"`
}

// NormalizeKey reduces a free-text name to the form used for matching:
// surrounding whitespace trimmed, then lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
