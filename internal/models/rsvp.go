package models

// RSVP represents a guest's submitted response.
type RSVP struct {
	// ID is the unique identifier (UUID format), assigned by the store.
	ID string `json:"id"`

	// GuestName is the responding guest's full name. Required.
	GuestName string `json:"guest_name"`

	// LastName correlates the response to an Invitee by normalized match.
	LastName string `json:"last_name,omitempty"`

	// Attending records whether the guest is coming.
	Attending bool `json:"attending"`

	// PlusOneAttending is set only when the matched invitee has a plus-one;
	// nil means the question was never asked.
	PlusOneAttending *bool `json:"plus_one_attending,omitempty"`

	// Email and Phone are optional contact fields.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// NumberOfGuests is the party size the guest entered, 0 when unused.
	NumberOfGuests int `json:"number_of_guests,omitempty"`

	// DietaryRestrictions and Message are optional free text.
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	Message             string `json:"message,omitempty"`

	// CreatedAt is the Unix timestamp when the response was stored.
	CreatedAt int64 `json:"created_at"`
}

// DuplicateKey returns the normalized key duplicate submissions are detected
// by: the last name when present, else the email. Empty means the record has
// no usable key and cannot be duplicate-checked.
func (r *RSVP) DuplicateKey() string {
	if key := NormalizeKey(r.LastName); key != "" {
		return key
	}
	return NormalizeKey(r.Email)
}
