// Package models defines the core domain models for the RSVP site.
//
// Two records exist:
//   - Invitee: a guest-list entry, managed through the admin panel. It
//     determines plus-one eligibility independent of whether the guest has
//     responded.
//   - RSVP: a guest's submitted response. Created once through the public
//     form; there is no guest-facing edit or delete.
//
// The two are correlated by last name only. The correlation is a best-effort
// join over two independently-entered free-text fields: both sides are
// trimmed and lowercased before comparison (see NormalizeKey), and typos or
// stray whitespace are an accepted mismatch case. There is no foreign key.
//
// Both records use server-assigned UUIDs and Unix-second timestamps.
package models
