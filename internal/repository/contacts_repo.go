package repository

import (
	"context"
	"errors"
	"time"

	"weup-connect/internal/domain"
)

// ErrContactNotFound returned when a mutation targets a contact id that does
// not exist for the user. Deletes are exempt: deleting a missing id is a
// no-op success.
var ErrContactNotFound = errors.New("contact not found")

// ContactsRepo support contact storage, scoped per user.
// Strongly typed domain models, no map[string]any.
type ContactsRepo interface {
	// ListContacts returns the user's contacts in insertion order.
	// An unknown user yields an empty list, not an error (first-run seeding
	// relies on this).
	ListContacts(ctx context.Context, userID string) ([]domain.Contact, error)

	// CreateContact persists a contact. ContactID and UserID must be set by
	// the caller.
	CreateContact(ctx context.Context, contact *domain.Contact) error

	// CreateContacts persists a batch (used for the first-run starter set).
	CreateContacts(ctx context.Context, contacts []domain.Contact) error

	// DeleteContact removes a contact. Returns whether a row was removed;
	// a missing id is (false, nil), not an error.
	DeleteContact(ctx context.Context, userID, contactID string) (bool, error)

	// SetLifeline marks one contact as the user's primary lifeline and
	// demotes every other contact in the same atomic operation. No
	// intermediate state with zero or multiple primaries is observable.
	// Returns ErrContactNotFound (and mutates nothing) if the id is unknown.
	SetLifeline(ctx context.Context, userID, contactID string) error

	// TouchLastContact records an interaction with the contact at the given
	// time (side effect of logging an interaction elsewhere in the system).
	TouchLastContact(ctx context.Context, userID, contactID string, at time.Time) error
}
