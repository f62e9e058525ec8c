package repository

import (
	"context"
	"sync"
	"time"

	"weup-connect/internal/domain"
)

// MemoryContactsRepo in-memory ContactsRepo for local dev (DB not ready) and
// tests. Per-user isolation, insertion order preserved. Mutations are
// last-write-wins, matching the production repo's consistency model.
type MemoryContactsRepo struct {
	mu sync.RWMutex

	// contacts keyed by user, insertion order preserved
	contacts map[string][]domain.Contact
}

func NewMemoryContactsRepo() *MemoryContactsRepo {
	return &MemoryContactsRepo{contacts: map[string][]domain.Contact{}}
}

var _ ContactsRepo = (*MemoryContactsRepo)(nil)

func (r *MemoryContactsRepo) ListContacts(_ context.Context, userID string) ([]domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Contact, len(r.contacts[userID]))
	copy(out, r.contacts[userID])
	return out, nil
}

func (r *MemoryContactsRepo) CreateContact(_ context.Context, contact *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts[contact.UserID] = append(r.contacts[contact.UserID], *contact)
	return nil
}

func (r *MemoryContactsRepo) CreateContacts(_ context.Context, contacts []domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range contacts {
		r.contacts[c.UserID] = append(r.contacts[c.UserID], c)
	}
	return nil
}

func (r *MemoryContactsRepo) DeleteContact(_ context.Context, userID, contactID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.contacts[userID]
	for i, c := range list {
		if c.ContactID == contactID {
			r.contacts[userID] = append(list[:i:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryContactsRepo) SetLifeline(_ context.Context, userID, contactID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.contacts[userID]
	found := false
	for _, c := range list {
		if c.ContactID == contactID {
			found = true
			break
		}
	}
	if !found {
		return ErrContactNotFound
	}

	// Promote + demote under the same lock: exclusivity is never observable
	// as violated.
	for i := range list {
		list[i].IsPrimary = list[i].ContactID == contactID
	}
	return nil
}

func (r *MemoryContactsRepo) TouchLastContact(_ context.Context, userID, contactID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.contacts[userID]
	for i := range list {
		if list[i].ContactID == contactID {
			t := at
			list[i].LastContact = &t
			return nil
		}
	}
	return ErrContactNotFound
}
