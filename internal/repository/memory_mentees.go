package repository

import (
	"context"
	"sync"
	"time"

	"weup-connect/internal/domain"
)

// MemoryMenteesRepo in-memory MenteesRepo for local dev and tests.
type MemoryMenteesRepo struct {
	mu sync.RWMutex

	// mentees keyed by case manager, insertion order preserved
	mentees map[string][]domain.Mentee
}

func NewMemoryMenteesRepo() *MemoryMenteesRepo {
	return &MemoryMenteesRepo{mentees: map[string][]domain.Mentee{}}
}

var _ MenteesRepo = (*MemoryMenteesRepo)(nil)

func (r *MemoryMenteesRepo) ListMentees(_ context.Context, userID string) ([]domain.Mentee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Mentee, len(r.mentees[userID]))
	copy(out, r.mentees[userID])
	return out, nil
}

func (r *MemoryMenteesRepo) CreateMentee(_ context.Context, mentee *domain.Mentee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mentees[mentee.UserID] = append(r.mentees[mentee.UserID], *mentee)
	return nil
}

func (r *MemoryMenteesRepo) UpdateEngagement(_ context.Context, userID, menteeID string, resourcesUsed, checkInsMissed int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.mentees[userID]
	for i := range list {
		if list[i].MenteeID == menteeID {
			list[i].ResourcesUsed = resourcesUsed
			list[i].CheckInsMissed = checkInsMissed
			list[i].Status = status
			return nil
		}
	}
	return ErrMenteeNotFound
}

func (r *MemoryMenteesRepo) TouchLastContact(_ context.Context, userID, menteeID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.mentees[userID]
	for i := range list {
		if list[i].MenteeID == menteeID {
			t := at
			list[i].LastContact = &t
			return nil
		}
	}
	return ErrMenteeNotFound
}
