package repository

import (
	"context"
	"errors"
	"time"

	"weup-connect/internal/domain"
)

var ErrMenteeNotFound = errors.New("mentee not found")

// MenteesRepo caseload roster storage, scoped per case manager.
type MenteesRepo interface {
	// ListMentees returns the case manager's mentees in insertion order.
	ListMentees(ctx context.Context, userID string) ([]domain.Mentee, error)

	// CreateMentee persists a mentee. MenteeID and UserID must be set.
	CreateMentee(ctx context.Context, mentee *domain.Mentee) error

	// UpdateEngagement replaces the raw engagement signals for a mentee.
	UpdateEngagement(ctx context.Context, userID, menteeID string, resourcesUsed, checkInsMissed int, status string) error

	// TouchLastContact records an interaction with the mentee.
	TouchLastContact(ctx context.Context, userID, menteeID string, at time.Time) error
}
