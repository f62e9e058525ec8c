package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"weup-connect/internal/domain"
	"weup-connect/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService owns the lifecycle of a user's support contacts and the
// overdue-for-outreach computation behind the reminder surface.
type ContactService struct {
	repo    repository.ContactsRepo
	starter []domain.Contact
	logger  *zap.Logger
}

// DefaultStarterContacts is the first-run starter set seeded for a user with
// no contacts yet. Injected rather than referenced directly so tests can run
// against an empty roster.
var DefaultStarterContacts = []domain.Contact{
	{
		Name:       "Reentry Navigator",
		Role:       domain.ContactRoleMentor,
		Phone:      "215-555-0134",
		Frequency:  domain.FrequencyWeekly,
		GoalTag:    "general",
		OriginNote: "Added for you by We Up",
		Verified:   true,
	},
	{
		Name:      "Parole Officer",
		Role:      domain.ContactRoleParoleOfficer,
		Phone:     "215-555-0172",
		Frequency: domain.FrequencyMonthly,
		GoalTag:   "legal",
	},
}

// NewContactService creates the contact service. starter may be nil to
// disable first-run seeding.
func NewContactService(repo repository.ContactsRepo, starter []domain.Contact, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, starter: starter, logger: logger}
}

// ListContacts returns the user's contacts. On first access (empty roster)
// the starter set is persisted and returned, so the app never opens on an
// empty screen.
func (s *ContactService) ListContacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	contacts, err := s.repo.ListContacts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	if len(contacts) > 0 || len(s.starter) == 0 {
		return contacts, nil
	}

	seeded := make([]domain.Contact, len(s.starter))
	for i, c := range s.starter {
		c.ContactID = uuid.NewString()
		c.UserID = userID
		seeded[i] = c
	}
	if err := s.repo.CreateContacts(ctx, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed starter contacts: %w", err)
	}
	s.logger.Info("Seeded starter contacts",
		zap.String("user_id", userID),
		zap.Int("count", len(seeded)),
	)
	return seeded, nil
}

// AddContactRequest create contact request
type AddContactRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	IsPrimary  bool     `json:"is_primary"`
	GoalTag    string   `json:"goal_tag"`
	Frequency  string   `json:"frequency"`
	Tags       []string `json:"tags"`
	OriginNote string   `json:"origin_note"`
}

// AddContact validates, assigns an id and persists a new contact.
// Name, phone and role are required here even though the storage layer does
// not enforce them.
func (s *ContactService) AddContact(ctx context.Context, userID string, req AddContactRequest) (*domain.Contact, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if !domain.IsValidRole(req.Role) {
		return nil, fmt.Errorf("invalid role: %q", req.Role)
	}

	contact := &domain.Contact{
		ContactID:  uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Role:       req.Role,
		Phone:      req.Phone,
		Email:      req.Email,
		GoalTag:    req.GoalTag,
		Frequency:  req.Frequency,
		Tags:       req.Tags,
		OriginNote: req.OriginNote,
	}
	if err := s.repo.CreateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	// is_primary on create goes through SetLifeline so exclusivity holds.
	if req.IsPrimary {
		if err := s.repo.SetLifeline(ctx, userID, contact.ContactID); err != nil {
			return nil, fmt.Errorf("failed to set lifeline: %w", err)
		}
		contact.IsPrimary = true
	}

	return contact, nil
}

// DeleteContact removes a contact. Deleting an unknown id is a no-op success.
func (s *ContactService) DeleteContact(ctx context.Context, userID, contactID string) (bool, error) {
	if userID == "" || contactID == "" {
		return false, fmt.Errorf("user_id and contact_id are required")
	}
	removed, err := s.repo.DeleteContact(ctx, userID, contactID)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return removed, nil
}

// SetLifeline designates the user's single primary lifeline contact.
func (s *ContactService) SetLifeline(ctx context.Context, userID, contactID string) error {
	if userID == "" || contactID == "" {
		return fmt.Errorf("user_id and contact_id are required")
	}
	if err := s.repo.SetLifeline(ctx, userID, contactID); err != nil {
		return err
	}
	s.logger.Info("Lifeline updated",
		zap.String("user_id", userID),
		zap.String("contact_id", contactID),
	)
	return nil
}

// RecordInteraction stamps last_contact for a contact (called when the user
// logs a call or visit elsewhere in the app).
func (s *ContactService) RecordInteraction(ctx context.Context, userID, contactID string, at time.Time) error {
	if userID == "" || contactID == "" {
		return fmt.Errorf("user_id and contact_id are required")
	}
	return s.repo.TouchLastContact(ctx, userID, contactID, at)
}

// OverdueContact a contact past its outreach cadence.
type OverdueContact struct {
	Contact     domain.Contact `json:"contact"`
	DaysOverdue int            `json:"days_overdue"`
}

// OverdueContacts returns contacts past their cadence threshold, most overdue
// first. Never-contacted entries are floored at the epoch so they always
// surface at the top.
func (s *ContactService) OverdueContacts(ctx context.Context, userID string, now time.Time) ([]OverdueContact, error) {
	contacts, err := s.ListContacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	overdue := []OverdueContact{}
	for _, c := range contacts {
		if days, ok := c.Overdue(now); ok {
			overdue = append(overdue, OverdueContact{Contact: c, DaysOverdue: days})
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DaysOverdue > overdue[j].DaysOverdue
	})
	return overdue, nil
}
