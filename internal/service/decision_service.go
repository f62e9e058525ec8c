package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"weup-connect/internal/domain"
	"weup-connect/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DecisionService the next-best-action engine: merges universal coping
// actions, the user's primary lifeline and category-matched resources into a
// ranked recommendation list for a reported emotional state.
type DecisionService struct {
	contacts  repository.ContactsRepo
	resources ResourceSource
	logger    *zap.Logger
}

func NewDecisionService(contacts repository.ContactsRepo, resources ResourceSource, logger *zap.Logger) *DecisionService {
	return &DecisionService{contacts: contacts, resources: resources, logger: logger}
}

// universalActions maps each emotional state to its hardcoded coping
// activities. Priorities 1-2; priority 0 is reserved for the lifeline call
// and the crisis-lifeline escalation.
var universalActions = map[domain.Emotion][]domain.ActionRecommendation{
	domain.EmotionAnger: {
		{
			ID:          "activity-cooldown-walk",
			Type:        domain.ActionTypeActivity,
			Label:       "Take a Cooldown Walk",
			Description: "Ten minutes of walking drops the adrenaline before you respond.",
			ActionLabel: "Start Walk Timer",
			Priority:    1,
		},
		{
			ID:          "activity-box-breathing",
			Type:        domain.ActionTypeActivity,
			Label:       "Box Breathing",
			Description: "Four counts in, hold four, out four, hold four.",
			ActionLabel: "Start Breathing",
			Priority:    2,
		},
	},
	domain.EmotionAnxiety: {
		{
			ID:          "activity-grounding",
			Type:        domain.ActionTypeActivity,
			Label:       "5-4-3-2-1 Grounding",
			Description: "Name five things you see, four you feel, three you hear.",
			ActionLabel: "Start Grounding",
			Priority:    1,
		},
		{
			ID:          "activity-box-breathing",
			Type:        domain.ActionTypeActivity,
			Label:       "Box Breathing",
			Description: "Four counts in, hold four, out four, hold four.",
			ActionLabel: "Start Breathing",
			Priority:    2,
		},
	},
	domain.EmotionUrge: {
		{
			ID:          "activity-urge-surf",
			Type:        domain.ActionTypeActivity,
			Label:       "Urge Surfing",
			Description: "Urges crest and pass in about twenty minutes. Ride this one out.",
			ActionLabel: "Start Timer",
			Priority:    1,
		},
		{
			ID:          "activity-delay",
			Type:        domain.ActionTypeActivity,
			Label:       "Delay Ten Minutes",
			Description: "Commit to nothing for ten minutes, then decide again.",
			ActionLabel: "Start Delay",
			Priority:    2,
		},
	},
	domain.EmotionConflict: {
		{
			ID:          "activity-step-away",
			Type:        domain.ActionTypeActivity,
			Label:       "Step Away",
			Description: "Leave the room before the conversation leaves you.",
			ActionLabel: "Start Cooldown",
			Priority:    1,
		},
		{
			ID:          "activity-write-it-down",
			Type:        domain.ActionTypeActivity,
			Label:       "Write It Down",
			Description: "Put what you want to say on paper first.",
			ActionLabel: "Open Notes",
			Priority:    2,
		},
	},
	domain.EmotionDepression: {
		{
			ID:          "activity-change-state",
			Type:        domain.ActionTypeActivity,
			Label:       "Change Your State",
			Description: "Move your body for two minutes: stand up, stretch, step outside.",
			ActionLabel: "Start Routine",
			Priority:    2,
		},
	},
}

// NextBestAction produces the ranked action list for a reported emotional
// state. Both data fetches complete before anything is merged; any fetch
// error fails the whole call (no partial results). Lookup misses are never
// errors: the corresponding step just contributes nothing.
func (s *DecisionService) NextBestAction(ctx context.Context, userID string, emotion domain.Emotion) ([]domain.ActionRecommendation, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	needHousing := emotion == domain.EmotionDepression || emotion == domain.EmotionAnxiety
	needCrisis := emotion == domain.EmotionDepression || emotion == domain.EmotionUrge

	var (
		contacts []domain.Contact
		housing  []domain.Resource
		crisis   []domain.Resource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.contacts.ListContacts(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch contacts: %w", err)
		}
		return nil
	})
	if needHousing {
		g.Go(func() error {
			var err error
			housing, err = s.resources.Resources(gctx, domain.ResourceCategoryHousing)
			if err != nil {
				return fmt.Errorf("failed to fetch housing resources: %w", err)
			}
			return nil
		})
	}
	if needCrisis {
		g.Go(func() error {
			var err error
			crisis, err = s.resources.Resources(gctx, domain.ResourceCategoryCrisis)
			if err != nil {
				return fmt.Errorf("failed to fetch crisis resources: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 1. Universal coping actions for the emotion. An unknown emotion yields
	// an empty seed, never an error.
	recs := append([]domain.ActionRecommendation{}, universalActions[emotion]...)

	// 2. Primary lifeline contact always outranks universal actions.
	if primary := findPrimary(contacts); primary != nil {
		recs = append(recs, domain.ActionRecommendation{
			ID:          "contact-" + primary.ContactID,
			Type:        domain.ActionTypeContact,
			Label:       "Call " + primary.Name,
			Description: primary.Role + " · your lifeline",
			ActionLabel: "Call " + primary.Phone,
			TargetID:    primary.ContactID,
			Priority:    0,
		})
	}

	// 3. Safe-haven escalation for depression/anxiety.
	if needHousing {
		if haven := findSafeHaven(housing); haven != nil {
			recs = append(recs, domain.ActionRecommendation{
				ID:          "resource-" + haven.ResourceID,
				Type:        domain.ActionTypeResource,
				Label:       "Go to " + haven.Name,
				Description: haven.Description,
				ActionLabel: haven.ActionLabel,
				TargetID:    haven.ResourceID,
				Priority:    3,
			})
		}
	}

	// 4. Crisis-lifeline escalation for depression/urge. Allowed to tie with
	// the lifeline contact at priority 0; insertion order is the only
	// ordering among equals.
	if needCrisis {
		if lifeline := findCrisisLifeline(crisis); lifeline != nil {
			recs = append(recs, domain.ActionRecommendation{
				ID:          "resource-" + lifeline.ResourceID,
				Type:        domain.ActionTypeResource,
				Label:       "Call " + lifeline.Name,
				Description: lifeline.Description,
				ActionLabel: lifeline.ActionLabel,
				TargetID:    lifeline.ResourceID,
				Priority:    0,
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs, nil
}

func findPrimary(contacts []domain.Contact) *domain.Contact {
	for i := range contacts {
		if contacts[i].IsPrimary {
			return &contacts[i]
		}
	}
	return nil
}

// findSafeHaven prefers the explicit tag; the name-substring match remains as
// a compatibility shim for seed data that predates the tag.
func findSafeHaven(resources []domain.Resource) *domain.Resource {
	for i := range resources {
		if resources[i].IsSafeHaven {
			return &resources[i]
		}
	}
	for i := range resources {
		if strings.Contains(resources[i].Name, "Project HOME") || strings.Contains(resources[i].Name, "Center") {
			return &resources[i]
		}
	}
	return nil
}

// findCrisisLifeline prefers the explicit tag, falling back to the "988"
// name match.
func findCrisisLifeline(resources []domain.Resource) *domain.Resource {
	for i := range resources {
		if resources[i].IsCrisisLifeline {
			return &resources[i]
		}
	}
	for i := range resources {
		if strings.Contains(resources[i].Name, "988") {
			return &resources[i]
		}
	}
	return nil
}
