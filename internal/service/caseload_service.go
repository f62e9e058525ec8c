package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"weup-connect/internal/domain"
	"weup-connect/internal/repository"
	"weup-connect/internal/store"

	"go.uber.org/zap"
)

// rosterCacheTTL short TTL: the roster tolerates slightly stale scores but
// must pick up check-ins within a minute.
const rosterCacheTTL = 30 * time.Second

// CaseloadService turns a case manager's mentee roster into triage order via
// the strength score. The score measures engagement, never risk or deficit.
type CaseloadService struct {
	repo   repository.MenteesRepo
	kv     store.KV // optional roster snapshot cache; nil disables caching
	logger *zap.Logger
}

func NewCaseloadService(repo repository.MenteesRepo, kv store.KV, logger *zap.Logger) *CaseloadService {
	return &CaseloadService{repo: repo, kv: kv, logger: logger}
}

// StrengthScore converts raw engagement signals into a 0-100 engagement
// score. Additive and order-independent, then clamped. All recency and
// consistency boundaries are strict (<).
func StrengthScore(resourcesUsed, daysSinceLastContact, checkInsMissed int, status string) int {
	score := 20 // base
	score += resourcesUsed * 5

	switch {
	case daysSinceLastContact < 3:
		score += 15
	case daysSinceLastContact < 7:
		score += 10
	case daysSinceLastContact < 14:
		score += 5
	}

	switch {
	case checkInsMissed == 0:
		score += 20
	case checkInsMissed < 3:
		score += 10
	}

	switch status {
	case domain.MenteeStatusOnTrack:
		score += 15
	case domain.MenteeStatusStable:
		score += 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RosterEntry a mentee with their computed strength score.
type RosterEntry struct {
	domain.Mentee
	StrengthScore int `json:"strength_score"`
}

// Roster lists the case manager's mentees with scores, weakest engagement
// first (triage order), ties broken by name. Served from the KV snapshot
// when fresh.
func (s *CaseloadService) Roster(ctx context.Context, userID string, now time.Time) ([]RosterEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	cacheKey := "weup:caseload:" + userID
	if s.kv != nil {
		if cached, err := s.kv.Get(ctx, cacheKey); err == nil {
			var entries []RosterEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		} else if err != store.ErrMiss {
			s.logger.Warn("Roster cache read failed", zap.Error(err))
		}
	}

	mentees, err := s.repo.ListMentees(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentees: %w", err)
	}

	entries := make([]RosterEntry, 0, len(mentees))
	for _, m := range mentees {
		entries = append(entries, RosterEntry{
			Mentee:        m,
			StrengthScore: StrengthScore(m.ResourcesUsed, daysSince(m.LastContact, now), m.CheckInsMissed, m.Status),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].StrengthScore != entries[j].StrengthScore {
			return entries[i].StrengthScore < entries[j].StrengthScore
		}
		return entries[i].Name < entries[j].Name
	})

	if s.kv != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.kv.Set(ctx, cacheKey, string(data), rosterCacheTTL); err != nil {
				s.logger.Warn("Roster cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}

// daysSince whole days between then and now; nil floors at the Unix epoch
// (never contacted reads as maximally stale).
func daysSince(then *time.Time, now time.Time) int {
	t := time.Unix(0, 0).UTC()
	if then != nil {
		t = *then
	}
	return int(now.Sub(t).Hours() / 24)
}
