package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"weup-connect/internal/catalog"
	"weup-connect/internal/domain"
	"weup-connect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID = "00000000-0000-0000-0000-000000000042"

func newDecisionFixture(t *testing.T, contacts []domain.Contact, resources []domain.Resource) *DecisionService {
	t.Helper()
	repo := repository.NewMemoryContactsRepo()
	require.NoError(t, repo.CreateContacts(context.Background(), contacts))
	return NewDecisionService(repo, catalog.New(resources), zap.NewNop())
}

func allEmotions() []domain.Emotion {
	return []domain.Emotion{
		domain.EmotionAnger,
		domain.EmotionAnxiety,
		domain.EmotionUrge,
		domain.EmotionConflict,
		domain.EmotionDepression,
	}
}

func TestNextBestAction_SortedAscendingForAllEmotions(t *testing.T) {
	svc := newDecisionFixture(t,
		[]domain.Contact{{ContactID: "p1", UserID: testUserID, Name: "Sarah", Phone: "555-0001", IsPrimary: true}},
		[]domain.Resource{
			{ResourceID: "c2", Category: domain.ResourceCategoryCrisis, Name: "Suicide & Crisis Lifeline 988", Phone: "988", IsCrisisLifeline: true},
			{ResourceID: "h1", Category: domain.ResourceCategoryHousing, Name: "Project HOME Engagement Center", Address: "1515 Fairmount Ave", IsSafeHaven: true},
		},
	)

	for _, emotion := range allEmotions() {
		recs, err := svc.NextBestAction(context.Background(), testUserID, emotion)
		require.NoError(t, err, "emotion %q", emotion)
		assert.True(t, sort.SliceIsSorted(recs, func(i, j int) bool {
			return recs[i].Priority < recs[j].Priority
		}), "emotion %q not sorted: %+v", emotion, recs)
	}
}

func TestNextBestAction_PrimaryContactAtPriorityZero(t *testing.T) {
	svc := newDecisionFixture(t,
		[]domain.Contact{
			{ContactID: "c-a", UserID: testUserID, Name: "Marcus", Phone: "555-0002"},
			{ContactID: "c-b", UserID: testUserID, Name: "Sarah", Phone: "555-0001", IsPrimary: true},
		},
		nil,
	)

	for _, emotion := range allEmotions() {
		recs, err := svc.NextBestAction(context.Background(), testUserID, emotion)
		require.NoError(t, err)

		var contactRecs []domain.ActionRecommendation
		for _, rec := range recs {
			if rec.Type == domain.ActionTypeContact {
				contactRecs = append(contactRecs, rec)
			}
		}
		require.Len(t, contactRecs, 1, "emotion %q", emotion)
		assert.Equal(t, "c-b", contactRecs[0].TargetID)
		assert.Equal(t, 0, contactRecs[0].Priority)
	}
}

func TestNextBestAction_NoPrimaryContributesNothing(t *testing.T) {
	svc := newDecisionFixture(t,
		[]domain.Contact{{ContactID: "c-a", UserID: testUserID, Name: "Marcus", Phone: "555-0002"}},
		nil,
	)

	recs, err := svc.NextBestAction(context.Background(), testUserID, domain.EmotionAnger)
	require.NoError(t, err)
	for _, rec := range recs {
		assert.NotEqual(t, domain.ActionTypeContact, rec.Type)
	}
	// Universal actions still present.
	assert.NotEmpty(t, recs)
}

func TestNextBestAction_CrisisLifelineOnlyForUrgeAndDepression(t *testing.T) {
	svc := newDecisionFixture(t, nil,
		[]domain.Resource{
			{ResourceID: "c2", Category: domain.ResourceCategoryCrisis, Name: "Suicide & Crisis Lifeline 988", Phone: "988", IsCrisisLifeline: true},
		},
	)

	escalated := map[domain.Emotion]bool{
		domain.EmotionUrge:       true,
		domain.EmotionDepression: true,
	}
	for _, emotion := range allEmotions() {
		recs, err := svc.NextBestAction(context.Background(), testUserID, emotion)
		require.NoError(t, err)

		found := false
		for _, rec := range recs {
			if rec.Type == domain.ActionTypeResource && rec.TargetID == "c2" {
				found = true
				assert.Equal(t, 0, rec.Priority)
			}
		}
		assert.Equal(t, escalated[emotion], found, "emotion %q", emotion)
	}
}

func TestNextBestAction_SafeHavenForDepressionAndAnxiety(t *testing.T) {
	svc := newDecisionFixture(t, nil,
		[]domain.Resource{
			{ResourceID: "h1", Category: domain.ResourceCategoryHousing, Name: "Project HOME Engagement Center", Address: "1515 Fairmount Ave", IsSafeHaven: true},
		},
	)

	escalated := map[domain.Emotion]bool{
		domain.EmotionDepression: true,
		domain.EmotionAnxiety:    true,
	}
	for _, emotion := range allEmotions() {
		recs, err := svc.NextBestAction(context.Background(), testUserID, emotion)
		require.NoError(t, err)

		found := false
		for _, rec := range recs {
			if rec.Type == domain.ActionTypeResource && rec.TargetID == "h1" {
				found = true
				assert.Equal(t, 3, rec.Priority)
				assert.Equal(t, "Go to Project HOME Engagement Center", rec.Label)
			}
		}
		assert.Equal(t, escalated[emotion], found, "emotion %q", emotion)
	}
}

func TestNextBestAction_SubstringFallbackWithoutTags(t *testing.T) {
	// Legacy seed data: no engine tags, matching falls back to name
	// substrings.
	svc := newDecisionFixture(t, nil,
		[]domain.Resource{
			{ResourceID: "c-other", Category: domain.ResourceCategoryCrisis, Name: "Crisis Text Line", Phone: "741741"},
			{ResourceID: "c2", Category: domain.ResourceCategoryCrisis, Name: "Suicide & Crisis Lifeline 988", Phone: "988"},
			{ResourceID: "h2", Category: domain.ResourceCategoryHousing, Name: "Downtown Engagement Center", Address: "somewhere"},
		},
	)

	recs, err := svc.NextBestAction(context.Background(), testUserID, domain.EmotionDepression)
	require.NoError(t, err)

	targets := map[string]bool{}
	for _, rec := range recs {
		targets[rec.TargetID] = true
	}
	assert.True(t, targets["c2"], "988 lifeline should be found by name substring")
	assert.True(t, targets["h2"], "safe haven should be found by Center substring")
}

func TestNextBestAction_MissingAnchorsContributeNothing(t *testing.T) {
	// Neither a 988 entry nor a safe haven exists: steps 3 and 4 silently
	// contribute nothing.
	svc := newDecisionFixture(t, nil,
		[]domain.Resource{
			{ResourceID: "c-other", Category: domain.ResourceCategoryCrisis, Name: "Crisis Text Line", Phone: "741741"},
		},
	)

	recs, err := svc.NextBestAction(context.Background(), testUserID, domain.EmotionDepression)
	require.NoError(t, err)
	for _, rec := range recs {
		assert.Equal(t, domain.ActionTypeActivity, rec.Type)
	}
}

func TestNextBestAction_DepressionEndToEnd(t *testing.T) {
	svc := newDecisionFixture(t,
		[]domain.Contact{{ContactID: "p1", UserID: testUserID, Name: "Sarah", Phone: "555-0001", IsPrimary: true}},
		[]domain.Resource{
			{ResourceID: "c2", Category: domain.ResourceCategoryCrisis, Name: "Suicide & Crisis Lifeline 988", Phone: "988", IsCrisisLifeline: true},
		},
	)

	recs, err := svc.NextBestAction(context.Background(), testUserID, domain.EmotionDepression)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// First two entries are the lifeline contact and the 988 resource, both
	// at priority 0; order between them is not part of the contract.
	firstTwo := map[string]domain.ActionRecommendation{
		recs[0].TargetID: recs[0],
		recs[1].TargetID: recs[1],
	}
	require.Contains(t, firstTwo, "p1")
	require.Contains(t, firstTwo, "c2")
	assert.Equal(t, 0, firstTwo["p1"].Priority)
	assert.Equal(t, domain.ActionTypeContact, firstTwo["p1"].Type)
	assert.Equal(t, 0, firstTwo["c2"].Priority)
	assert.Equal(t, domain.ActionTypeResource, firstTwo["c2"].Type)

	assert.Equal(t, "Change Your State", recs[2].Label)
	assert.Equal(t, 2, recs[2].Priority)
	assert.Equal(t, domain.ActionTypeActivity, recs[2].Type)
}

func TestNextBestAction_UnknownEmotionIsForgiving(t *testing.T) {
	svc := newDecisionFixture(t,
		[]domain.Contact{{ContactID: "p1", UserID: testUserID, Name: "Sarah", Phone: "555-0001", IsPrimary: true}},
		nil,
	)

	recs, err := svc.NextBestAction(context.Background(), testUserID, domain.Emotion("elation"))
	require.NoError(t, err)
	// Empty universal seed, but the lifeline contact still surfaces.
	require.Len(t, recs, 1)
	assert.Equal(t, domain.ActionTypeContact, recs[0].Type)
}

// failingResourceSource simulates a resource store outage.
type failingResourceSource struct{}

func (failingResourceSource) Resources(context.Context, string) ([]domain.Resource, error) {
	return nil, errors.New("resource store down")
}

func TestNextBestAction_FetchFailurePropagates(t *testing.T) {
	repo := repository.NewMemoryContactsRepo()
	svc := NewDecisionService(repo, failingResourceSource{}, zap.NewNop())

	// Depression needs both housing and crisis fetches; the failure must
	// reject the whole call, no partial list.
	recs, err := svc.NextBestAction(context.Background(), testUserID, domain.EmotionDepression)
	require.Error(t, err)
	assert.Nil(t, recs)

	// Anger touches no resources, so the same source cannot fail it.
	recs, err = svc.NextBestAction(context.Background(), testUserID, domain.EmotionAnger)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
}
