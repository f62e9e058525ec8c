package service

import (
	"context"
	"errors"
	"testing"

	"weup-connect/internal/catalog"
	"weup-connect/internal/domain"
	"weup-connect/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testStream = "weup:resource-access"

// throwingEventLog fails every append, simulating an analytics backend outage.
type throwingEventLog struct {
	calls int
}

func (l *throwingEventLog) Append(context.Context, string, map[string]interface{}) error {
	l.calls++
	return errors.New("event store unavailable")
}

func TestTrackAccess_RecordsEvent(t *testing.T) {
	events := store.NewMemoryEventLog()
	svc := NewResourceService(catalog.Default(), events, testStream, zap.NewNop())

	svc.TrackAccess(context.Background(), testUserID, "crisis-988", "Suicide & Crisis Lifeline 988", domain.ResourceCategoryCrisis)

	logged := events.Events(testStream)
	require.Len(t, logged, 1)
	assert.Equal(t, "crisis-988", logged[0]["resource_id"])
	assert.Equal(t, "Suicide & Crisis Lifeline 988", logged[0]["resource_name"])
	assert.Equal(t, domain.ResourceCategoryCrisis, logged[0]["category"])
	assert.Equal(t, testUserID, logged[0]["user_id"])
	assert.Contains(t, logged[0], "timestamp")
}

func TestTrackAccess_SwallowsStoreFailure(t *testing.T) {
	// Analytics failures must never break the primary user action. The
	// throwing store proves the call neither panics nor surfaces an error.
	events := &throwingEventLog{}
	svc := NewResourceService(catalog.Default(), events, testStream, zap.NewNop())

	assert.NotPanics(t, func() {
		svc.TrackAccess(context.Background(), testUserID, "crisis-988", "Suicide & Crisis Lifeline 988", domain.ResourceCategoryCrisis)
	})
	assert.Equal(t, 1, events.calls)
}

func TestResources_DelegatesForgivingContract(t *testing.T) {
	svc := NewResourceService(catalog.Default(), store.NewMemoryEventLog(), testStream, zap.NewNop())

	resources, err := svc.Resources(context.Background(), "unknown-category")
	require.NoError(t, err)
	assert.Empty(t, resources)
}
