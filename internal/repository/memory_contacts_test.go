package repository

import (
	"context"
	"testing"

	"weup-connect/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "00000000-0000-0000-0000-000000000042"

func TestMemoryContacts_UserIsolation(t *testing.T) {
	repo := NewMemoryContactsRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateContact(ctx, &domain.Contact{
		ContactID: "c1", UserID: testUserID, Name: "Sarah", Phone: "555-0001",
	}))

	mine, err := repo.ListContacts(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := repo.ListContacts(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestMemoryContacts_InsertionOrderPreserved(t *testing.T) {
	repo := NewMemoryContactsRepo()
	ctx := context.Background()

	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, repo.CreateContact(ctx, &domain.Contact{
			ContactID: id, UserID: testUserID, Name: id, Phone: "555",
		}))
	}

	contacts, err := repo.ListContacts(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "c1", contacts[0].ContactID)
	assert.Equal(t, "c2", contacts[1].ContactID)
	assert.Equal(t, "c3", contacts[2].ContactID)
}

func TestMemoryContacts_SetLifelineUnknownID(t *testing.T) {
	repo := NewMemoryContactsRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateContact(ctx, &domain.Contact{
		ContactID: "c1", UserID: testUserID, Name: "Sarah", Phone: "555", IsPrimary: true,
	}))

	err := repo.SetLifeline(ctx, testUserID, "nope")
	assert.ErrorIs(t, err, ErrContactNotFound)

	// Existing lifeline untouched on failure.
	contacts, _ := repo.ListContacts(ctx, testUserID)
	assert.True(t, contacts[0].IsPrimary)
}

func TestMemoryContacts_DeleteMissingIsNoOp(t *testing.T) {
	repo := NewMemoryContactsRepo()

	removed, err := repo.DeleteContact(context.Background(), testUserID, "nope")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryContacts_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryContactsRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateContact(ctx, &domain.Contact{
		ContactID: "c1", UserID: testUserID, Name: "Sarah", Phone: "555",
	}))

	first, _ := repo.ListContacts(ctx, testUserID)
	first[0].Name = "mutated"

	second, _ := repo.ListContacts(ctx, testUserID)
	assert.Equal(t, "Sarah", second[0].Name)
}
