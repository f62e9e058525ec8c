package catalog

import (
	"context"
	"testing"

	"weup-connect/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResources_UnknownCategoryIsEmptyNotError(t *testing.T) {
	c := Default()

	resources, err := c.Resources(context.Background(), "unknown-category")
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestResources_KnownCategories(t *testing.T) {
	c := Default()

	for _, category := range c.Categories() {
		resources, err := c.Resources(context.Background(), category)
		require.NoError(t, err)
		assert.NotEmpty(t, resources, "category %q should have seed entries", category)
		for _, r := range resources {
			assert.Equal(t, category, r.Category)
		}
	}
}

func TestSeedResources_AllActionable(t *testing.T) {
	c := Default()

	for _, category := range c.Categories() {
		resources, _ := c.Resources(context.Background(), category)
		for _, r := range resources {
			assert.True(t, r.Actionable(), "resource %q has no phone, link or address", r.ResourceID)
		}
	}
}

func TestSeedResources_EngineAnchorsTagged(t *testing.T) {
	c := Default()

	crisis, _ := c.Resources(context.Background(), domain.ResourceCategoryCrisis)
	var lifelines int
	for _, r := range crisis {
		if r.IsCrisisLifeline {
			lifelines++
			assert.True(t, r.IsEmergency)
		}
	}
	assert.Equal(t, 1, lifelines, "exactly one crisis-lifeline entry expected")

	housing, _ := c.Resources(context.Background(), domain.ResourceCategoryHousing)
	var havens int
	for _, r := range housing {
		if r.IsSafeHaven {
			havens++
		}
	}
	assert.Equal(t, 1, havens, "exactly one safe-haven entry expected")
}

func TestResources_ReturnsCopy(t *testing.T) {
	c := Default()

	first, _ := c.Resources(context.Background(), domain.ResourceCategoryCrisis)
	first[0].Name = "mutated"

	second, _ := c.Resources(context.Background(), domain.ResourceCategoryCrisis)
	assert.NotEqual(t, "mutated", second[0].Name)
}
