package catalog

import (
	"context"

	"weup-connect/internal/domain"
)

// Catalog read-only, category-partitioned community resource directory.
// Built once at startup from seed data and never mutated afterwards, so reads
// need no locking. Injected into services instead of living as package state
// to keep tests isolated.
type Catalog struct {
	byCategory map[string][]domain.Resource
}

// New builds a catalog from the given resources, preserving per-category order.
func New(resources []domain.Resource) *Catalog {
	byCategory := make(map[string][]domain.Resource)
	for _, r := range resources {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	return &Catalog{byCategory: byCategory}
}

// Default builds the catalog from the built-in seed data.
func Default() *Catalog {
	return New(seedResources)
}

// Resources returns the ordered resource list for a category. Unknown
// categories yield an empty list, never an error; callers (the decision
// engine included) rely on this forgiving contract.
func (c *Catalog) Resources(_ context.Context, category string) ([]domain.Resource, error) {
	entries := c.byCategory[category]
	out := make([]domain.Resource, len(entries))
	copy(out, entries)
	return out, nil
}

// Categories returns the known category names in their canonical order.
func (c *Catalog) Categories() []string {
	return []string{
		domain.ResourceCategoryCrisis,
		domain.ResourceCategoryHousing,
		domain.ResourceCategoryEducation,
		domain.ResourceCategoryLegal,
	}
}
