package domain

// Resource community resource entry (static seed data, never mutated at runtime).
// Every resource must be actionable: at least one of Phone/Link/Address is set.
type Resource struct {
	ResourceID  string `json:"resource_id"`
	Category    string `json:"category"` // see ResourceCategory*
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone,omitempty"`
	Link        string `json:"link,omitempty"`
	Address     string `json:"address,omitempty"`
	ActionLabel string `json:"action_label"`
	IsEmergency bool   `json:"is_emergency"`

	// Explicit role tags consumed by the decision engine. The engine falls
	// back to a name-substring match when no resource in a category carries
	// the tag (compatibility with legacy seed data).
	IsCrisisLifeline bool `json:"is_crisis_lifeline,omitempty"`
	IsSafeHaven      bool `json:"is_safe_haven,omitempty"`
}

// Resource categories (closed set)
const (
	ResourceCategoryCrisis    = "crisis"
	ResourceCategoryHousing   = "housing"
	ResourceCategoryEducation = "education"
	ResourceCategoryLegal     = "legal"
)

// Actionable reports whether the resource carries at least one way to act on it.
func (r *Resource) Actionable() bool {
	return r.Phone != "" || r.Link != "" || r.Address != ""
}
