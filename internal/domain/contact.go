package domain

import "time"

// Contact support contact domain model (maps to the contacts table).
// A user's lifeline roster: mentor, parole officer, family, peer support, etc.
type Contact struct {
	// Primary key
	ContactID string `db:"contact_id" json:"contact_id"` // UUID, PRIMARY KEY

	// Owner
	UserID string `db:"user_id" json:"user_id"` // UUID, NOT NULL

	// Identity
	Name  string `db:"contact_name" json:"name"`     // VARCHAR(100), NOT NULL
	Role  string `db:"role" json:"role"`             // VARCHAR(30), NOT NULL (see ContactRole*)
	Phone string `db:"phone" json:"phone"`           // VARCHAR(25), NOT NULL
	Email string `db:"email" json:"email,omitempty"` // VARCHAR(255), nullable

	// IsPrimary marks the user's single designated lifeline.
	// Exclusivity is enforced by the repository SetLifeline operation,
	// not by a DB constraint.
	IsPrimary bool `db:"is_primary" json:"is_primary"` // BOOLEAN, NOT NULL, DEFAULT FALSE

	// Outreach cadence
	LastContact *time.Time `db:"last_contact" json:"last_contact,omitempty"` // TIMESTAMPTZ, nullable (nil = never contacted)
	Frequency   string     `db:"frequency" json:"frequency,omitempty"`       // VARCHAR(20) (see Frequency*), empty treated as monthly

	// Classification
	GoalTag string   `db:"goal_tag" json:"goal_tag,omitempty"` // VARCHAR(20), nullable (legal/employment/education/health/housing/financial/general)
	Tags    []string `db:"tags" json:"tags,omitempty"`         // JSONB, free-text tags

	// Provenance
	OriginNote string `db:"origin_note" json:"origin_note,omitempty"` // TEXT, nullable (how this contact entered the roster)
	Verified   bool   `db:"verified" json:"verified"`                 // BOOLEAN, DEFAULT FALSE
}

// Contact roles
const (
	ContactRoleMentor        = "Mentor"
	ContactRoleParoleOfficer = "Parole Officer"
	ContactRoleFamily        = "Family"
	ContactRolePeerSupport   = "Peer Support"
	ContactRoleTherapist     = "Therapist"
	ContactRoleEmployer      = "Employer"
)

// Outreach cadences
const (
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
	FrequencyOnDemand  = "on-demand"
)

// IsValidRole reports whether role is one of the known contact roles.
func IsValidRole(role string) bool {
	switch role {
	case ContactRoleMentor, ContactRoleParoleOfficer, ContactRoleFamily,
		ContactRolePeerSupport, ContactRoleTherapist, ContactRoleEmployer:
		return true
	}
	return false
}

// cadenceThresholdDays maps a cadence to the number of days after which a
// contact counts as overdue. Unknown or empty cadence falls back to monthly.
var cadenceThresholdDays = map[string]int{
	FrequencyWeekly:    7,
	FrequencyMonthly:   30,
	FrequencyQuarterly: 90,
	FrequencyYearly:    365,
}

const defaultThresholdDays = 30

// Overdue computes the outreach status of the contact at the given time.
// A contact that was never contacted is floored at the Unix epoch, so it is
// maximally overdue and always surfaces first when sorted by daysOverdue.
// The boundary is strict: exactly thresholdDays since last contact is not
// overdue yet.
func (c *Contact) Overdue(now time.Time) (daysOverdue int, overdue bool) {
	last := time.Unix(0, 0).UTC()
	if c.LastContact != nil {
		last = *c.LastContact
	}
	daysSince := int(now.Sub(last).Hours() / 24)

	threshold, ok := cadenceThresholdDays[c.Frequency]
	if !ok {
		threshold = defaultThresholdDays
	}
	if daysSince <= threshold {
		return 0, false
	}
	return daysSince - threshold, true
}
