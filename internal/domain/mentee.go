package domain

import "time"

// Mentee caseload roster entry (maps to the mentees table).
// Raw engagement signals live here; the 0-100 strength score is computed by
// the caseload service, never stored.
type Mentee struct {
	// Primary key
	MenteeID string `db:"mentee_id" json:"mentee_id"` // UUID, PRIMARY KEY

	// Owning case manager
	UserID string `db:"user_id" json:"user_id"` // UUID, NOT NULL

	Name   string `db:"mentee_name" json:"name"` // VARCHAR(100), NOT NULL
	Status string `db:"status" json:"status"`    // VARCHAR(30) (see MenteeStatus*)

	// Engagement signals
	ResourcesUsed  int        `db:"resources_used" json:"resources_used"`       // INT, NOT NULL, DEFAULT 0
	CheckInsMissed int        `db:"check_ins_missed" json:"check_ins_missed"`   // INT, NOT NULL, DEFAULT 0
	LastContact    *time.Time `db:"last_contact" json:"last_contact,omitempty"` // TIMESTAMPTZ, nullable
}

// Mentee statuses
const (
	MenteeStatusOnTrack      = "On Track"
	MenteeStatusStable       = "Stable"
	MenteeStatusNeedsSupport = "Needs Support"
)
