package domain

// ActionRecommendation a single entry in the engine's ranked next-best-action
// list. Ephemeral: built fresh on every invocation, never persisted.
type ActionRecommendation struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // see ActionType*
	Label       string `json:"label"`
	Description string `json:"description"`
	ActionLabel string `json:"action_label"` // button text
	TargetID    string `json:"target_id,omitempty"`
	// Priority orders the list ascending; 0 is reserved for "do this first".
	// Ties keep insertion order (stable sort).
	Priority int `json:"priority"`
}

// Recommendation types
const (
	ActionTypeContact  = "contact"
	ActionTypeResource = "resource"
	ActionTypeActivity = "activity"
)

// Emotion the closed set of reported emotional states driving the engine.
type Emotion string

const (
	EmotionAnger      Emotion = "anger"
	EmotionAnxiety    Emotion = "anxiety"
	EmotionUrge       Emotion = "urge"
	EmotionConflict   Emotion = "conflict"
	EmotionDepression Emotion = "depression"
)

// IsValid reports whether e is one of the known emotional states.
func (e Emotion) IsValid() bool {
	switch e {
	case EmotionAnger, EmotionAnxiety, EmotionUrge, EmotionConflict, EmotionDepression:
		return true
	}
	return false
}
