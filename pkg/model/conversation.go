package model

// Stage is the node of the dialogue state machine that the next utterance
// will be interpreted against. Exactly one stage is active per session.
type Stage int

const (
	StageDifficulty Stage = iota
	StageMaxDistance
	StageScenery
	StageRouteType
	StageConfirmSelection
	StageConfirmAmenities
	StageDone
)

// String implements fmt.Stringer for logging.
func (s Stage) String() string {
	switch s {
	case StageDifficulty:
		return "difficulty"
	case StageMaxDistance:
		return "max_distance"
	case StageScenery:
		return "scenery"
	case StageRouteType:
		return "route_type"
	case StageConfirmSelection:
		return "confirm_selection"
	case StageConfirmAmenities:
		return "confirm_amenities"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// Preferences holds the answers collected so far. Fields are populated
// strictly in declaration order as the conversation advances.
type Preferences struct {
	Difficulty  string   `json:"difficulty"`
	MaxDistance *float64 `json:"max_distance"`
	Scenery     string   `json:"scenery"`
	RouteType   string   `json:"route_type"`
}

// ConversationState is the mutable per-session record owned by the
// dialogue controller. It is not safe for concurrent use.
type ConversationState struct {
	Stage           Stage                 `json:"stage"`
	Prefs           Preferences           `json:"prefs"`
	SelectedTrail   *Trail                `json:"selected_trail"`
	SelectionReason *SelectionExplanation `json:"selection_reason"`
}

// NewConversationState returns a fresh session record at the first stage.
func NewConversationState() *ConversationState {
	return &ConversationState{Stage: StageDifficulty}
}

// SelectionSource identifies which path produced a selection.
type SelectionSource string

const (
	SourceModel    SelectionSource = "model"
	SourceFallback SelectionSource = "fallback"
)

// FilterCounts records the candidate-set size after each filtering stage.
type FilterCounts struct {
	AfterConstraints int `json:"after_constraints"`
	AfterScenery     int `json:"after_scenery"`
}

// SelectionExplanation is the immutable record of one selection event.
type SelectionExplanation struct {
	Inputs    Preferences     `json:"inputs"`
	Counts    FilterCounts    `json:"counts"`
	Reasoning string          `json:"reasoning"`
	Source    SelectionSource `json:"source"`
	TrailName string          `json:"trail_name"`
}
