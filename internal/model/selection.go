package model

// Button group types. These mirror the structured component identifiers used
// by the display layer ({"type": ..., "index": ...}); the index names the
// member (a fund code or a duration token).
const (
	GroupFund     = "fund-button"
	GroupDuration = "duration-button"
)

// ActiveButtonClass is the class-name marker the display layer places on the
// currently active member of a button group. At most one member per group
// carries it at any time.
const ActiveButtonClass = "dynamic-button-active"

// ButtonID identifies one member of a button group.
type ButtonID struct {
	Type  string `json:"type"`
	Index string `json:"index"`
}

// TriggerEvent names the button that fired the current request. It is parsed
// from structured fields only, never decoded from evaluated text.
type TriggerEvent struct {
	Type  string `json:"type"`
	Index string `json:"index"`
}

// GroupState is the snapshot of one button group as supplied by the display
// layer: per-member click counts, identifiers, and class-name markers. The
// three slices are parallel.
type GroupState struct {
	Clicks     []int      `json:"nClicks"`
	IDs        []ButtonID `json:"ids"`
	ClassNames []string   `json:"classNames"`
}

// ActiveIndex returns the position of the member currently flagged active,
// or -1 if no member carries the active marker.
func (g GroupState) ActiveIndex() int {
	for i, class := range g.ClassNames {
		if class == ActiveButtonClass {
			return i
		}
	}
	return -1
}

// SelectionState is the single coherent (fund, duration) pair resolved from
// the two button groups. Transient: reconstructed on every request.
type SelectionState struct {
	Fund     string   `json:"fund"`
	Duration Duration `json:"duration"`
}
