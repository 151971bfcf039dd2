package pipeline

// State tracks where a run is in its lifecycle. Transitions are strictly
// forward; the terminal states are StateAssembled and StateHalted.
type State string

const (
	StatePending    State = "PENDING"
	StateFetching   State = "FETCHING"
	StateAnalyzing  State = "ANALYZING"
	StateGenerating State = "GENERATING"
	StateValidating State = "VALIDATING"
	StateAssembled  State = "ASSEMBLED"
	StateHalted     State = "HALTED"
)

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateAssembled || s == StateHalted
}
