package spin

// Phase is the spin lifecycle state. Transitions are validated so that
// cancellation and reset logic cannot run from an invalid state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBuilding
	PhaseSpinning
	PhaseLanded
	PhaseResult
)

// String returns the phase name for diagnostics.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBuilding:
		return "building"
	case PhaseSpinning:
		return "spinning"
	case PhaseLanded:
		return "landed"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// CanTransition checks if a phase transition is valid. Reset to Idle is
// allowed from any phase: closing the host view mid-flight is a normal
// lifecycle transition, not an error.
func CanTransition(from, to Phase) bool {
	if to == PhaseIdle {
		return true
	}

	validTransitions := map[Phase][]Phase{
		PhaseIdle:     {PhaseBuilding},
		PhaseBuilding: {PhaseSpinning},
		PhaseSpinning: {PhaseLanded},
		PhaseLanded:   {PhaseResult},
	}

	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
