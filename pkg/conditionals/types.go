package conditionals

// When defines the conditions under which an entity page is eligible to become active.
// All listed conditions must hold. A When with no conditions always holds.
type When struct {
	Vars     map[string]string `json:"vars,omitempty"`      // All specified variables must match
	MinTurns *int              `json:"min_turns,omitempty"` // Turn counter >= this value
}

// GameStateView provides the minimal interface needed to evaluate conditions
// This avoids import cycles with the state package
type GameStateView interface {
	GetVars() map[string]string
	GetTurnCounter() int
}

// IsEmpty reports whether the When carries no conditions at all.
func (w When) IsEmpty() bool {
	return len(w.Vars) == 0 && w.MinTurns == nil
}

// Holds evaluates an optional condition. A nil condition always holds.
func Holds(when *When, gsView GameStateView) bool {
	if when == nil {
		return true
	}
	return EvaluateWhen(*when, gsView)
}

// EvaluateWhen checks if all conditions in a When clause are met
func EvaluateWhen(when When, gsView GameStateView) bool {
	if when.IsEmpty() {
		return true
	}

	// Check variable conditions
	if len(when.Vars) > 0 {
		gameVars := gsView.GetVars()
		if gameVars == nil {
			return false
		}

		for varName, expectedValue := range when.Vars {
			actualValue, exists := gameVars[varName]
			if !exists || actualValue != expectedValue {
				return false
			}
		}
	}

	// Check turn counter minimum
	if when.MinTurns != nil {
		if gsView.GetTurnCounter() < *when.MinTurns {
			return false
		}
	}

	return true
}
