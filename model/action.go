package model

// Action represents a directed, possibly multi-source transition edge
// between states. Callers trigger it by ID against a running instance.
type Action struct {
	// ID is the action identifier, unique within a definition
	ID string `json:"id" yaml:"id"`

	// Name is a human readable display label
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Enabled guards execution; a disabled action can never fire
	Enabled bool `json:"enabled" yaml:"enabled"`

	// FromStates lists the state IDs this action may fire from
	FromStates []string `json:"fromStates,omitempty" yaml:"fromStates,omitempty"`

	// ToState is the single state ID the action leads to
	ToState string `json:"toState" yaml:"toState"`
}

// AppliesFrom reports whether the action may fire from the supplied state.
func (a *Action) AppliesFrom(stateID string) bool {
	for _, candidate := range a.FromStates {
		if candidate == stateID {
			return true
		}
	}
	return false
}
