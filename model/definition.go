package model

import (
	"fmt"
)

// Definition represents a workflow definition: a named set of states and
// the actions that connect them. A definition is immutable once accepted
// by the engine; instances only ever reference it.
type Definition struct {

	// Source provides information about the origin of the definition
	Source *Source `json:"source,omitempty" yaml:"source,omitempty"`

	// ID is the globally unique identifier for the definition
	ID string `json:"id" yaml:"id"`

	// Name is a human readable label
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description provides a human-readable description of the definition
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// States holds the definition's states in authoring order
	States []*State `json:"states" yaml:"states"`

	// Actions holds the definition's transitions in authoring order
	Actions []*Action `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// Source describes where a definition was loaded from.
type Source struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// NewDefinition creates a new definition with the given id.
func NewDefinition(id string) *Definition {
	return &Definition{ID: id}
}

// WithName sets the definition name
func (d *Definition) WithName(name string) *Definition {
	d.Name = name
	return d
}

// WithDescription sets the definition description
func (d *Definition) WithDescription(description string) *Definition {
	d.Description = description
	return d
}

// AddState appends a state and returns the definition for chaining.
func (d *Definition) AddState(state *State) *Definition {
	d.States = append(d.States, state)
	return d
}

// AddAction appends an action and returns the definition for chaining.
func (d *Definition) AddAction(action *Action) *Definition {
	d.Actions = append(d.Actions, action)
	return d
}

// NewState creates an enabled state, appends it and returns it so callers
// can tweak Initial/Final flags.
func (d *Definition) NewState(id, name string) *State {
	state := &State{ID: id, Name: name, Enabled: true}
	d.States = append(d.States, state)
	return state
}

// NewAction creates an enabled action connecting fromStates to toState,
// appends it and returns it.
func (d *Definition) NewAction(id string, toState string, fromStates ...string) *Action {
	action := &Action{ID: id, Name: id, Enabled: true, FromStates: fromStates, ToState: toState}
	d.Actions = append(d.Actions, action)
	return action
}

// StateByID returns the state with the supplied id or nil.
func (d *Definition) StateByID(id string) *State {
	for _, state := range d.States {
		if state.ID == id {
			return state
		}
	}
	return nil
}

// ActionByID returns the action with the supplied id or nil.
func (d *Definition) ActionByID(id string) *Action {
	for _, action := range d.Actions {
		if action.ID == id {
			return action
		}
	}
	return nil
}

// InitialStates returns every state flagged as initial, in authoring order.
func (d *Definition) InitialStates() []*State {
	var initial []*State
	for _, state := range d.States {
		if state.Initial {
			initial = append(initial, state)
		}
	}
	return initial
}

// InitialState returns the unique initial state; it errors when zero or
// more than one state carries the initial flag.
func (d *Definition) InitialState() (*State, error) {
	initial := d.InitialStates()
	if len(initial) != 1 {
		return nil, fmt.Errorf("definition %s has %d initial states, expected exactly one", d.ID, len(initial))
	}
	return initial[0], nil
}

// Validate performs a best-effort structural validation of the definition.
// The returned slice is empty when the definition is sound; otherwise it
// contains human-readable error descriptions in a deterministic order:
// the initial-state count check first, then per-action state references
// in authoring order. It deliberately does NOT reject empty fromStates,
// unreachable states or actions leaving a final state.
func (d *Definition) Validate() []error {
	var issues []error

	if initial := d.InitialStates(); len(initial) != 1 {
		issues = append(issues, fmt.Errorf("definition %s must have exactly one initial state, found %d", d.ID, len(initial)))
	}

	known := make(map[string]bool, len(d.States))
	for _, state := range d.States {
		known[state.ID] = true
	}

	for _, action := range d.Actions {
		if !known[action.ToState] {
			issues = append(issues, fmt.Errorf("action %s refers to unknown toState %s", action.ID, action.ToState))
		}
		for _, from := range action.FromStates {
			if !known[from] {
				issues = append(issues, fmt.Errorf("action %s refers to unknown fromState %s", action.ID, from))
			}
		}
	}
	return issues
}

// Clone creates a deep copy of the definition.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	clone := &Definition{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
	if d.Source != nil {
		source := *d.Source
		clone.Source = &source
	}
	if d.States != nil {
		clone.States = make([]*State, len(d.States))
		for i, state := range d.States {
			value := *state
			clone.States[i] = &value
		}
	}
	if d.Actions != nil {
		clone.Actions = make([]*Action, len(d.Actions))
		for i, action := range d.Actions {
			value := *action
			value.FromStates = append([]string(nil), action.FromStates...)
			clone.Actions[i] = &value
		}
	}
	return clone
}
