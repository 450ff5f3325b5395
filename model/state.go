package model

// State represents a single node in a workflow definition graph.
type State struct {
	// ID is the state identifier, unique within a definition
	ID string `json:"id" yaml:"id"`

	// Name is a human readable display label
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Initial marks the state an instance starts in; exactly one state
	// per definition may carry it
	Initial bool `json:"initial,omitempty" yaml:"initial,omitempty"`

	// Final marks a terminal state; no action fires from a final state
	Final bool `json:"final,omitempty" yaml:"final,omitempty"`

	// Enabled reflects whether the state is active in the definition
	Enabled bool `json:"enabled" yaml:"enabled"`
}
