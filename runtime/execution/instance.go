package execution

import (
	"sync"
	"time"

	"github.com/viant/flowstate/model"
)

// HistoryEntry records a single successfully executed action on an
// instance together with the time it fired.
type HistoryEntry struct {
	ActionID string    `json:"actionId" yaml:"actionId"`
	At       time.Time `json:"at" yaml:"at"`
}

// Instance represents one running execution of a workflow definition. It
// keeps a mutable pointer into the definition's state set plus an
// append-only history of fired actions. All mutators are guarded so that
// concurrent transitions on the same instance serialise.
type Instance struct {
	ID             string          `json:"id"`
	DefinitionID   string          `json:"definitionId"`
	CurrentStateID string          `json:"currentStateId"`
	History        []HistoryEntry  `json:"history"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	Definition     *model.Definition `json:"-"`
	mu             sync.RWMutex
}

// NewInstance creates an instance positioned at the supplied initial state
// with empty history.
func NewInstance(id string, definition *model.Definition, initialStateID string, now time.Time) *Instance {
	return &Instance{
		ID:             id,
		DefinitionID:   definition.ID,
		CurrentStateID: initialStateID,
		History:        make([]HistoryEntry, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
		Definition:     definition,
	}
}

// CurrentState returns the instance's current state id.
func (i *Instance) CurrentState() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.CurrentStateID
}

// Apply moves the instance to toState and appends a history entry for
// actionID. Guard evaluation happens in the engine; Apply only performs
// the mutation as one critical section.
func (i *Instance) Apply(actionID, toState string, at time.Time) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.CurrentStateID = toState
	i.History = append(i.History, HistoryEntry{ActionID: actionID, At: at})
	i.UpdatedAt = at
}

// CopyFrom updates exported, mutex-independent fields from src. The
// sync.RWMutex is intentionally skipped as copying it would corrupt
// internal state.
func (i *Instance) CopyFrom(src any) {
	other, ok := src.(*Instance)
	if !ok || other == nil || i == other {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.CurrentStateID = other.CurrentStateID
	i.History = other.History
	i.UpdatedAt = other.UpdatedAt
	// DefinitionID and Definition are immutable references, no copy.
}

// Clone creates a deep copy suitable for race-free reads outside the
// owning store. The Definition pointer is shared because definitions are
// immutable after acceptance.
func (i *Instance) Clone() *Instance {
	if i == nil {
		return nil
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	out := &Instance{
		ID:             i.ID,
		DefinitionID:   i.DefinitionID,
		CurrentStateID: i.CurrentStateID,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
		Definition:     i.Definition,
	}
	out.History = make([]HistoryEntry, len(i.History))
	copy(out.History, i.History)
	return out
}
