package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/viant/flowstate/internal/clock"
	"github.com/viant/flowstate/internal/idgen"
	"github.com/viant/flowstate/model"
	"github.com/viant/flowstate/runtime/execution"
	"github.com/viant/flowstate/service/dao"
	"github.com/viant/flowstate/service/dao/definition"
	"github.com/viant/flowstate/service/event"
	"github.com/viant/flowstate/tracing"
)

// Service enforces all workflow semantics: definition validation on
// registration and transition guards on execution. The DAOs underneath
// stay dumb; nothing is written until every check has passed, so a
// failed operation leaves the store untouched.
type Service struct {
	definitions *definition.Service
	instances   dao.Service[string, execution.Instance]
	events      *event.Service

	// mu serialises read-validate-write sequences. Registration needs the
	// duplicate check and save to be one step; execution needs the guard
	// evaluation and state write to be one step so that racing calls on
	// the same instance cannot interleave. A single lock is deliberate -
	// operations are bounded by in-memory map access and contention stays
	// negligible.
	mu sync.Mutex
}

// New creates an engine over the supplied DAOs.
func New(definitions *definition.Service, instances dao.Service[string, execution.Instance], options ...Option) *Service {
	ret := &Service{definitions: definitions, instances: instances}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Define validates and stores a workflow definition. Validation order is
// deterministic: duplicate id, then initial state count, then per-action
// state references in authoring order, short-circuiting at the first
// failure. A definition without an id is assigned a generated one.
func (s *Service) Define(ctx context.Context, def *model.Definition) (ret *model.Definition, err error) {
	ctx, span := tracing.StartSpan(ctx, "engine.define", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()

	if def == nil {
		return nil, fmt.Errorf("definition was nil")
	}
	if def.ID == "" {
		def.ID = idgen.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.definitions.Exists(ctx, def.ID) {
		return nil, NewError(KindDuplicateDefinition, "definition %s already exists", def.ID)
	}
	if initial := def.InitialStates(); len(initial) != 1 {
		return nil, NewError(KindInvalidInitialState, "definition %s must have exactly one initial state, found %d", def.ID, len(initial))
	}
	known := make(map[string]bool, len(def.States))
	for _, state := range def.States {
		known[state.ID] = true
	}
	for _, action := range def.Actions {
		if !known[action.ToState] {
			return nil, NewError(KindUnknownStateReference, "action %s refers to unknown state %s", action.ID, action.ToState)
		}
		for _, from := range action.FromStates {
			if !known[from] {
				return nil, NewError(KindUnknownStateReference, "action %s refers to unknown state %s", action.ID, from)
			}
		}
	}

	if err = s.definitions.Save(ctx, def); err != nil {
		return nil, err
	}
	publish(ctx, s, &event.Context{DefinitionID: def.ID, EventType: EventDefinitionRegistered}, DefinitionRegistered{
		DefinitionID: def.ID,
		Name:         def.Name,
		States:       len(def.States),
		Actions:      len(def.Actions),
	})
	return def, nil
}

// Start creates a new instance of the identified definition, positioned
// at its initial state with empty history. Repeated calls always yield
// distinct instances.
func (s *Service) Start(ctx context.Context, definitionID string) (ret *execution.Instance, err error) {
	ctx, span := tracing.StartSpan(ctx, "engine.start", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()

	def, err := s.definitions.Load(ctx, definitionID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, NewError(KindDefinitionNotFound, "definition %s not found", definitionID)
		}
		return nil, err
	}
	initial, err := def.InitialState()
	if err != nil {
		// definitions only enter the store through Define, which enforces
		// the invariant; reaching this is an implementation bug
		return nil, err
	}
	instance := execution.NewInstance(idgen.New(), def, initial.ID, clock.Now())
	if err = s.instances.Save(ctx, instance); err != nil {
		return nil, err
	}
	publish(ctx, s, &event.Context{DefinitionID: def.ID, InstanceID: instance.ID, EventType: EventInstanceStarted}, InstanceStarted{
		InstanceID:     instance.ID,
		DefinitionID:   def.ID,
		CurrentStateID: instance.CurrentState(),
	})
	return instance, nil
}

// Execute fires the identified action against an instance. The guards
// run in a fixed order - instance exists, current state not final,
// action exists, action enabled, current state among the action's from
// states - and every violation yields its own kind. On success the
// instance moves to the action's target state and one history entry is
// appended; on failure the instance is left untouched. The whole
// read-validate-write sequence runs under the engine lock so concurrent
// calls on one instance serialise and history reflects the true order
// of fired actions.
func (s *Service) Execute(ctx context.Context, instanceID, actionID string) (ret *execution.Instance, err error) {
	ctx, span := tracing.StartSpan(ctx, "engine.execute", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	instance, err := s.instances.Load(ctx, instanceID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, NewError(KindInstanceNotFound, "instance %s not found", instanceID)
		}
		return nil, err
	}
	def := instance.Definition
	if def == nil {
		if def, err = s.definitions.Load(ctx, instance.DefinitionID); err != nil {
			// an instance referencing a missing definition violates the
			// lifecycle invariants; not a recoverable caller error
			return nil, fmt.Errorf("instance %s references unknown definition %s", instanceID, instance.DefinitionID)
		}
	}

	currentID := instance.CurrentState()
	current := def.StateByID(currentID)
	if current == nil {
		return nil, fmt.Errorf("instance %s is in unknown state %s", instanceID, currentID)
	}
	if current.Final {
		return nil, NewError(KindInstanceAlreadyFinal, "instance %s is in final state %s", instanceID, currentID)
	}
	action := def.ActionByID(actionID)
	if action == nil {
		return nil, NewError(KindActionNotFound, "action %s not found in definition %s", actionID, def.ID)
	}
	if !action.Enabled {
		return nil, NewError(KindActionDisabled, "action %s is disabled", actionID)
	}
	if !action.AppliesFrom(currentID) {
		return nil, NewError(KindActionNotApplicable, "action %s cannot fire from state %s", actionID, currentID)
	}

	instance.Apply(actionID, action.ToState, clock.Now())
	if err = s.instances.Save(ctx, instance); err != nil {
		return nil, err
	}
	publish(ctx, s, &event.Context{DefinitionID: def.ID, InstanceID: instance.ID, ActionID: actionID, EventType: EventActionExecuted}, ActionExecuted{
		InstanceID:   instance.ID,
		DefinitionID: def.ID,
		ActionID:     actionID,
		FromStateID:  currentID,
		ToStateID:    action.ToState,
	})
	return instance, nil
}

// Definition returns a stored definition by id.
func (s *Service) Definition(ctx context.Context, id string) (*model.Definition, error) {
	def, err := s.definitions.Load(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, NewError(KindDefinitionNotFound, "definition %s not found", id)
		}
		return nil, err
	}
	return def, nil
}

// Definitions lists all stored definitions.
func (s *Service) Definitions(ctx context.Context) ([]*model.Definition, error) {
	return s.definitions.List(ctx)
}

// Instance returns a stored instance by id.
func (s *Service) Instance(ctx context.Context, id string) (*execution.Instance, error) {
	instance, err := s.instances.Load(ctx, id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, NewError(KindInstanceNotFound, "instance %s not found", id)
		}
		return nil, err
	}
	return instance, nil
}

// Instances lists stored instances, optionally narrowed by criteria
// parameters (current state, definition id).
func (s *Service) Instances(ctx context.Context, parameters ...*dao.Parameter) ([]*execution.Instance, error) {
	return s.instances.List(ctx, parameters...)
}
