package engine

import (
	"context"

	"github.com/viant/flowstate/service/event"
)

// Event types published by the engine.
const (
	EventDefinitionRegistered = "definition.registered"
	EventInstanceStarted      = "instance.started"
	EventActionExecuted       = "instance.transitioned"
)

// DefinitionRegistered is published after a definition passes validation
// and is stored.
type DefinitionRegistered struct {
	DefinitionID string `json:"definitionId"`
	Name         string `json:"name,omitempty"`
	States       int    `json:"states"`
	Actions      int    `json:"actions"`
}

// InstanceStarted is published after a new instance is created.
type InstanceStarted struct {
	InstanceID     string `json:"instanceId"`
	DefinitionID   string `json:"definitionId"`
	CurrentStateID string `json:"currentStateId"`
}

// ActionExecuted is published after a successful transition.
type ActionExecuted struct {
	InstanceID   string `json:"instanceId"`
	DefinitionID string `json:"definitionId"`
	ActionID     string `json:"actionId"`
	FromStateID  string `json:"fromStateId"`
	ToStateID    string `json:"toStateId"`
}

// publish sends a typed event when an event service is configured.
// Publishing is best-effort; a queue failure never fails the operation
// that triggered it.
func publish[T any](ctx context.Context, s *Service, eventContext *event.Context, data T) {
	if s.events == nil {
		return
	}
	publisher, err := event.PublisherOf[T](s.events)
	if err != nil {
		return
	}
	_ = publisher.Publish(ctx, event.NewEvent(eventContext, data))
}
