package event

import "time"

// Context carries the workflow coordinates an event relates to.
type Context struct {
	DefinitionID string `json:"definitionId,omitempty"`
	InstanceID   string `json:"instanceId,omitempty"`
	ActionID     string `json:"actionId,omitempty"`
	EventType    string `json:"eventType"`
}

// Event is the generic envelope published on the event queues.
type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
