package flowstate

import (
	"context"

	"github.com/viant/flowstate/model"
	"github.com/viant/flowstate/runtime/execution"
	"github.com/viant/flowstate/service/dao"
	"github.com/viant/flowstate/service/dao/definition"
	"github.com/viant/flowstate/service/engine"
	"github.com/viant/flowstate/service/event"
)

// Runtime exposes the assembled workflow engine to host applications.
type Runtime struct {
	engine        *engine.Service
	definitionDAO *definition.Service
	instanceDAO   dao.Service[string, execution.Instance]
	eventService  *event.Service
}

// Engine returns the underlying engine service.
func (r *Runtime) Engine() *engine.Service {
	return r.engine
}

// Events returns the event service, or nil when events are disabled.
func (r *Runtime) Events() *event.Service {
	return r.eventService
}

// Define validates and registers a workflow definition.
func (r *Runtime) Define(ctx context.Context, def *model.Definition) (*model.Definition, error) {
	return r.engine.Define(ctx, def)
}

// LoadDefinition loads a definition document from the supplied URL and
// registers it through the same validation as Define.
func (r *Runtime) LoadDefinition(ctx context.Context, URL string) (*model.Definition, error) {
	def, err := r.definitionDAO.LoadURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	return r.engine.Define(ctx, def)
}

// DecodeYAMLDefinition decodes a definition from YAML without
// registering it.
func (r *Runtime) DecodeYAMLDefinition(data []byte) (*model.Definition, error) {
	return r.definitionDAO.DecodeYAML(data)
}

// StartInstance creates a new instance of the identified definition.
func (r *Runtime) StartInstance(ctx context.Context, definitionID string) (*execution.Instance, error) {
	return r.engine.Start(ctx, definitionID)
}

// ExecuteAction fires an action against an instance.
func (r *Runtime) ExecuteAction(ctx context.Context, instanceID, actionID string) (*execution.Instance, error) {
	return r.engine.Execute(ctx, instanceID, actionID)
}

// Definition returns a registered definition by id.
func (r *Runtime) Definition(ctx context.Context, id string) (*model.Definition, error) {
	return r.engine.Definition(ctx, id)
}

// Instance returns an instance by id.
func (r *Runtime) Instance(ctx context.Context, id string) (*execution.Instance, error) {
	return r.engine.Instance(ctx, id)
}

// Instances lists instances, optionally narrowed by criteria parameters.
func (r *Runtime) Instances(ctx context.Context, parameters ...*dao.Parameter) ([]*execution.Instance, error) {
	return r.engine.Instances(ctx, parameters...)
}
