package flowstate

import (
	"github.com/viant/flowstate/service/dao"
	imemory "github.com/viant/flowstate/service/dao/instance/memory"
)

// InstancesByState builds a query parameter matching instances whose
// current state equals one of the supplied state IDs.
func InstancesByState(stateIDs ...string) *dao.Parameter {
	return dao.NewParameter(imemory.ParamCurrentState, stateIDs...)
}

// InstancesByDefinition builds a query parameter matching instances
// started from one of the supplied definitions.
func InstancesByDefinition(definitionIDs ...string) *dao.Parameter {
	return dao.NewParameter(imemory.ParamDefinitionID, definitionIDs...)
}
