package dto

// StartInstanceRequest identifies the definition to instantiate.
type StartInstanceRequest struct {
	DefinitionID string `json:"definitionId" binding:"required"`
}

// InstanceListQuery narrows instance listings.
type InstanceListQuery struct {
	CurrentState string `form:"currentState"`
	DefinitionID string `form:"definitionId"`
}
