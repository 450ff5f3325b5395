package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viant/flowstate/runtime/execution"
	"github.com/viant/flowstate/service/dao"
	imemory "github.com/viant/flowstate/service/dao/instance/memory"
	"github.com/viant/flowstate/service/engine"
	"github.com/viant/flowstate/service/gateway/dto"
)

// InstanceHandler exposes workflow instance endpoints.
type InstanceHandler struct {
	engine *engine.Service
}

// NewInstanceHandler creates an InstanceHandler.
func NewInstanceHandler(eng *engine.Service) *InstanceHandler {
	return &InstanceHandler{engine: eng}
}

// Start creates a new instance of a definition.
// POST /v1/instances
func (h *InstanceHandler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	var request dto.StartInstanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	instance, err := h.engine.Start(ctx, request.DefinitionID)
	if err != nil {
		c.JSON(StatusOf(err), dto.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(instance.Clone()))
}

// Get returns an instance including its full history.
// GET /v1/instances/:id
func (h *InstanceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	instance, err := h.engine.Instance(ctx, c.Param("id"))
	if err != nil {
		c.JSON(StatusOf(err), dto.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(instance.Clone()))
}

// List returns instances, optionally filtered by current state or
// definition id.
// GET /v1/instances
func (h *InstanceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.InstanceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	var parameters []*dao.Parameter
	if query.CurrentState != "" {
		parameters = append(parameters, dao.NewParameter(imemory.ParamCurrentState, query.CurrentState))
	}
	if query.DefinitionID != "" {
		parameters = append(parameters, dao.NewParameter(imemory.ParamDefinitionID, query.DefinitionID))
	}
	instances, err := h.engine.Instances(ctx, parameters...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}
	items := make([]*execution.Instance, 0, len(instances))
	for _, instance := range instances {
		items = append(items, instance.Clone())
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ListResponse[*execution.Instance]{
		Total: len(items),
		Items: items,
	}))
}

// Execute fires an action against an instance.
// POST /v1/instances/:id/actions/:actionId
func (h *InstanceHandler) Execute(c *gin.Context) {
	ctx := c.Request.Context()
	instance, err := h.engine.Execute(ctx, c.Param("id"), c.Param("actionId"))
	if err != nil {
		c.JSON(StatusOf(err), dto.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(instance.Clone()))
}
