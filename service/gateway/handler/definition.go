package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viant/flowstate/model"
	"github.com/viant/flowstate/service/engine"
	"github.com/viant/flowstate/service/gateway/dto"
)

// DefinitionHandler exposes workflow definition endpoints.
type DefinitionHandler struct {
	engine *engine.Service
}

// NewDefinitionHandler creates a DefinitionHandler.
func NewDefinitionHandler(eng *engine.Service) *DefinitionHandler {
	return &DefinitionHandler{engine: eng}
}

// Create registers a new workflow definition.
// POST /v1/definitions
func (h *DefinitionHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	definition := &model.Definition{}
	if err := c.ShouldBindJSON(definition); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}
	defined, err := h.engine.Define(ctx, definition)
	if err != nil {
		c.JSON(StatusOf(err), dto.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(defined))
}

// Get returns a definition with its states and actions.
// GET /v1/definitions/:id
func (h *DefinitionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	definition, err := h.engine.Definition(ctx, c.Param("id"))
	if err != nil {
		c.JSON(StatusOf(err), dto.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(definition))
}

// List returns all registered definitions.
// GET /v1/definitions
func (h *DefinitionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	definitions, err := h.engine.Definitions(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ListResponse[*model.Definition]{
		Total: len(definitions),
		Items: definitions,
	}))
}
