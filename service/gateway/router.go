// Package gateway is the HTTP glue over the engine: it parses requests
// into plain values, delegates every decision to the engine and renders
// the outcome. No workflow rule lives here.
package gateway

import (
	"github.com/gin-gonic/gin"
	"github.com/viant/flowstate/service/engine"
	"github.com/viant/flowstate/service/gateway/handler"
)

// SetupRouter wires all gateway routes over the supplied engine.
func SetupRouter(eng *engine.Service, version string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	definitionHandler := handler.NewDefinitionHandler(eng)
	instanceHandler := handler.NewInstanceHandler(eng)
	healthHandler := handler.NewHealthHandler(version)

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/v1")
	{
		definitions := v1.Group("/definitions")
		{
			definitions.GET("", definitionHandler.List)
			definitions.POST("", definitionHandler.Create)
			definitions.GET("/:id", definitionHandler.Get)
		}

		instances := v1.Group("/instances")
		{
			instances.GET("", instanceHandler.List)
			instances.POST("", instanceHandler.Start)
			instances.GET("/:id", instanceHandler.Get)
			instances.POST("/:id/actions/:actionId", instanceHandler.Execute)
		}
	}
	return router
}
