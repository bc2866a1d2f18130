package main

import (
	agentsapi "codeberg.org/swarmworks/server/api/rest/agents"
	"codeberg.org/swarmworks/server/api/rest/health"
	orchestratorapi "codeberg.org/swarmworks/server/api/rest/orchestrator"
	"codeberg.org/swarmworks/server/internal/metrics"
	"codeberg.org/swarmworks/server/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.Middleware())

	if server.limiter != nil {
		router.Use(server.limiter.Middleware())
	}

	router.GET("/health", health.AgentsHandler(server.checker))
	router.GET("/metrics", metrics.Handler())

	agentsapi.RegisterRoutes(router, server.runner)
	orchestratorapi.RegisterRoutes(router, server.orchestrator)
}
