package main

import (
	"codeberg.org/swarmworks/server/api/rest/analyze"
	"codeberg.org/swarmworks/server/api/rest/health"
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

	router.GET("/health", health.AnalyzerHandler(server.checker))
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")

	{
		analyze.RegisterRoutes(api, server.analyzer, server.sessions)
	}
}
