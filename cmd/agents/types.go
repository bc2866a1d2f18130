package main

import (
	"codeberg.org/swarmworks/server/internal/agents"
	"codeberg.org/swarmworks/server/internal/config"
	"codeberg.org/swarmworks/server/internal/health"
	"codeberg.org/swarmworks/server/internal/orchestrator"
	"codeberg.org/swarmworks/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// holds all dependencies of the agents service
type Server struct {
	config       *config.Config
	runner       *agents.Runner
	orchestrator *orchestrator.Orchestrator
	checker      *health.Checker
	limiter      *ratelimit.Limiter // nil without RATE_LIMIT
	router       *gin.Engine
}
