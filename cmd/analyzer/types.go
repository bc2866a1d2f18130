package main

import (
	"codeberg.org/swarmworks/server/internal/analysis"
	"codeberg.org/swarmworks/server/internal/config"
	"codeberg.org/swarmworks/server/internal/health"
	"codeberg.org/swarmworks/server/internal/ratelimit"
	"codeberg.org/swarmworks/server/internal/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies of the analyzer service
type Server struct {
	config   *config.Config
	db       *pgxpool.Pool // nil without DATABASE_URL
	analyzer *analysis.Service
	sessions sessions.Lister // nil without DATABASE_URL
	checker  *health.Checker
	limiter  *ratelimit.Limiter // nil without RATE_LIMIT
	router   *gin.Engine
}
