package main

import (
	"context"
	"fmt"

	"codeberg.org/swarmworks/server/internal/analysis"
	"codeberg.org/swarmworks/server/internal/config"
	"codeberg.org/swarmworks/server/internal/health"
	"codeberg.org/swarmworks/server/internal/llm"
	"codeberg.org/swarmworks/server/internal/logger"
	"codeberg.org/swarmworks/server/internal/ratelimit"
	"codeberg.org/swarmworks/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	server := &Server{config: cfg}

	ollama := llm.NewOllamaClient(llm.OllamaConfig{
		BaseURL:   cfg.Ollama.BaseURL,
		Timeout:   cfg.Ollama.Timeout,
		RateLimit: cfg.Ollama.RateLimit,
		RateBurst: cfg.Ollama.RateBurst,
	})

	var recorder sessions.Recorder = sessions.NopRecorder{}

	if cfg.DatabaseURL != "" {
		db, err := sessions.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		repo := sessions.NewRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate sessions table: %w", err)
		}

		server.db = db
		server.sessions = repo
		recorder = repo

		logger.Info("analysis history enabled")
	}

	limiter, err := ratelimit.FromConfig(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		server.Close()
		return nil, err
	}

	server.limiter = limiter

	server.analyzer = analysis.NewService(ollama, analysis.ModelSelector{
		CodeModel:    cfg.Analyzer.CodeModel,
		GeneralModel: cfg.Analyzer.GeneralModel,
	}, recorder)

	server.checker = health.NewChecker(ollama, cfg.Ollama.HealthTimeout)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server.router = gin.New()
	server.router.Use(gin.Recovery())

	RegisterRoutes(server.router, server)

	return server, nil
}

// releases the database pool and the limiter's redis connection
func (s *Server) Close() {
	if err := s.limiter.Close(); err != nil {
		logger.ErrorErr(err, "failed to close rate limiter store")
	}

	if s.db != nil {
		s.db.Close()
	}
}
