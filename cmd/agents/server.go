package main

import (
	"codeberg.org/swarmworks/server/internal/agents"
	"codeberg.org/swarmworks/server/internal/config"
	"codeberg.org/swarmworks/server/internal/health"
	"codeberg.org/swarmworks/server/internal/llm"
	"codeberg.org/swarmworks/server/internal/logger"
	"codeberg.org/swarmworks/server/internal/orchestrator"
	"codeberg.org/swarmworks/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ollama := llm.NewOllamaClient(llm.OllamaConfig{
		BaseURL:   cfg.Ollama.BaseURL,
		Timeout:   cfg.Ollama.Timeout,
		RateLimit: cfg.Ollama.RateLimit,
		RateBurst: cfg.Ollama.RateBurst,
	})

	limiter, err := ratelimit.FromConfig(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	runner := agents.NewRunner(ollama, agents.Options{
		Models: agents.Models{
			Code:      cfg.Agents.CodeModel,
			Reasoning: cfg.Agents.ReasoningModel,
		},
		Temperature: cfg.Agents.Temperature,
		MaxTokens:   cfg.Agents.MaxTokens,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		config:       cfg,
		runner:       runner,
		orchestrator: orchestrator.New(runner),
		checker:      health.NewChecker(ollama, cfg.Ollama.HealthTimeout),
		limiter:      limiter,
		router:       router,
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases the limiter's redis connection
func (s *Server) Close() {
	if err := s.limiter.Close(); err != nil {
		logger.ErrorErr(err, "failed to close rate limiter store")
	}
}
