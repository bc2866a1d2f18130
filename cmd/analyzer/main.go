package main

import (
	"context"
	"os/signal"
	"syscall"

	"codeberg.org/swarmworks/server/internal/config"
	"codeberg.org/swarmworks/server/internal/httpserver"
	"codeberg.org/swarmworks/server/internal/logger"
)

// @title Swarm Works Code Analyzer API
// @version 1.0
// @description Forwards code analysis prompts to a local Ollama backend
// @description
// @description Features:
// @description - review, explain, test, suggest and analyze tasks
// @description - optional analysis history in Postgres
// @description - typed suggestions for review and suggest tasks

// @contact.name API Support
// @contact.url https://codeberg.org/swarmworks/server

// @BasePath /

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Configure(cfg.Environment)
	logger.Info("starting analyzer server", "ollama", cfg.Ollama.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := NewServer(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}
	defer srv.Close()

	httpServer := httpserver.New(cfg.Port, srv.router, cfg.Ollama.Timeout)

	if err := httpserver.Serve(ctx, httpServer); err != nil {
		logger.ErrorErr(err, "server stopped with error")
		return
	}

	logger.Info("server stopped")
}
