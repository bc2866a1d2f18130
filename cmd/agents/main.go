package main

import (
	"context"
	"os/signal"
	"syscall"

	"codeberg.org/swarmworks/server/internal/config"
	"codeberg.org/swarmworks/server/internal/httpserver"
	"codeberg.org/swarmworks/server/internal/logger"
)

// @title Swarm Works Multi-Agent AI API
// @version 1.0.0
// @description Six specialised code agents backed by a local Ollama
// @description
// @description Agents: code-review, documentation, test-generation, performance, security, llm-judge
// @description The orchestrator runs any subset of them concurrently and aggregates the answers

// @contact.name API Support
// @contact.url https://codeberg.org/swarmworks/server

// @BasePath /

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Configure(cfg.Environment)
	logger.Info("starting agents server",
		"ollama", cfg.Ollama.BaseURL,
		"code_model", cfg.Agents.CodeModel,
		"reasoning_model", cfg.Agents.ReasoningModel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := NewServer(cfg)
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
