package analysis

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/swarmworks/server/internal/llm"
	"codeberg.org/swarmworks/server/internal/logger"
	"codeberg.org/swarmworks/server/internal/sessions"
)

// budget for the session update after the backend call
const lifecycleWriteTimeout = 5 * time.Second

type Request struct {
	Code        string
	Task        Task
	MaxTokens   int
	Temperature float64
	Language    string // recorded only
}

type Result struct {
	Output      string
	Task        Task
	Model       string
	TokensUsed  int
	Suggestions []Suggestion // set for review and suggest
	SessionID   string       // empty when recording is disabled
}

// runs single-prompt analyses against the backend
type Service struct {
	generator llm.Generator
	models    ModelSelector
	recorder  sessions.Recorder
}

// recorder may be nil, in which case nothing is recorded
func NewService(generator llm.Generator, models ModelSelector, recorder sessions.Recorder) *Service {
	if recorder == nil {
		recorder = sessions.NopRecorder{}
	}

	return &Service{
		generator: generator,
		models:    models,
		recorder:  recorder,
	}
}

// formats the prompt, picks the model and performs one backend call
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	if req.Task == "" {
		req.Task = DefaultTask
	}

	model := s.models.Select(req.Task)
	log := logger.FromContext(ctx).With("task", string(req.Task), "model", model)

	sessionID, err := s.recorder.Start(ctx, sessions.StartParams{
		Task:      string(req.Task),
		Language:  req.Language,
		InputCode: req.Code,
		Model:     model,
	})
	if err != nil {
		log.Warn("failed to record analysis session", "error", err)
		sessionID = ""
	}

	resp, err := s.generator.Generate(ctx, llm.GenerateRequest{
		Model:       model,
		Prompt:      FormatPrompt(req.Task, req.Code),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if sessionID != "" {
			writeCtx, cancel := lifecycleContext(ctx)
			ferr := s.recorder.Fail(writeCtx, sessionID, err.Error())
			cancel()

			if ferr != nil {
				log.Warn("failed to mark analysis session failed", "session_id", sessionID, "error", ferr)
			}
		}

		return nil, fmt.Errorf("analysis %q failed: %w", req.Task, err)
	}

	if sessionID != "" {
		writeCtx, cancel := lifecycleContext(ctx)
		err := s.recorder.Complete(writeCtx, sessionID, sessions.CompleteParams{
			OutputResult: resp.Text,
			TokensUsed:   resp.EvalCount,
		})
		cancel()

		if err != nil {
			log.Warn("failed to complete analysis session", "session_id", sessionID, "error", err)
		}
	}

	result := &Result{
		Output:     resp.Text,
		Task:       req.Task,
		Model:      model,
		TokensUsed: resp.EvalCount,
		SessionID:  sessionID,
	}

	if suggestionTasks[req.Task] {
		result.Suggestions = ParseSuggestions(resp.Text)
	}

	return result, nil
}

// session rows must leave processing even when the caller went away
func lifecycleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), lifecycleWriteTimeout)
}
