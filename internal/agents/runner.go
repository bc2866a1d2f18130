package agents

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/swarmworks/server/internal/llm"
	"codeberg.org/swarmworks/server/internal/metrics"
)

// runs one agent per call against the backend
type Runner struct {
	generator llm.Generator
	opts      Options
	now       func() time.Time
}

func NewRunner(generator llm.Generator, opts Options) *Runner {
	return &Runner{
		generator: generator,
		opts:      opts,
		now:       time.Now,
	}
}

// model name configured for an agent type
func (r *Runner) ModelFor(t Type) string {
	def, ok := Lookup(t)
	if !ok {
		return ""
	}

	if def.Role == RoleCode {
		return r.opts.Models.Code
	}

	return r.opts.Models.Reasoning
}

// formats the agent prompt, calls the backend and shapes the response
func (r *Runner) Run(ctx context.Context, t Type, req Request) (*Response, error) {
	def, ok := Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, t)
	}

	start := r.now()

	resp, err := r.generator.Generate(ctx, llm.GenerateRequest{
		Model:       r.ModelFor(t),
		Prompt:      def.Prompt(req),
		Temperature: r.opts.Temperature,
		MaxTokens:   r.opts.MaxTokens,
	})

	metrics.ObserveAgentRun(string(t), err)

	if err != nil {
		return nil, &RunError{Agent: t, Message: def.FailureMessage, Err: err}
	}

	return &Response{
		AgentType:     t,
		Analysis:      resp.Text,
		Suggestions:   def.Suggestions(resp.Text),
		Confidence:    def.Confidence,
		ExecutionTime: r.now().Sub(start).Seconds(),
	}, nil
}
