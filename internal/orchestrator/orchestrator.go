package orchestrator

import (
	"context"
	"errors"
	"time"

	"codeberg.org/swarmworks/server/internal/agents"
	apperrors "codeberg.org/swarmworks/server/internal/errors"
	"codeberg.org/swarmworks/server/internal/logger"
	"codeberg.org/swarmworks/server/internal/metrics"
	"golang.org/x/sync/errgroup"
)

var errNoResponse = errors.New("agent returned no response")

// fans one snippet out to several agents and aggregates the answers
type Orchestrator struct {
	runner AgentRunner
	now    func() time.Time
}

func New(runner AgentRunner) *Orchestrator {
	return &Orchestrator{runner: runner, now: time.Now}
}

// selects agents, runs them concurrently and waits for every one of them
func (o *Orchestrator) Analyze(ctx context.Context, req Request) *Result {
	start := o.now()
	selected, skipped := selectAgents(req.Agents)

	agentReq := agents.Request{
		Code:     req.Code,
		Language: req.Language,
		Context:  req.Context,
	}

	outcomes, err := o.runAll(ctx, selected, agentReq)

	results, failed := filterSuccessful(outcomes)
	confidence := meanConfidence(results)

	if err != nil {
		log := logger.FromContext(ctx)
		for _, f := range failed {
			log.Warn("agent failed during orchestration", "agent", string(f.Agent), "error", f.Error)
		}
	}

	metrics.ObserveOrchestration(len(outcomes), len(failed))

	return &Result{
		Results:           results,
		Failed:            failed,
		Skipped:           skipped,
		Summary:           Summarize(len(results), confidence, o.now().Sub(start)),
		OverallConfidence: confidence,
	}
}

// one goroutine per agent writing into its own slot, no shared cancellation.
// the error is the first agent failure, every outcome is still recorded
func (o *Orchestrator) runAll(ctx context.Context, selected []agents.Type, req agents.Request) ([]Outcome, error) {
	outcomes := make([]Outcome, len(selected))

	var g errgroup.Group

	for i, agentType := range selected {
		g.Go(func() error {
			resp, err := o.runner.Run(ctx, agentType, req)
			if err == nil && resp == nil {
				err = errNoResponse
			}

			outcomes[i] = Outcome{Agent: agentType, Response: resp, Err: err}

			return err
		})
	}

	return outcomes, g.Wait()
}

// nil selects every agent, an empty list selects none; unknown labels are skipped, order and duplicates are kept
func selectAgents(labels []string) ([]agents.Type, []string) {
	if labels == nil {
		all := make([]agents.Type, len(agents.AllTypes))
		copy(all, agents.AllTypes)

		return all, nil
	}

	var (
		selected []agents.Type
		skipped  []string
	)

	for _, label := range labels {
		t := agents.Type(label)
		if !t.Valid() {
			skipped = append(skipped, label)
			continue
		}

		selected = append(selected, t)
	}

	return selected, skipped
}

// splits outcomes into succeeded responses and failures, both in selection order
func filterSuccessful(outcomes []Outcome) ([]agents.Response, []Failure) {
	results := []agents.Response{}
	failed := []Failure{}

	for _, out := range outcomes {
		if out.Err != nil {
			failed = append(failed, Failure{Agent: out.Agent, Error: describe(out.Err)})
			continue
		}

		results = append(results, *out.Response)
	}

	return results, failed
}

func describe(err error) string {
	return apperrors.Classify(err).Sanitized
}
