package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"codeberg.org/swarmworks/server/internal/agents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	mu      sync.Mutex
	calls   []agents.Type
	runFunc func(ctx context.Context, t agents.Type, req agents.Request) (*agents.Response, error)
}

func (m *mockRunner) Run(ctx context.Context, t agents.Type, req agents.Request) (*agents.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, t)
	m.mu.Unlock()

	if m.runFunc != nil {
		return m.runFunc(ctx, t, req)
	}

	def, _ := agents.Lookup(t)

	return &agents.Response{AgentType: t, Analysis: "ok", Confidence: def.Confidence}, nil
}

func fixedClock(steps ...time.Duration) func() time.Time {
	base := time.Unix(1000, 0)
	i := 0

	return func() time.Time {
		d := steps[i]
		if i < len(steps)-1 {
			i++
		}

		return base.Add(d)
	}
}

func TestAnalyze_TwoAgents(t *testing.T) {
	runner := &mockRunner{}
	o := New(runner)
	o.now = fixedClock(0, 1234*time.Millisecond)

	result := o.Analyze(context.Background(), Request{Code: "x=1", Agents: []string{"code-review", "security"}})

	require.Len(t, result.Results, 2)
	assert.Equal(t, agents.TypeCodeReview, result.Results[0].AgentType)
	assert.Equal(t, agents.TypeSecurity, result.Results[1].AgentType)
	assert.InDelta(t, (0.85+0.90)/2, result.OverallConfidence, 1e-9)
	assert.Empty(t, result.Failed)
	assert.Equal(t,
		"Analysis completed with 2 agents. High confidence in analysis results. Total execution time: 1.23s",
		result.Summary,
	)
}

func TestAnalyze_PassesCodeLanguageAndContext(t *testing.T) {
	var got agents.Request

	runner := &mockRunner{
		runFunc: func(_ context.Context, t agents.Type, req agents.Request) (*agents.Response, error) {
			got = req
			return &agents.Response{AgentType: t, Confidence: 0.9}, nil
		},
	}

	New(runner).Analyze(context.Background(), Request{Code: "x", Language: "go", Context: "cli", Agents: []string{"llm-judge"}})

	assert.Equal(t, agents.Request{Code: "x", Language: "go", Context: "cli"}, got)
}

func TestAnalyze_NilAgentsRunsAll(t *testing.T) {
	runner := &mockRunner{}

	result := New(runner).Analyze(context.Background(), Request{Code: "x"})

	require.Len(t, result.Results, len(agents.AllTypes))
	for i, agentType := range agents.AllTypes {
		assert.Equal(t, agentType, result.Results[i].AgentType)
	}

	assert.ElementsMatch(t, agents.AllTypes, runner.calls)
}

func TestAnalyze_EmptyAgentsRunsNone(t *testing.T) {
	runner := &mockRunner{}
	o := New(runner)
	o.now = fixedClock(0)

	result := o.Analyze(context.Background(), Request{Code: "x", Agents: []string{}})

	assert.Empty(t, runner.calls)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
	assert.Empty(t, result.Failed)
	assert.Zero(t, result.OverallConfidence)
	assert.Equal(t,
		"Analysis completed with 0 agents. Low confidence - consider manual review. Total execution time: 0.00s",
		result.Summary,
	)
}

func TestAnalyze_NilResponseIsFailure(t *testing.T) {
	runner := &mockRunner{
		runFunc: func(context.Context, agents.Type, agents.Request) (*agents.Response, error) {
			return nil, nil
		},
	}

	result := New(runner).Analyze(context.Background(), Request{Code: "x", Agents: []string{"security"}})

	assert.Empty(t, result.Results)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "agent returned no response", result.Failed[0].Error)
}

func TestRunAll_ReportsFirstFailureAndKeepsEveryOutcome(t *testing.T) {
	runner := &mockRunner{
		runFunc: func(_ context.Context, t agents.Type, _ agents.Request) (*agents.Response, error) {
			if t == agents.TypeSecurity {
				return nil, fmt.Errorf("security backend down")
			}

			return &agents.Response{AgentType: t, Confidence: 0.9}, nil
		},
	}

	selected := []agents.Type{agents.TypeCodeReview, agents.TypeSecurity, agents.TypeLLMJudge}

	outcomes, err := New(runner).runAll(context.Background(), selected, agents.Request{Code: "x"})
	require.EqualError(t, err, "security backend down")

	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, agents.TypeLLMJudge, outcomes[2].Response.AgentType)

	runner.runFunc = nil

	_, err = New(runner).runAll(context.Background(), selected, agents.Request{Code: "x"})
	assert.NoError(t, err)
}

func TestAnalyze_UnknownLabelsSkipped(t *testing.T) {
	runner := &mockRunner{}

	result := New(runner).Analyze(context.Background(), Request{Code: "x", Agents: []string{"refactor", "security", "linter"}})

	require.Len(t, result.Results, 1)
	assert.Equal(t, agents.TypeSecurity, result.Results[0].AgentType)
	assert.Equal(t, []string{"refactor", "linter"}, result.Skipped)
	assert.Equal(t, []agents.Type{agents.TypeSecurity}, runner.calls)
}

func TestAnalyze_OnlyUnknownLabels(t *testing.T) {
	runner := &mockRunner{}
	o := New(runner)
	o.now = fixedClock(0)

	result := o.Analyze(context.Background(), Request{Code: "x", Agents: []string{"refactor"}})

	assert.Empty(t, result.Results)
	assert.Empty(t, runner.calls)
	assert.Zero(t, result.OverallConfidence)
	assert.Equal(t,
		"Analysis completed with 0 agents. Low confidence - consider manual review. Total execution time: 0.00s",
		result.Summary,
	)
}

func TestAnalyze_FailuresExcluded(t *testing.T) {
	runner := &mockRunner{
		runFunc: func(_ context.Context, t agents.Type, _ agents.Request) (*agents.Response, error) {
			if t == agents.TypePerformance {
				return nil, fmt.Errorf("Performance analysis failed: connection refused")
			}

			def, _ := agents.Lookup(t)

			return &agents.Response{AgentType: t, Confidence: def.Confidence}, nil
		},
	}

	result := New(runner).Analyze(context.Background(), Request{
		Code:   "x",
		Agents: []string{"documentation", "performance", "test-generation"},
	})

	require.Len(t, result.Results, 2)
	assert.Equal(t, agents.TypeDocumentation, result.Results[0].AgentType)
	assert.Equal(t, agents.TypeTestGeneration, result.Results[1].AgentType)

	for _, r := range result.Results {
		assert.NotEqual(t, agents.TypePerformance, r.AgentType)
	}

	require.Len(t, result.Failed, 1)
	assert.Equal(t, agents.TypePerformance, result.Failed[0].Agent)
	assert.Contains(t, result.Failed[0].Error, "connection refused")

	assert.InDelta(t, (0.88+0.92)/2, result.OverallConfidence, 1e-9)
}

func TestAnalyze_AllFail(t *testing.T) {
	runner := &mockRunner{
		runFunc: func(context.Context, agents.Type, agents.Request) (*agents.Response, error) {
			return nil, fmt.Errorf("backend down")
		},
	}

	result := New(runner).Analyze(context.Background(), Request{Code: "x", Agents: []string{"code-review", "security"}})

	assert.Empty(t, result.Results)
	assert.NotNil(t, result.Results)
	assert.Len(t, result.Failed, 2)
	assert.Zero(t, result.OverallConfidence)
	assert.Contains(t, result.Summary, "Analysis completed with 0 agents. Low confidence - consider manual review.")
}

func TestAnalyze_RunsConcurrently(t *testing.T) {
	selected := []string{"code-review", "documentation", "security"}

	var started sync.WaitGroup
	started.Add(len(selected))

	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	runner := &mockRunner{
		runFunc: func(_ context.Context, t agents.Type, _ agents.Request) (*agents.Response, error) {
			started.Done()

			// each call blocks until every call has started, a sequential fan-out would time out here
			select {
			case <-allStarted:
			case <-time.After(2 * time.Second):
				return nil, fmt.Errorf("agents did not run concurrently")
			}

			return &agents.Response{AgentType: t, Confidence: 0.9}, nil
		},
	}

	result := New(runner).Analyze(context.Background(), Request{Code: "x", Agents: selected})

	assert.Len(t, result.Results, len(selected))
	assert.Empty(t, result.Failed)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       string
	}{
		{"high", 0.85, "High confidence in analysis results."},
		{"boundary is moderate", 0.8, "Moderate confidence in analysis results."},
		{"moderate", 0.7, "Moderate confidence in analysis results."},
		{"boundary is low", 0.6, "Low confidence - consider manual review."},
		{"none", 0, "Low confidence - consider manual review."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(3, tt.confidence, 2500*time.Millisecond)
			assert.Equal(t, "Analysis completed with 3 agents. "+tt.want+" Total execution time: 2.50s", got)
		})
	}
}

func TestMeanConfidence(t *testing.T) {
	assert.Zero(t, meanConfidence(nil))
	assert.InDelta(t, 0.875, meanConfidence([]agents.Response{{Confidence: 0.85}, {Confidence: 0.90}}), 1e-9)
}
