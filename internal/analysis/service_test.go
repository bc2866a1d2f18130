package analysis

import (
	"context"
	"fmt"
	"testing"

	"codeberg.org/swarmworks/server/internal/llm"
	"codeberg.org/swarmworks/server/internal/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	generateFunc func(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error)
	requests     []llm.GenerateRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.requests = append(m.requests, req)

	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}

	return &llm.GenerateResponse{Text: "ok", Model: req.Model}, nil
}

type mockRecorder struct {
	startErr  error
	started   []sessions.StartParams
	completed map[string]sessions.CompleteParams
	failed    map[string]string
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{
		completed: map[string]sessions.CompleteParams{},
		failed:    map[string]string{},
	}
}

func (m *mockRecorder) Start(_ context.Context, params sessions.StartParams) (string, error) {
	if m.startErr != nil {
		return "", m.startErr
	}

	m.started = append(m.started, params)

	return fmt.Sprintf("session-%d", len(m.started)), nil
}

// like a database driver, writes on a done context fail
func (m *mockRecorder) Complete(ctx context.Context, id string, params sessions.CompleteParams) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.completed[id] = params

	return nil
}

func (m *mockRecorder) Fail(ctx context.Context, id string, reason string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.failed[id] = reason

	return nil
}

var testModels = ModelSelector{CodeModel: "codegemma:2b", GeneralModel: "phi"}

func TestFormatPrompt(t *testing.T) {
	tests := []struct {
		task Task
		want string
	}{
		{TaskReview, "Review this code for bugs and improvements:\n\ndef f(): pass"},
		{TaskExplain, "Explain what this code does in simple terms:\n\ndef f(): pass"},
		{TaskTest, "Write unit tests for this code:\n\ndef f(): pass"},
		{TaskSuggest, "Suggest optimizations for this code:\n\ndef f(): pass"},
		{TaskAnalyze, "Analyze this code:\n\ndef f(): pass"},
		{Task("refactor"), "Analyze this code:\n\ndef f(): pass"},
		{Task(""), "Analyze this code:\n\ndef f(): pass"},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrompt(tt.task, "def f(): pass"))
		})
	}
}

func TestFormatPrompt_CodeContainingPlaceholder(t *testing.T) {
	assert.Equal(t, "Analyze this code:\n\nprint('{code}')", FormatPrompt(TaskAnalyze, "print('{code}')"))
}

func TestModelSelector(t *testing.T) {
	tests := []struct {
		task Task
		want string
	}{
		{TaskReview, "codegemma:2b"},
		{TaskTest, "codegemma:2b"},
		{TaskSuggest, "codegemma:2b"},
		{TaskExplain, "phi"},
		{TaskAnalyze, "phi"},
		{Task("refactor"), "phi"},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			assert.Equal(t, tt.want, testModels.Select(tt.task))
		})
	}
}

func TestAnalyze_Review(t *testing.T) {
	gen := &mockGenerator{
		generateFunc: func(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
			return &llm.GenerateResponse{
				Text:      "Overview\nBug: f does nothing\nSuggestion: add a body",
				Model:     req.Model,
				EvalCount: 21,
			}, nil
		},
	}
	rec := newMockRecorder()

	svc := NewService(gen, testModels, rec)

	result, err := svc.Analyze(context.Background(), Request{
		Code:        "def f(): pass",
		Task:        TaskReview,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	})
	require.NoError(t, err)

	require.Len(t, gen.requests, 1)
	assert.Equal(t, "codegemma:2b", gen.requests[0].Model)
	assert.Equal(t, "Review this code for bugs and improvements:\n\ndef f(): pass", gen.requests[0].Prompt)
	assert.Equal(t, 1024, gen.requests[0].MaxTokens)
	assert.InDelta(t, 0.1, gen.requests[0].Temperature, 1e-9)

	assert.Equal(t, TaskReview, result.Task)
	assert.Equal(t, "codegemma:2b", result.Model)
	assert.Equal(t, 21, result.TokensUsed)
	assert.Equal(t, "session-1", result.SessionID)

	require.Len(t, result.Suggestions, 2)
	assert.Equal(t, SuggestionError, result.Suggestions[0].Type)
	assert.Equal(t, SuggestionOptimization, result.Suggestions[1].Type)

	assert.Equal(t, sessions.CompleteParams{OutputResult: result.Output, TokensUsed: 21}, rec.completed["session-1"])
}

func TestAnalyze_UnknownTaskEchoed(t *testing.T) {
	gen := &mockGenerator{}
	svc := NewService(gen, testModels, nil)

	result, err := svc.Analyze(context.Background(), Request{Code: "x = 1", Task: "refactor"})
	require.NoError(t, err)

	assert.Equal(t, Task("refactor"), result.Task)
	assert.Equal(t, "phi", result.Model)
	assert.Equal(t, "Analyze this code:\n\nx = 1", gen.requests[0].Prompt)
	assert.Nil(t, result.Suggestions)
	assert.Empty(t, result.SessionID)
}

func TestAnalyze_DefaultTask(t *testing.T) {
	svc := NewService(&mockGenerator{}, testModels, nil)

	result, err := svc.Analyze(context.Background(), Request{Code: "x = 1"})
	require.NoError(t, err)
	assert.Equal(t, TaskAnalyze, result.Task)
}

func TestAnalyze_BackendErrorMarksSessionFailed(t *testing.T) {
	backendErr := &llm.StatusError{StatusCode: 500, Body: "boom"}
	gen := &mockGenerator{
		generateFunc: func(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
			return nil, backendErr
		},
	}
	rec := newMockRecorder()

	_, err := NewService(gen, testModels, rec).Analyze(context.Background(), Request{Code: "x", Task: TaskTest})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrBackendStatus)
	assert.Contains(t, rec.failed["session-1"], "status 500")
	assert.Empty(t, rec.completed)
}

func TestAnalyze_CancelledRequestStillMarksSessionFailed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen := &mockGenerator{
		generateFunc: func(ctx context.Context, _ llm.GenerateRequest) (*llm.GenerateResponse, error) {
			cancel() // client went away mid-call
			<-ctx.Done()

			return nil, fmt.Errorf("failed to send request: %w", ctx.Err())
		},
	}
	recorder := newMockRecorder()

	_, err := NewService(gen, testModels, recorder).Analyze(ctx, Request{Code: "x", Task: TaskReview})
	require.ErrorIs(t, err, context.Canceled)

	require.Contains(t, recorder.failed, "session-1")
	assert.Contains(t, recorder.failed["session-1"], "context canceled")
}

func TestAnalyze_CancelledAfterGenerateStillCompletesSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen := &mockGenerator{
		generateFunc: func(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
			cancel()
			return &llm.GenerateResponse{Text: "done", Model: req.Model, EvalCount: 4}, nil
		},
	}
	recorder := newMockRecorder()

	_, err := NewService(gen, testModels, recorder).Analyze(ctx, Request{Code: "x"})
	require.NoError(t, err)

	assert.Equal(t, sessions.CompleteParams{OutputResult: "done", TokensUsed: 4}, recorder.completed["session-1"])
}

func TestAnalyze_RecorderFailureDoesNotFailRequest(t *testing.T) {
	rec := newMockRecorder()
	rec.startErr = fmt.Errorf("database unavailable")

	result, err := NewService(&mockGenerator{}, testModels, rec).Analyze(context.Background(), Request{Code: "x"})
	require.NoError(t, err)
	assert.Empty(t, result.SessionID)
	assert.Empty(t, rec.completed)
}

func TestParseSuggestions(t *testing.T) {
	output := "Summary of findings\n" +
		"1. Bug: division by zero when n is 0\n" +
		"Warning: unused variable tmp\n" +
		"- Issue:   mutable default argument\n" +
		"Improvement: cache the result\n" +
		"Suggestion: rename f\n" +
		"error: lowercase markers are not matched\n"

	got := ParseSuggestions(output)
	require.Len(t, got, 5)

	assert.Equal(t, Suggestion{Type: SuggestionError, Line: 2, Description: "division by zero when n is 0", Confidence: 0.9}, got[0])
	assert.Equal(t, Suggestion{Type: SuggestionWarning, Line: 3, Description: "unused variable tmp", Confidence: 0.8}, got[1])
	assert.Equal(t, Suggestion{Type: SuggestionWarning, Line: 4, Description: "mutable default argument", Confidence: 0.8}, got[2])
	assert.Equal(t, Suggestion{Type: SuggestionOptimization, Line: 5, Description: "cache the result", Confidence: 0.7}, got[3])
	assert.Equal(t, Suggestion{Type: SuggestionOptimization, Line: 6, Description: "rename f", Confidence: 0.7}, got[4])
}

func TestParseSuggestions_ErrorRuleWinsOverLaterRules(t *testing.T) {
	got := ParseSuggestions("Issue: x, Error: y")
	require.Len(t, got, 1)
	assert.Equal(t, SuggestionError, got[0].Type)
	assert.Equal(t, "y", got[0].Description)
}

func TestParseSuggestions_Empty(t *testing.T) {
	got := ParseSuggestions("all good")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
