package agents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"codeberg.org/swarmworks/server/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	text     string
	err      error
	requests []llm.GenerateRequest
}

func (m *mockGenerator) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.requests = append(m.requests, req)

	if m.err != nil {
		return nil, m.err
	}

	return &llm.GenerateResponse{Text: m.text, Model: req.Model}, nil
}

var testOptions = Options{
	Models:      Models{Code: "tinyllama", Reasoning: "ernie-4.5-0.3b"},
	Temperature: 0.7,
	MaxTokens:   1000,
}

func TestDefinitions(t *testing.T) {
	tests := []struct {
		agent      Type
		model      string
		confidence float64
		failure    string
	}{
		{TypeCodeReview, "tinyllama", 0.85, "Code review analysis failed"},
		{TypeDocumentation, "tinyllama", 0.88, "Documentation generation failed"},
		{TypeTestGeneration, "ernie-4.5-0.3b", 0.92, "Test generation failed"},
		{TypePerformance, "ernie-4.5-0.3b", 0.87, "Performance analysis failed"},
		{TypeSecurity, "ernie-4.5-0.3b", 0.90, "Security analysis failed"},
		{TypeLLMJudge, "ernie-4.5-0.3b", 0.89, "LLM judge analysis failed"},
	}

	runner := NewRunner(&mockGenerator{}, testOptions)
	require.Len(t, AllTypes, len(tests))

	for _, tt := range tests {
		t.Run(string(tt.agent), func(t *testing.T) {
			def, ok := Lookup(tt.agent)
			require.True(t, ok)
			assert.True(t, tt.agent.Valid())

			assert.Equal(t, tt.model, runner.ModelFor(tt.agent))
			assert.Equal(t, tt.confidence, def.Confidence)
			assert.Equal(t, tt.failure, def.FailureMessage)
		})
	}

	assert.False(t, Type("refactor").Valid())
	assert.Empty(t, runner.ModelFor("refactor"))
}

func TestPrompt_CodeReview(t *testing.T) {
	def, _ := Lookup(TypeCodeReview)

	prompt := def.Prompt(Request{Code: "x = 1", Context: "legacy module"})

	want := "\nYou are a senior code reviewer. Analyze the following python code for:\n" +
		"1. Code quality and readability\n" +
		"2. Best practices adherence\n" +
		"3. Potential bugs or issues\n" +
		"4. Architecture and design patterns\n" +
		"5. Performance considerations\n\n" +
		"Code to review:\n```python\nx = 1\n```\n\n" +
		"Context: legacy module\n\n" +
		"Provide specific, actionable feedback in a professional tone.\n"

	assert.Equal(t, want, prompt)
}

func TestPrompt_TestGenerationRequirements(t *testing.T) {
	def, _ := Lookup(TypeTestGeneration)

	prompt := def.Prompt(Request{Code: "func f() {}", Language: "go", Requirements: []string{"table tests", "no mocks"}})
	assert.Contains(t, prompt, "```go\nfunc f() {}\n```")
	assert.Contains(t, prompt, "Requirements: ['table tests', 'no mocks']\n")

	prompt = def.Prompt(Request{Code: "x"})
	assert.Contains(t, prompt, "Requirements: []\n")
}

func TestRequirementsLine(t *testing.T) {
	tests := []struct {
		name string
		reqs []string
		want string
	}{
		{"nil", nil, "[]"},
		{"empty", []string{}, "[]"},
		{"single", []string{"pytest"}, "['pytest']"},
		{"several", []string{"a", "b"}, "['a', 'b']"},
		{"single quote switches to double", []string{"don't mock"}, `["don't mock"]`},
		{"both quotes stay single and escape", []string{`it's "fine"`}, `['it\'s "fine"']`},
		{"backslash and newline escaped", []string{"a\\b\nc"}, `['a\\b\nc']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requirementsLine(tt.reqs))
		})
	}
}

func TestPrompt_OnlyTestGenerationMentionsRequirements(t *testing.T) {
	for _, agent := range AllTypes {
		def, _ := Lookup(agent)
		prompt := def.Prompt(Request{Code: "x", Requirements: []string{"r"}})

		assert.Equal(t, agent == TypeTestGeneration, strings.Contains(prompt, "Requirements:"), agent)
		assert.True(t, strings.HasPrefix(prompt, "\n"), agent)
		assert.Contains(t, prompt, "Context: ", agent)
	}
}

func TestPrompt_PlaceholdersInCodeAreLiteral(t *testing.T) {
	def, _ := Lookup(TypeSecurity)

	prompt := def.Prompt(Request{Code: "s = '{context}'", Context: "ctx"})
	assert.Contains(t, prompt, "s = '{context}'")
}

func TestExtractReviewSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		want     []string
	}{
		{
			name:     "no trigger word",
			analysis: "You should rename x.\nConsider tests.",
			want:     []string{"No specific suggestions found in analysis"},
		},
		{
			name:     "trigger with matching lines",
			analysis: "Overall fine.\n  I recommend adding types.  \nVariables should be named.\nNothing else.",
			want:     []string{"I recommend adding types.", "Variables should be named."},
		},
		{
			name:     "trigger line matches itself",
			analysis: "SUGGESTIONS",
			want:     []string{"SUGGESTIONS"},
		},
		{
			name:     "capped at five",
			analysis: "Suggestion list\nsuggest 1\nsuggest 2\nsuggest 3\nsuggest 4\nsuggest 5",
			want:     []string{"Suggestion list", "suggest 1", "suggest 2", "suggest 3", "suggest 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractReviewSuggestions(tt.analysis))
		})
	}
}

func TestRun(t *testing.T) {
	gen := &mockGenerator{text: "Looks safe."}
	runner := NewRunner(gen, testOptions)

	ticks := []time.Time{time.Unix(100, 0), time.Unix(100, 0).Add(1500 * time.Millisecond)}
	runner.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]

		return next
	}

	resp, err := runner.Run(context.Background(), TypeSecurity, Request{Code: "x = 1"})
	require.NoError(t, err)

	require.Len(t, gen.requests, 1)
	assert.Equal(t, "ernie-4.5-0.3b", gen.requests[0].Model)
	assert.InDelta(t, 0.7, gen.requests[0].Temperature, 1e-9)
	assert.Equal(t, 1000, gen.requests[0].MaxTokens)

	assert.Equal(t, TypeSecurity, resp.AgentType)
	assert.Equal(t, "Looks safe.", resp.Analysis)
	assert.Equal(t, 0.90, resp.Confidence)
	assert.Len(t, resp.Suggestions, 5)
	assert.InDelta(t, 1.5, resp.ExecutionTime, 1e-9)
}

func TestRun_FixedSuggestionsAreCopies(t *testing.T) {
	runner := NewRunner(&mockGenerator{text: "ok"}, testOptions)

	first, err := runner.Run(context.Background(), TypeDocumentation, Request{Code: "x"})
	require.NoError(t, err)
	first.Suggestions[0] = "mutated"

	second, err := runner.Run(context.Background(), TypeDocumentation, Request{Code: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Add inline comments for complex logic", second.Suggestions[0])
}

func TestRun_UnknownAgent(t *testing.T) {
	gen := &mockGenerator{}

	_, err := NewRunner(gen, testOptions).Run(context.Background(), "refactor", Request{Code: "x"})
	assert.ErrorIs(t, err, ErrUnknownAgent)
	assert.Empty(t, gen.requests)
}

func TestRun_BackendError(t *testing.T) {
	gen := &mockGenerator{err: &llm.StatusError{StatusCode: 500, Body: "model crashed"}}

	_, err := NewRunner(gen, testOptions).Run(context.Background(), TypeCodeReview, Request{Code: "x"})
	require.Error(t, err)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, TypeCodeReview, runErr.Agent)
	assert.Equal(t, "Code review analysis failed: backend request failed with status 500: model crashed", err.Error())
	assert.ErrorIs(t, err, llm.ErrBackendStatus)
}
