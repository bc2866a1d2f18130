package cli

import "time"

const (
	defaultEndpoint = "http://localhost:8000"
	endpointEnv     = "SWARM_API_ENDPOINT"

	// agents run concurrently but each one can take a full backend timeout
	requestTimeout = 5 * time.Minute
)

type OrchestrateRequest struct {
	Code     string   `json:"code"`
	Language string   `json:"language,omitempty"`
	Agents   []string `json:"agents,omitempty"`
	Context  string   `json:"context,omitempty"`
}

type AgentResult struct {
	AgentType     string   `json:"agent_type"`
	Analysis      string   `json:"analysis"`
	Suggestions   []string `json:"suggestions"`
	Confidence    float64  `json:"confidence"`
	ExecutionTime float64  `json:"execution_time"`
}

type FailedAgent struct {
	Agent string `json:"agent"`
	Error string `json:"error"`
}

type OrchestrateResponse struct {
	Results           []AgentResult `json:"results"`
	Summary           string        `json:"summary"`
	OverallConfidence float64       `json:"overall_confidence"`
	FailedAgents      []FailedAgent `json:"failed_agents"`
	SkippedAgents     []string      `json:"skipped_agents,omitempty"`
}

type AnalyzeRequest struct {
	Prompt string `json:"prompt"`
	Task   string `json:"task,omitempty"`
}

type Suggestion struct {
	Type        string  `json:"type"`
	Line        int     `json:"line"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type AnalyzeResponse struct {
	Output      string       `json:"output"`
	Task        string       `json:"task"`
	Model       string       `json:"model"`
	TokensUsed  int          `json:"tokens_used"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	SessionID   string       `json:"session_id,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// sent when the wrapped request finishes
type doneMsg[T any] struct {
	value T
	err   error
}
