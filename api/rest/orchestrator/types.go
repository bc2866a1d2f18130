package orchestrator

import (
	"codeberg.org/swarmworks/server/internal/agents"
	"codeberg.org/swarmworks/server/internal/orchestrator"
)

type AnalyzeRequest struct {
	Code     *string  `json:"code" binding:"required"` // must be present, may be empty
	Language string   `json:"language,omitempty"`
	Agents   []string `json:"agents,omitempty"`
	Context  string   `json:"context,omitempty"`
}

type AnalyzeResponse struct {
	Results           []agents.Response      `json:"results"`
	Summary           string                 `json:"summary"`
	OverallConfidence float64                `json:"overall_confidence"`
	FailedAgents      []orchestrator.Failure `json:"failed_agents"`
	SkippedAgents     []string               `json:"skipped_agents,omitempty"`
}
