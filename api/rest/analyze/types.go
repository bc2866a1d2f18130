package analyze

import (
	"codeberg.org/swarmworks/server/api/rest/pagination"
	"codeberg.org/swarmworks/server/internal/analysis"
	"codeberg.org/swarmworks/server/internal/sessions"
)

type AnalyzeRequest struct {
	Prompt      *string  `json:"prompt" binding:"required"` // must be present, may be empty
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Task        string   `json:"task,omitempty"`
	Language    string   `json:"language,omitempty"`
}

type AnalyzeResponse struct {
	Output      string                `json:"output"`
	Task        string                `json:"task"`
	Model       string                `json:"model"`
	TokensUsed  int                   `json:"tokens_used"`
	Suggestions []analysis.Suggestion `json:"suggestions,omitempty"`
	SessionID   string                `json:"session_id,omitempty"`
}

type SessionListResponse struct {
	Sessions   []sessions.Session `json:"sessions"`
	Pagination pagination.Meta    `json:"pagination"`
}
