package agents

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAgent = errors.New("unknown agent type")
)

type Type string

const (
	TypeCodeReview     Type = "code-review"
	TypeDocumentation  Type = "documentation"
	TypeTestGeneration Type = "test-generation"
	TypePerformance    Type = "performance"
	TypeSecurity       Type = "security"
	TypeLLMJudge       Type = "llm-judge"
)

// every agent in the order they are advertised
var AllTypes = []Type{
	TypeCodeReview,
	TypeDocumentation,
	TypeTestGeneration,
	TypePerformance,
	TypeSecurity,
	TypeLLMJudge,
}

const DefaultLanguage = "python"

// which configured model an agent runs on
type ModelRole int

const (
	RoleCode ModelRole = iota
	RoleReasoning
)

type Request struct {
	Code         string
	Language     string
	Context      string
	Requirements []string
}

type Response struct {
	AgentType     Type     `json:"agent_type"`
	Analysis      string   `json:"analysis"`
	Suggestions   []string `json:"suggestions"`
	Confidence    float64  `json:"confidence"`
	ExecutionTime float64  `json:"execution_time"` // seconds
}

// fixed prompt, model role and response shaping of one agent
type Definition struct {
	Type       Type
	Role       ModelRole
	Confidence float64

	// prefix of the error reported when the backend call fails
	FailureMessage string

	prompt      func(req Request) string
	suggestions func(analysis string) []string
}

// backend failure of a single agent run
type RunError struct {
	Agent   Type
	Message string
	Err     error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// model names for the two roles
type Models struct {
	Code      string
	Reasoning string
}

type Options struct {
	Models      Models
	Temperature float64
	MaxTokens   int
}
