package orchestrator

import (
	"context"

	"codeberg.org/swarmworks/server/internal/agents"
)

// runs a single agent, satisfied by *agents.Runner
type AgentRunner interface {
	Run(ctx context.Context, t agents.Type, req agents.Request) (*agents.Response, error)
}

type Request struct {
	Code     string
	Language string
	Context  string
	Agents   []string // nil runs every agent, an empty list runs none
}

// result slot of one selected agent, exactly one of Response and Err is set
type Outcome struct {
	Agent    agents.Type
	Response *agents.Response
	Err      error
}

type Failure struct {
	Agent agents.Type `json:"agent"`
	Error string      `json:"error"`
}

type Result struct {
	Results           []agents.Response
	Failed            []Failure
	Skipped           []string // labels that name no agent
	Summary           string
	OverallConfidence float64
}
