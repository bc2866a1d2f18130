package agents

import "codeberg.org/swarmworks/server/internal/agents"

const (
	serviceMessage = "Swarm Works Multi-Agent AI Server"
	serviceVersion = "1.0.0"
)

type AgentRequest struct {
	Code         *string  `json:"code" binding:"required"` // must be present, may be empty
	Language     string   `json:"language,omitempty"`
	Context      string   `json:"context,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// agents.Response carries the wire shape of an agent answer
type AgentResponse = agents.Response

type RootResponse struct {
	Message string        `json:"message"`
	Version string        `json:"version"`
	Agents  []agents.Type `json:"agents"`
}
