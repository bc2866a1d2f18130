package agents

import (
	"context"
	stderrors "errors"
	"net/http"

	"codeberg.org/swarmworks/server/internal/agents"
	"codeberg.org/swarmworks/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// runs a single agent, satisfied by *agents.Runner
type Runner interface {
	Run(ctx context.Context, t agents.Type, req agents.Request) (*agents.Response, error)
}

// RootHandler godoc
// @Summary Service description
// @Tags agents
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: serviceMessage,
		Version: serviceVersion,
		Agents:  agents.AllTypes,
	})
}

// AgentHandler godoc
// @Summary Run one agent
// @Description Runs the code through one of the six agent prompts
// @Tags agents
// @Accept json
// @Produce json
// @Param type path string true "code-review, documentation, test-generation, performance, security or llm-judge"
// @Param request body AgentRequest true "Agent request"
// @Success 200 {object} AgentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /agent/{type} [post]
func AgentHandler(runner Runner) gin.HandlerFunc {
	return func(c *gin.Context) {
		agentType := agents.Type(c.Param("type"))
		if !agentType.Valid() {
			errors.NotFound(c, "agent type "+string(agentType))
			return
		}

		var req AgentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := runner.Run(c.Request.Context(), agentType, agents.Request{
			Code:         *req.Code,
			Language:     req.Language,
			Context:      req.Context,
			Requirements: req.Requirements,
		})
		if err != nil {
			message := "agent run failed"

			var runErr *agents.RunError
			if stderrors.As(err, &runErr) {
				message = runErr.Message
			}

			errors.InternalError(c, message, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
