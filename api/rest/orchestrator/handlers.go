package orchestrator

import (
	"context"
	"net/http"

	"codeberg.org/swarmworks/server/internal/errors"
	"codeberg.org/swarmworks/server/internal/orchestrator"
	"github.com/gin-gonic/gin"
)

// Analyzer is satisfied by *orchestrator.Orchestrator
type Analyzer interface {
	Analyze(ctx context.Context, req orchestrator.Request) *orchestrator.Result
}

// AnalyzeHandler godoc
// @Summary Run several agents concurrently
// @Description Fans the code out to the selected agents (all six when the agents field is absent, none for an empty list) and aggregates their answers
// @Tags orchestrator
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Orchestration request"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /orchestrator/analyze [post]
func AnalyzeHandler(analyzer Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result := analyzer.Analyze(c.Request.Context(), orchestrator.Request{
			Code:     *req.Code,
			Language: req.Language,
			Context:  req.Context,
			Agents:   req.Agents,
		})

		c.JSON(http.StatusOK, AnalyzeResponse{
			Results:           result.Results,
			Summary:           result.Summary,
			OverallConfidence: result.OverallConfidence,
			FailedAgents:      result.Failed,
			SkippedAgents:     result.Skipped,
		})
	}
}
