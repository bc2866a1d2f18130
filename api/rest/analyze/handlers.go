package analyze

import (
	"context"
	stderrors "errors"
	"net/http"

	"codeberg.org/swarmworks/server/api/rest/pagination"
	"codeberg.org/swarmworks/server/internal/analysis"
	"codeberg.org/swarmworks/server/internal/errors"
	"codeberg.org/swarmworks/server/internal/llm"
	"codeberg.org/swarmworks/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// runs one analysis, satisfied by *analysis.Service
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
}

// AnalyzeHandler godoc
// @Summary Analyze code
// @Description Formats a task prompt around the code and returns the model output
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Analysis request"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 504 {object} errors.ErrorResponse
// @Router /api/ai/analyze [post]
func AnalyzeHandler(analyzer Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		task := req.Task
		if task == "" {
			task = string(analysis.DefaultTask)
		}

		maxTokens := analysis.DefaultMaxTokens
		if req.MaxTokens != nil {
			maxTokens = *req.MaxTokens
		}

		temperature := analysis.DefaultTemperature
		if req.Temperature != nil {
			temperature = *req.Temperature
		}

		result, err := analyzer.Analyze(c.Request.Context(), analysis.Request{
			Code:        *req.Prompt,
			Task:        analysis.Task(task),
			MaxTokens:   maxTokens,
			Temperature: temperature,
			Language:    req.Language,
		})
		if err != nil {
			if llm.IsTimeout(err) {
				errors.GatewayTimeout(c, "Request timeout - try shorter code", err)
				return
			}

			errors.InternalError(c, "Model API error", err)
			return
		}

		c.JSON(http.StatusOK, AnalyzeResponse{
			Output:      result.Output,
			Task:        string(result.Task),
			Model:       result.Model,
			TokensUsed:  result.TokensUsed,
			Suggestions: result.Suggestions,
			SessionID:   result.SessionID,
		})
	}
}

// ListSessionsHandler godoc
// @Summary List analysis sessions
// @Description Recorded analyses, newest first
// @Tags analyze
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} SessionListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/ai/analyze [get]
func ListSessionsHandler(lister sessions.Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		if lister == nil {
			errors.ServiceUnavailable(c, "analysis history is disabled, set DATABASE_URL to enable it")
			return
		}

		params := pagination.FromQuery(c, defaultListLimit, maxListLimit)

		list, total, err := lister.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list analysis sessions", err)
			return
		}

		c.JSON(http.StatusOK, SessionListResponse{
			Sessions:   list,
			Pagination: pagination.NewMeta(params, total),
		})
	}
}

// GetSessionHandler godoc
// @Summary Get analysis session
// @Tags analyze
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} sessions.Session
// @Failure 404 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/ai/analyze/{id} [get]
func GetSessionHandler(lister sessions.Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		if lister == nil {
			errors.ServiceUnavailable(c, "analysis history is disabled, set DATABASE_URL to enable it")
			return
		}

		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		session, err := lister.Get(c.Request.Context(), id)
		if stderrors.Is(err, sessions.ErrSessionNotFound) {
			errors.NotFound(c, "analysis session")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to get analysis session", err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}
