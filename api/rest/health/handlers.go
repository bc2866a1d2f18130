package health

import (
	"context"
	"net/http"

	"codeberg.org/swarmworks/server/internal/health"
	"github.com/gin-gonic/gin"
)

// checks the inference backend, satisfied by *health.Checker
type BackendChecker interface {
	Check(ctx context.Context) health.Report
}

// AnalyzerHandler godoc
// @Summary Analyzer health
// @Description Checks the inference backend and lists its models
// @Tags health
// @Produce json
// @Success 200 {object} AnalyzerResponse
// @Router /health [get]
func AnalyzerHandler(checker BackendChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := checker.Check(c.Request.Context())

		resp := AnalyzerResponse{Status: string(report.Status)}

		switch report.Status {
		case health.StatusHealthy:
			resp.Models = report.Models
		case health.StatusDegraded:
			resp.Error = report.Error
		default:
			resp.Error = notResponding
		}

		c.JSON(http.StatusOK, resp)
	}
}

// AgentsHandler godoc
// @Summary Agents service health
// @Description Checks the inference backend and reports connection state
// @Tags health
// @Produce json
// @Success 200 {object} AgentsResponse
// @Router /health [get]
func AgentsHandler(checker BackendChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := checker.Check(c.Request.Context())

		if report.Healthy() {
			c.JSON(http.StatusOK, AgentsResponse{
				Status:           string(report.Status),
				OllamaConnection: connectionOK,
				AvailableModels:  report.Models,
			})

			return
		}

		c.JSON(http.StatusOK, AgentsResponse{
			Status:           string(report.Status),
			OllamaConnection: connectionError,
			Error:            report.Error,
		})
	}
}
