package analyze

import (
	"codeberg.org/swarmworks/server/internal/sessions"
	"github.com/gin-gonic/gin"
)

// lister may be nil when no database is configured
func RegisterRoutes(router *gin.RouterGroup, analyzer Analyzer, lister sessions.Lister) {
	analyzeGroup := router.Group("/ai/analyze")
	{
		analyzeGroup.POST("", AnalyzeHandler(analyzer))
		analyzeGroup.GET("", ListSessionsHandler(lister))
		analyzeGroup.GET("/:id", GetSessionHandler(lister))
	}
}
