package orchestrator

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, analyzer Analyzer) {
	orchestratorGroup := router.Group("/orchestrator")
	{
		orchestratorGroup.POST("/analyze", AnalyzeHandler(analyzer))
	}
}
