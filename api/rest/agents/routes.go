package agents

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, runner Runner) {
	router.GET("/", RootHandler)

	agentGroup := router.Group("/agent")
	{
		agentGroup.POST("/:type", AgentHandler(runner))
	}
}
