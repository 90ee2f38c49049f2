package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter 配置所有 API 端点并应用中间件
func NewRouter(h *Handler, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	router.Use(SetRequestID())
	router.Use(Logger(log))
	router.Use(ErrorHandler(log))

	api := router.Group("/api")
	{
		// 渲染 - POST /api/render, POST /api/render/markdown
		renderGroup := api.Group("/render")
		{
			renderGroup.POST("", h.Render)
			renderGroup.POST("/markdown", h.RenderMarkdown)
		}

		// 题库 - GET /api/quizzes, GET /api/quizzes/:id/rendered
		quizGroup := api.Group("/quizzes")
		{
			quizGroup.GET("", h.ListQuizzes)
			quizGroup.GET("/:id/rendered", h.RenderQuiz)
		}

		// 健康检查 - GET /api/health
		api.GET("/health", h.Health)
	}

	return router
}
