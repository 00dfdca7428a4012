package app

import (
	"apcs_practice_backend/docs"
	"apcs_practice_backend/internal/config"
	"apcs_practice_backend/internal/middleware"
	"apcs_practice_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公開路由
	router.GET("/", func(ctx *gin.Context) {
		ctx.String(200, "APCS Platform API is running")
	})
	router.GET("/api/health", c.health.HealthCheck)

	// 需要登入的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		exam := authGroup.Group("/exam")
		{
			exam.GET("/paper", c.exam.GetPaper)
			exam.POST("/submit", c.exam.Submit)
		}

		ai := authGroup.Group("/ai")
		{
			ai.POST("/hint", c.ai.Hint)
			ai.POST("/generate-question", c.ai.GenerateQuestion)
			ai.POST("/generate-implementation", c.ai.GenerateImplementation)
			ai.POST("/generate-batch", c.ai.GenerateBatch)
			ai.POST("/generate-implementation-batch", c.ai.GenerateImplementationBatch)
		}
	}
}
