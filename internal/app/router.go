package app

import (
	"coursehub_backend/docs"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/middleware"
	"coursehub_backend/internal/model"
	"coursehub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// public routes, no session required
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// everything below requires a session
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, s.auth))
	{
		authGroup.GET("/session", c.auth.GetSession)
		authGroup.POST("/logout", c.auth.Logout)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)

		authGroup.GET("/courses", c.course.ListCourses)
		authGroup.GET("/courses/:id", c.course.GetCourse)
		authGroup.POST("/courses/:id/enroll", c.enrollment.Enroll)
		authGroup.PATCH("/courses/:id/progress", c.enrollment.BumpProgress)
		authGroup.POST("/sections/:id/complete", c.enrollment.CompleteSection)

		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.POST("/courses", c.admin.CreateCourse)
			admin.PUT("/courses/:id", c.admin.UpdateCourse)
			admin.DELETE("/courses/:id", c.admin.DeleteCourse)
			admin.POST("/courses/:id/sections", c.admin.AddSection)
			admin.PUT("/sections/:id", c.admin.UpdateSection)
			admin.DELETE("/sections/:id", c.admin.DeleteSection)
			admin.POST("/upload/thumbnail", c.admin.UploadThumbnail)
			admin.POST("/upload/video", c.admin.UploadVideo)
		}
	}
}
