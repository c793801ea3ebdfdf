package http

import (
	"github.com/gin-gonic/gin"

	"rtodo/internal/adapter/http/handlers"
	"rtodo/internal/adapter/http/middleware"
	"rtodo/pkg/nonce"
)

func RegisterRoutes(
	r *gin.Engine,
	authSecret string,
	nonces *nonce.Source,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	nonceHandler *handlers.NonceHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authSecret))
	{
		authed.GET("/nonce", nonceHandler.IssueNonce)
		authed.GET("/tasks", taskHandler.ListTasks)
		authed.GET("/tasks/public", taskHandler.ListPublicTasks)

		authed.POST("/tasks",
			middleware.RequireNonce(nonces, saveTaskAction),
			taskHandler.CreateTask,
		)
		authed.PUT("/tasks/:id",
			middleware.RequireNonce(nonces, saveTaskAction),
			taskHandler.UpdateTask,
		)
		authed.DELETE("/tasks/:id",
			middleware.RequireNonce(nonces, deleteTaskAction),
			taskHandler.DeleteTask,
		)
		authed.POST("/tasks/:id/complete",
			middleware.RequireNonce(nonces, completeTaskAction),
			taskHandler.CompleteTask,
		)
	}
}

func saveTaskAction(*gin.Context) string {
	return middleware.ActionSaveTask
}

func deleteTaskAction(c *gin.Context) string {
	return middleware.ActionDeleteTask(c.Param("id"))
}

func completeTaskAction(c *gin.Context) string {
	return middleware.ActionCompleteTask(c.Param("id"))
}
