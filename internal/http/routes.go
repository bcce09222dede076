package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskflow.com/taskflow/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/user/:userId", h.ListUserTasks)
	e.PATCH("/tasks/:taskId", h.UpdateTask)
	e.PATCH("/tasks/:taskId/status", h.UpdateTaskStatus)
	e.DELETE("/tasks/:taskId", h.DeleteTask)
	e.POST("/tasks/:taskId/duplicate", h.DuplicateTask)

	e.POST("/comments", h.CreateComment)
	e.GET("/comments", h.ListComments)
	e.DELETE("/comments/:commentId", h.DeleteComment)

	e.GET("/search", h.Search)

	e.GET("/notifications", h.ListNotifications)
	e.PATCH("/notifications/read-all", h.MarkAllNotificationsRead)
	e.PATCH("/notifications/:notificationId/read", h.MarkNotificationRead)
	e.DELETE("/notifications/:notificationId", h.DeleteNotification)
	e.GET("/notifications/unread-count", h.UnreadNotificationCount)

	e.GET("/projects", h.ListProjects)
	e.POST("/projects", h.CreateProject)

	e.GET("/users", h.ListUsers)
	e.GET("/users/:userId", h.GetUser)

	e.GET("/teams", h.ListTeams)
	e.POST("/teams", h.CreateTeam)
}
