package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/services"
)

type Handler struct {
	taskService         *services.TaskService
	commentService      *services.CommentService
	notificationService *services.NotificationService
	searchService       *services.SearchService
	projectService      *services.ProjectService
	userService         *services.UserService
	teamService         *services.TeamService
}

func NewHandler(
	taskService *services.TaskService,
	commentService *services.CommentService,
	notificationService *services.NotificationService,
	searchService *services.SearchService,
	projectService *services.ProjectService,
	userService *services.UserService,
	teamService *services.TeamService,
) *Handler {
	return &Handler{
		taskService:         taskService,
		commentService:      commentService,
		notificationService: notificationService,
		searchService:       searchService,
		projectService:      projectService,
		userService:         userService,
		teamService:         teamService,
	}
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// fail renders a service error with the status its exception type carries.
func fail(c echo.Context, err error) error {
	return c.JSON(apperrors.StatusCode(err), echo.Map{"message": err.Error()})
}
