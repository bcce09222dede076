package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	"taskflow.com/taskflow/internal/http/validators"
	model "taskflow.com/taskflow/internal/models"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return fail(c, err)
	}

	task, err := h.taskService.Create(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var projectID int64
	if raw := c.QueryParam("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid projectId")
		}
		projectID = id
	}

	tasks, err := h.taskService.ListByProject(c.Request().Context(), projectID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) ListUserTasks(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.Update(c.Request().Context(), taskID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskStatusRequest(&req); err != nil {
		return fail(c, err)
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), taskID, model.Status(req.Status))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), taskID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}

func (h *Handler) DuplicateTask(c echo.Context) error {
	taskID, err := pathID(c, "taskId")
	if err != nil {
		return err
	}

	task, err := h.taskService.Duplicate(c.Request().Context(), taskID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}
