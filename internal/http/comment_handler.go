package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	"taskflow.com/taskflow/internal/http/validators"
)

func (h *Handler) CreateComment(c echo.Context) error {
	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return fail(c, err)
	}

	comment, err := h.commentService.Create(c.Request().Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *Handler) ListComments(c echo.Context) error {
	var taskID int64
	if raw := c.QueryParam("taskId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid taskId")
		}
		taskID = id
	}

	comments, err := h.commentService.ListByTask(c.Request().Context(), taskID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), commentID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}
