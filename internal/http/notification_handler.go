package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
)

func userIDQuery(c echo.Context) (int64, error) {
	raw := c.QueryParam("userId")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
	}
	return id, nil
}

func (h *Handler) ListNotifications(c echo.Context) error {
	userID, err := userIDQuery(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c, "notificationId")
	if err != nil {
		return err
	}

	notification, err := h.notificationService.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, notification)
}

func (h *Handler) MarkAllNotificationsRead(c echo.Context) error {
	var req dto.MarkAllReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	if err := h.notificationService.MarkAllAsRead(c.Request().Context(), req.UserID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "All notifications marked as read"})
}

func (h *Handler) DeleteNotification(c echo.Context) error {
	id, err := pathID(c, "notificationId")
	if err != nil {
		return err
	}

	if err := h.notificationService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification deleted successfully"})
}

func (h *Handler) UnreadNotificationCount(c echo.Context) error {
	userID, err := userIDQuery(c)
	if err != nil {
		return err
	}

	count, err := h.notificationService.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}
