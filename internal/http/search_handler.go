package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Search(c echo.Context) error {
	results, err := h.searchService.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, results)
}
