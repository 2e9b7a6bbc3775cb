package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/markabahub/backend/internal/middleware"
	"gorm.io/gorm"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 if absent
func getUserIDFromContext(c echo.Context) uint {
	return middleware.UserIDFromContext(c)
}

// paramUint parses a numeric path parameter
func paramUint(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// repoError maps a repository failure to the HTTP taxonomy: missing records
// become 404, unique-index losers become 409, anything else 500.
func repoError(err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return echo.NewHTTPError(http.StatusConflict, "Record already exists")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
