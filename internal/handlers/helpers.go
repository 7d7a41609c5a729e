package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
)

// getUserClaims extracts the JWT claims stored by the auth middleware.
// Returns nil when the request is unauthenticated.
func getUserClaims(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// repoError maps repository sentinel errors to HTTP errors with the given
// message; anything unrecognized surfaces as an internal error.
func repoError(err error, message string) *echo.HTTPError {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, message)
	case errors.Is(err, repositories.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, message)
	case errors.Is(err, repositories.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, message)
	case errors.Is(err, repositories.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, message)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
