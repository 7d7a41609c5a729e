package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers profile mutation routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.PUT("/users/:id/avatar", h.UpdateAvatar)
	g.PUT("/users/:id/nickname", h.UpdateNickname)
}

// UpdateAvatar changes the avatar of the requesting user's own profile
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	claims := getUserClaims(c)
	userID := c.Param("id")
	if claims.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot modify another user's profile")
	}

	var req models.UpdateAvatarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userRepository.UpdateAvatar(userID, req.Avatar); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "avatar": req.Avatar})
}

// UpdateNickname renames the requesting user's own profile, rejecting
// nicknames already held by someone else
func (h *UserHandler) UpdateNickname(c echo.Context) error {
	claims := getUserClaims(c)
	userID := c.Param("id")
	if claims.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Cannot modify another user's profile")
	}

	var req models.UpdateNicknameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userRepository.UpdateNickname(userID, req.Nickname); err != nil {
		return repoError(err, "Nickname already taken")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "nickname": req.Nickname})
}
