package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
	"github.com/paperball/backend/internal/services"
)

// LikeHandler handles the like toggle on paper balls
type LikeHandler struct {
	likeRepository  repositories.LikeRepository
	paperRepository repositories.PaperRepository
	notifications   *services.NotificationPolicy
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, paperRepo repositories.PaperRepository, notifications *services.NotificationPolicy) *LikeHandler {
	return &LikeHandler{
		likeRepository:  likeRepo,
		paperRepository: paperRepo,
		notifications:   notifications,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/papers/:id/like", h.ToggleLike)
}

// ToggleLike likes a paper the user hasn't liked yet and unlikes one they
// have. Only the like edge notifies the author; unliking never retracts a
// previously sent notification.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	claims := getUserClaims(c)
	paperID := c.Param("id")

	paper, err := h.paperRepository.GetPaperByID(paperID)
	if err != nil {
		return repoError(err, "Paper not found")
	}

	hasLiked, err := h.likeRepository.HasUserLikedPaper(paperID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if hasLiked {
		if err := h.likeRepository.DeleteLike(paperID, claims.UserID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "liked": false})
	}

	like := &models.Like{PaperID: paperID, UserID: claims.UserID}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.notifications.NotifyLike(paperID, paper.AuthorID, claims.UserID)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "liked": true})
}
