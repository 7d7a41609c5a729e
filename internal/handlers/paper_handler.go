package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
)

// DefaultNearbyRadiusMeters applies when a nearby search omits the radius.
// The radius unit for this API is meters everywhere.
const DefaultNearbyRadiusMeters = 1000

// PaperHandler handles HTTP requests related to paper balls
type PaperHandler struct {
	paperRepository   repositories.PaperRepository
	commentRepository repositories.CommentRepository
	userRepository    repositories.UserRepository
}

// NewPaperHandler creates a new PaperHandler
func NewPaperHandler(paperRepo repositories.PaperRepository, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *PaperHandler {
	return &PaperHandler{
		paperRepository:   paperRepo,
		commentRepository: commentRepo,
		userRepository:    userRepo,
	}
}

// RegisterPaperRoutes registers paper-related routes
func (h *PaperHandler) RegisterPaperRoutes(g *echo.Group) {
	g.POST("/papers", h.CreatePaper)
	g.GET("/papers/nearby", h.ListNearby)
	g.GET("/papers/:id", h.GetPaper)
	g.GET("/users/:id/papers", h.ListByAuthor)
	g.GET("/users/:id/commented-papers", h.ListCommentedByUser)
}

// CreatePaper throws a new paper ball at the requester's location
func (h *PaperHandler) CreatePaper(c echo.Context) error {
	claims := getUserClaims(c)

	var req models.CreatePaperRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	paper := &models.Paper{
		Content:   req.Content,
		Type:      req.Type,
		MediaURL:  req.MediaURL,
		AuthorID:  claims.UserID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}
	if err := h.paperRepository.CreatePaper(paper); err != nil {
		return repoError(err, "Paper needs content or media and a valid location")
	}

	avatar := models.DefaultAvatar
	if author, err := h.userRepository.GetUserByID(claims.UserID); err == nil {
		avatar = author.Avatar
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"paper": models.PaperView{
			ID:             paper.ID,
			Content:        paper.Content,
			Type:           paper.Type,
			MediaURL:       paper.MediaURL,
			AuthorID:       paper.AuthorID,
			AuthorNickname: claims.Nickname,
			AuthorAvatar:   avatar,
			Latitude:       paper.Latitude,
			Longitude:      paper.Longitude,
			CreatedAt:      paper.CreatedAt,
		},
	})
}

// ListNearby searches for paper balls within a radius (meters) of a point
func (h *PaperHandler) ListNearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid longitude")
	}

	radius := float64(DefaultNearbyRadiusMeters)
	if raw := c.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid radius")
		}
	}

	papers, err := h.paperRepository.ListNearby(latitude, longitude, radius)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "papers": papers})
}

// GetPaper retrieves a paper ball with its full comment list
func (h *PaperHandler) GetPaper(c echo.Context) error {
	paperID := c.Param("id")

	paper, err := h.paperRepository.GetPaperByID(paperID)
	if err != nil {
		return repoError(err, "Paper not found")
	}

	comments, err := h.commentRepository.GetCommentsByPaperID(paperID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"paper": models.PaperDetail{
			PaperView: *paper,
			Comments:  comments,
		},
	})
}

// ListByAuthor retrieves the papers thrown by a user
func (h *PaperHandler) ListByAuthor(c echo.Context) error {
	papers, err := h.paperRepository.ListByAuthor(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "papers": papers})
}

// ListCommentedByUser retrieves the distinct papers a user has commented on
func (h *PaperHandler) ListCommentedByUser(c echo.Context) error {
	papers, err := h.paperRepository.ListCommentedByUser(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "papers": papers})
}
