package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
	"github.com/paperball/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	paperRepository   repositories.PaperRepository
	userRepository    repositories.UserRepository
	normalizer        *services.ThreadNormalizer
	notifications     *services.NotificationPolicy
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(
	commentRepo repositories.CommentRepository,
	paperRepo repositories.PaperRepository,
	userRepo repositories.UserRepository,
	normalizer *services.ThreadNormalizer,
	notifications *services.NotificationPolicy,
) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		paperRepository:   paperRepo,
		userRepository:    userRepo,
		normalizer:        normalizer,
		notifications:     notifications,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/papers/:id/comments", h.CreateComment)
}

// CreateComment creates a comment or reply on a paper ball. The requested
// parent is normalized so the stored thread never exceeds two levels, then
// the matching notification fires, never to the comment's own author.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims := getUserClaims(c)
	paperID := c.Param("id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	paper, err := h.paperRepository.GetPaperByID(paperID)
	if err != nil {
		return repoError(err, "Paper not found")
	}

	effectiveParentID, addressee, err := h.normalizer.Resolve(paperID, req.ParentID)
	if err != nil {
		return repoError(err, "Parent comment not found")
	}

	comment := &models.Comment{
		PaperID:  paperID,
		Content:  req.Content,
		AuthorID: claims.UserID,
		ParentID: effectiveParentID,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return repoError(err, "Comment content must not be empty")
	}

	// Fan-out is best-effort; the comment above is already committed.
	if addressee != nil {
		h.notifications.NotifyReply(addressee, comment)
	} else {
		h.notifications.NotifyComment(paper.AuthorID, comment)
	}

	avatar := models.DefaultAvatar
	if author, err := h.userRepository.GetUserByID(claims.UserID); err == nil {
		avatar = author.Avatar
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"comment": models.CommentView{
			ID:             comment.ID,
			Content:        comment.Content,
			AuthorID:       comment.AuthorID,
			AuthorNickname: claims.Nickname,
			AuthorAvatar:   avatar,
			ParentID:       comment.ParentID,
			CreatedAt:      comment.CreatedAt,
		},
	})
}
