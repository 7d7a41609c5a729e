package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentForPaper(id, paperID string) (*models.Comment, error)
	GetCommentsByPaperID(paperID string) ([]models.CommentView, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment persists a new comment, assigning its ID and timestamp.
// ParentID must already be the effective (normalized) parent.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	if comment.Content == "" {
		return ErrInvalidArgument
	}
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}

// GetCommentForPaper retrieves a comment scoped to a paper; a comment that
// exists but belongs to a different paper is reported as ErrNotFound.
func (r *PostgresCommentRepository) GetCommentForPaper(id, paperID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ? AND paper_id = ?", id, paperID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPaperID retrieves all comments of a paper with joined author
// details, oldest first. Clients rebuild the two-level tree by grouping on
// parentId.
func (r *PostgresCommentRepository) GetCommentsByPaperID(paperID string) ([]models.CommentView, error) {
	var views []models.CommentView
	err := r.db.Model(&models.Comment{}).
		Select(`comments.id, comments.content, comments.author_id,
			users.nickname AS author_nickname, users.avatar AS author_avatar,
			comments.parent_id, comments.created_at`).
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.paper_id = ?", paperID).
		Order("comments.created_at ASC").
		Scan(&views).Error
	return views, err
}
