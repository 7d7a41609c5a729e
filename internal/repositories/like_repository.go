package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/models"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(paperID, userID string) error
	HasUserLikedPaper(paperID, userID string) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike persists a like. Two concurrent toggles can both pass the
// existence check; the unique index on (paper_id, user_id) rejects the
// loser, and that conflict means the like is already applied, not a failure.
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	like.ID = uuid.NewString()
	like.CreatedAt = time.Now()
	if err := r.db.Create(like).Error; err != nil {
		if isDuplicateKey(err) {
			return nil
		}
		return err
	}
	return nil
}

// DeleteLike removes a user's like from a paper
func (r *PostgresLikeRepository) DeleteLike(paperID, userID string) error {
	res := r.db.Where("paper_id = ? AND user_id = ?", paperID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasUserLikedPaper checks if a user has liked a specific paper
func (r *PostgresLikeRepository) HasUserLikedPaper(paperID, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("paper_id = ? AND user_id = ?", paperID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
