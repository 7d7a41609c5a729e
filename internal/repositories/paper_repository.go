package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/geo"
	"github.com/paperball/backend/internal/models"
)

// PaperRepository defines the interface for paper ball data operations.
// Like and comment counts are always aggregated from the child tables at
// read time so they cannot drift from the underlying rows.
type PaperRepository interface {
	CreatePaper(paper *models.Paper) error
	GetPaperByID(id string) (*models.PaperView, error)
	ListNearby(latitude, longitude, radiusMeters float64) ([]models.PaperView, error)
	ListByAuthor(authorID string) ([]models.PaperView, error)
	ListCommentedByUser(userID string) ([]models.PaperView, error)
}

// PostgresPaperRepository implements PaperRepository for PostgreSQL
type PostgresPaperRepository struct {
	db *gorm.DB
}

// NewPostgresPaperRepository creates a new PostgresPaperRepository
func NewPostgresPaperRepository(db *gorm.DB) *PostgresPaperRepository {
	return &PostgresPaperRepository{db: db}
}

const paperViewColumns = `papers.id, papers.content, papers.type, papers.media_url,
	papers.author_id, users.nickname AS author_nickname, users.avatar AS author_avatar,
	papers.latitude, papers.longitude,
	COUNT(DISTINCT likes.id) AS likes,
	COUNT(DISTINCT comments.id) AS comment_count,
	papers.created_at`

// paperViewQuery builds the joined read-model query shared by every list and
// detail operation.
func (r *PostgresPaperRepository) paperViewQuery() *gorm.DB {
	return r.db.Model(&models.Paper{}).
		Select(paperViewColumns).
		Joins("LEFT JOIN users ON users.id = papers.author_id").
		Joins("LEFT JOIN likes ON likes.paper_id = papers.id").
		Joins("LEFT JOIN comments ON comments.paper_id = papers.id").
		Group("papers.id, users.nickname, users.avatar")
}

// CreatePaper validates and persists a new paper ball, assigning its ID and
// timestamp. A paper needs either text content or a media URL, plus a valid
// location; validation happens before any write.
func (r *PostgresPaperRepository) CreatePaper(paper *models.Paper) error {
	if paper.Content == "" && paper.MediaURL == "" {
		return ErrInvalidArgument
	}
	if paper.Latitude < -90 || paper.Latitude > 90 ||
		paper.Longitude < -180 || paper.Longitude > 180 {
		return ErrInvalidArgument
	}
	if paper.Type == "" {
		paper.Type = models.PaperTypeText
	}
	paper.ID = uuid.NewString()
	paper.CreatedAt = time.Now()
	return r.db.Create(paper).Error
}

// GetPaperByID retrieves a single paper with joined author details and
// aggregated counts
func (r *PostgresPaperRepository) GetPaperByID(id string) (*models.PaperView, error) {
	var view models.PaperView
	err := r.paperViewQuery().Where("papers.id = ?", id).Take(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &view, nil
}

// ListNearby loads every paper with its aggregates and keeps those within
// radiusMeters of the query point, annotated with the computed distance.
// This is a deliberate brute-force scan; there is no spatial index.
func (r *PostgresPaperRepository) ListNearby(latitude, longitude, radiusMeters float64) ([]models.PaperView, error) {
	var all []models.PaperView
	err := r.paperViewQuery().Order("papers.created_at DESC").Scan(&all).Error
	if err != nil {
		return nil, err
	}

	nearby := make([]models.PaperView, 0, len(all))
	for _, paper := range all {
		d := geo.Distance(latitude, longitude, paper.Latitude, paper.Longitude)
		if d <= radiusMeters {
			paper.Distance = d
			nearby = append(nearby, paper)
		}
	}
	return nearby, nil
}

// ListByAuthor retrieves the papers thrown by a user, newest first
func (r *PostgresPaperRepository) ListByAuthor(authorID string) ([]models.PaperView, error) {
	var views []models.PaperView
	err := r.paperViewQuery().
		Where("papers.author_id = ?", authorID).
		Order("papers.created_at DESC").
		Scan(&views).Error
	return views, err
}

// ListCommentedByUser retrieves the distinct papers carrying at least one
// comment authored by the user, newest first
func (r *PostgresPaperRepository) ListCommentedByUser(userID string) ([]models.PaperView, error) {
	var views []models.PaperView
	err := r.paperViewQuery().
		Joins("INNER JOIN comments uc ON uc.paper_id = papers.id").
		Where("uc.author_id = ?", userID).
		Order("papers.created_at DESC").
		Scan(&views).Error
	return views, err
}
