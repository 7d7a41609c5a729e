package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/models"
)

// DefaultMessageLimit caps the notification feed size.
const DefaultMessageLimit = 50

// MessageRepository defines the interface for the append-only notification log
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetMessageByID(id string) (*models.Message, error)
	ListForUser(userID string, limit int) ([]models.MessageView, error)
	MarkRead(messageID string) error
	CountUnread(userID string) (int64, error)
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// CreateMessage appends a notification row, assigning its ID and timestamp
func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	message.ID = uuid.NewString()
	message.CreatedAt = time.Now()
	return r.db.Create(message).Error
}

// GetMessageByID retrieves a single message row
func (r *PostgresMessageRepository) GetMessageByID(id string) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// messageRow is the flat scan target for the joined feed query.
type messageRow struct {
	ID             string
	Type           string
	Content        string
	IsRead         bool
	CreatedAt      time.Time
	FromUserID     string
	FromNickname   string
	FromAvatar     string
	PaperID        string
	PaperContent   string
	PaperType      string
	CommentID      *string
	CommentContent *string
}

// ListForUser retrieves a user's notifications newest first, each joined with
// the actor's nickname/avatar, the related paper preview and, when present,
// the related comment.
func (r *PostgresMessageRepository) ListForUser(userID string, limit int) ([]models.MessageView, error) {
	if limit <= 0 || limit > DefaultMessageLimit {
		limit = DefaultMessageLimit
	}

	var rows []messageRow
	err := r.db.Model(&models.Message{}).
		Select(`messages.id, messages.type, messages.content, messages.is_read,
			messages.created_at, messages.from_user_id,
			actors.nickname AS from_nickname, actors.avatar AS from_avatar,
			messages.paper_id, papers.content AS paper_content, papers.type AS paper_type,
			messages.comment_id, comments.content AS comment_content`).
		Joins("JOIN users actors ON actors.id = messages.from_user_id").
		Joins("JOIN papers ON papers.id = messages.paper_id").
		Joins("LEFT JOIN comments ON comments.id = messages.comment_id").
		Where("messages.user_id = ?", userID).
		Order("messages.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.MessageView, 0, len(rows))
	for _, row := range rows {
		view := models.MessageView{
			ID:        row.ID,
			Type:      row.Type,
			Content:   row.Content,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
			FromUser: models.MessageActor{
				ID:       row.FromUserID,
				Nickname: row.FromNickname,
				Avatar:   row.FromAvatar,
			},
			RelatedPaper: models.MessagePaper{
				ID:      row.PaperID,
				Content: row.PaperContent,
				Type:    row.PaperType,
			},
		}
		if row.CommentID != nil && row.CommentContent != nil {
			view.RelatedComment = &models.MessageComment{
				ID:      *row.CommentID,
				Content: *row.CommentContent,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// MarkRead flips a message's read flag; idempotent for already-read rows.
// Ownership is checked by the caller against the fetched row.
func (r *PostgresMessageRepository) MarkRead(messageID string) error {
	return r.db.Model(&models.Message{}).Where("id = ?", messageID).Update("is_read", true).Error
}

// CountUnread returns the number of unread messages for a user
func (r *PostgresMessageRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}
