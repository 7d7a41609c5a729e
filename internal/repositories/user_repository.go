package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByNickname(nickname string) (*models.User, error)
	IsNicknameTaken(nickname, excludeUserID string) (bool, error)
	UpdateNickname(userID, nickname string) error
	UpdateAvatar(userID, avatar string) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user. A duplicate nickname is reported as
// ErrConflict; the unique index is the authority, not the caller's pre-check.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	if user.Nickname == "" || user.Password == "" {
		return ErrInvalidArgument
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByNickname retrieves a user by their unique nickname
func (r *PostgresUserRepository) GetUserByNickname(nickname string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("nickname = ?", nickname).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// IsNicknameTaken checks whether a nickname is in use by any user other than
// excludeUserID (pass an empty string to check against everyone).
func (r *PostgresUserRepository) IsNicknameTaken(nickname, excludeUserID string) (bool, error) {
	var count int64
	q := r.db.Model(&models.User{}).Where("nickname = ?", nickname)
	if excludeUserID != "" {
		q = q.Where("id <> ?", excludeUserID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateNickname renames a user, failing with ErrConflict when the nickname
// is already held by someone else.
func (r *PostgresUserRepository) UpdateNickname(userID, nickname string) error {
	taken, err := r.IsNicknameTaken(nickname, userID)
	if err != nil {
		return err
	}
	if taken {
		return ErrConflict
	}
	err = r.db.Model(&models.User{}).Where("id = ?", userID).Update("nickname", nickname).Error
	if err != nil && isDuplicateKey(err) {
		return ErrConflict
	}
	return err
}

// UpdateAvatar changes a user's avatar URL
func (r *PostgresUserRepository) UpdateAvatar(userID, avatar string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("avatar", avatar).Error
}
