package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paperball/backend/internal/models"
)

// setupTestDB opens an isolated in-memory database with the full schema.
// MaxOpenConns(1) keeps the pool on a single connection so every statement
// sees the same in-memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Paper{},
		&models.Comment{},
		&models.Like{},
		&models.Message{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, nickname string) *models.User {
	t.Helper()
	user := &models.User{Nickname: nickname, Password: "hashed", Avatar: models.DefaultAvatar}
	require.NoError(t, NewPostgresUserRepository(db).CreateUser(user))
	return user
}

func createTestPaper(t *testing.T, db *gorm.DB, authorID string, lat, lon float64) *models.Paper {
	t.Helper()
	paper := &models.Paper{
		Content:   "hello from " + authorID,
		Type:      models.PaperTypeText,
		AuthorID:  authorID,
		Latitude:  lat,
		Longitude: lon,
	}
	require.NoError(t, NewPostgresPaperRepository(db).CreatePaper(paper))
	return paper
}

func createTestComment(t *testing.T, db *gorm.DB, paperID, authorID string, parentID *string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		PaperID:  paperID,
		Content:  "a comment",
		AuthorID: authorID,
		ParentID: parentID,
	}
	require.NoError(t, NewPostgresCommentRepository(db).CreateComment(comment))
	return comment
}
