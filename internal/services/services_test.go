package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
)

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

func seedUser(t *testing.T, db *gorm.DB, nickname string) *models.User {
	t.Helper()
	user := &models.User{Nickname: nickname, Password: "hashed"}
	require.NoError(t, repositories.NewPostgresUserRepository(db).CreateUser(user))
	return user
}

func seedPaper(t *testing.T, db *gorm.DB, authorID string) *models.Paper {
	t.Helper()
	paper := &models.Paper{Content: "seeded", AuthorID: authorID}
	require.NoError(t, repositories.NewPostgresPaperRepository(db).CreatePaper(paper))
	return paper
}

func seedComment(t *testing.T, db *gorm.DB, paperID, authorID string, parentID *string) *models.Comment {
	t.Helper()
	comment := &models.Comment{PaperID: paperID, Content: "seeded comment", AuthorID: authorID, ParentID: parentID}
	require.NoError(t, repositories.NewPostgresCommentRepository(db).CreateComment(comment))
	return comment
}
