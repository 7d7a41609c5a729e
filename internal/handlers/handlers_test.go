package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
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

func createUser(t *testing.T, db *gorm.DB, nickname string) *models.User {
	t.Helper()
	user := &models.User{Nickname: nickname, Password: "hashed", Avatar: models.DefaultAvatar}
	require.NoError(t, repositories.NewPostgresUserRepository(db).CreateUser(user))
	return user
}

func createPaper(t *testing.T, db *gorm.DB, authorID string) *models.Paper {
	t.Helper()
	paper := &models.Paper{
		Content:  "crumpled note",
		Type:     models.PaperTypeText,
		AuthorID: authorID,
	}
	require.NoError(t, repositories.NewPostgresPaperRepository(db).CreatePaper(paper))
	return paper
}

func claimsFor(user *models.User) *models.JwtCustomClaims {
	return &models.JwtCustomClaims{UserID: user.ID, Nickname: user.Nickname}
}

// newJSONContext builds an authenticated echo context around a JSON request,
// mirroring what the auth middleware does in production.
func newJSONContext(method, target, body string, claims *models.JwtCustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", claims)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return httpErr.Code
}
