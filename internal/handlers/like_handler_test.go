package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paperball/backend/internal/models"
	"github.com/paperball/backend/internal/repositories"
	"github.com/paperball/backend/internal/services"
)

func newLikeHandler(db *gorm.DB) *LikeHandler {
	messageRepo := repositories.NewPostgresMessageRepository(db)
	return NewLikeHandler(
		repositories.NewPostgresLikeRepository(db),
		repositories.NewPostgresPaperRepository(db),
		services.NewNotificationPolicy(messageRepo),
	)
}

func toggleLike(t *testing.T, h *LikeHandler, paperID string, claims *models.JwtCustomClaims) map[string]any {
	t.Helper()
	c, rec := newJSONContext(http.MethodPost, "/api/papers/"+paperID+"/like", "", claims)
	c.SetParamNames("id")
	c.SetParamValues(paperID)
	require.NoError(t, h.ToggleLike(c))
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	h := newLikeHandler(db)
	author := createUser(t, db, "author")
	fan := createUser(t, db, "fan")
	paper := createPaper(t, db, author.ID)

	body := toggleLike(t, h, paper.ID, claimsFor(fan))
	assert.Equal(t, true, body["liked"])

	var likeCount int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	assert.EqualValues(t, 1, likeCount)

	body = toggleLike(t, h, paper.ID, claimsFor(fan))
	assert.Equal(t, false, body["liked"])

	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	assert.EqualValues(t, 0, likeCount)
}

func TestToggleLikeNotifiesAuthorOnce(t *testing.T) {
	db := setupTestDB(t)
	h := newLikeHandler(db)
	author := createUser(t, db, "author")
	fan := createUser(t, db, "fan")
	paper := createPaper(t, db, author.ID)

	toggleLike(t, h, paper.ID, claimsFor(fan))

	var message models.Message
	require.NoError(t, db.First(&message).Error)
	assert.Equal(t, models.MessageTypeLike, message.Type)
	assert.Equal(t, author.ID, message.UserID)
	assert.Equal(t, fan.ID, message.FromUserID)

	// Unliking keeps the already delivered notification in place.
	toggleLike(t, h, paper.ID, claimsFor(fan))

	var messageCount int64
	require.NoError(t, db.Model(&models.Message{}).Count(&messageCount).Error)
	assert.EqualValues(t, 1, messageCount)
}

func TestToggleLikeOwnPaperStaysSilent(t *testing.T) {
	db := setupTestDB(t)
	h := newLikeHandler(db)
	author := createUser(t, db, "author")
	paper := createPaper(t, db, author.ID)

	body := toggleLike(t, h, paper.ID, claimsFor(author))
	assert.Equal(t, true, body["liked"])

	var messageCount int64
	require.NoError(t, db.Model(&models.Message{}).Count(&messageCount).Error)
	assert.EqualValues(t, 0, messageCount)
}

func TestToggleLikeUnknownPaper(t *testing.T) {
	db := setupTestDB(t)
	h := newLikeHandler(db)
	fan := createUser(t, db, "fan")

	c, _ := newJSONContext(http.MethodPost, "/api/papers/missing/like", "", claimsFor(fan))
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.ToggleLike(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}
