package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperball/backend/internal/models"
)

func TestGetCommentForPaperScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)
	author := createTestUser(t, db, "scoper")
	paperA := createTestPaper(t, db, author.ID, 0, 0)
	paperB := createTestPaper(t, db, author.ID, 1, 1)
	comment := createTestComment(t, db, paperA.ID, author.ID, nil)

	found, err := repo.GetCommentForPaper(comment.ID, paperA.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.ID, found.ID)

	// The comment exists, but not on that paper.
	_, err = repo.GetCommentForPaper(comment.ID, paperB.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetCommentForPaper("missing", paperA.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCommentsByPaperIDOrderedOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)
	author := createTestUser(t, db, "orderer")
	paper := createTestPaper(t, db, author.ID, 0, 0)

	first := createTestComment(t, db, paper.ID, author.ID, nil)
	db.Model(&models.Comment{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Minute))
	second := createTestComment(t, db, paper.ID, author.ID, &first.ID)

	views, err := repo.GetCommentsByPaperID(paper.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID, views[0].ID)
	assert.Equal(t, second.ID, views[1].ID)
	assert.Equal(t, "orderer", views[0].AuthorNickname)
	require.NotNil(t, views[1].ParentID)
	assert.Equal(t, first.ID, *views[1].ParentID)
}

func TestCreateCommentRequiresContent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresCommentRepository(db)
	author := createTestUser(t, db, "empty")
	paper := createTestPaper(t, db, author.ID, 0, 0)

	err := repo.CreateComment(&models.Comment{PaperID: paper.ID, AuthorID: author.ID})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
