package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperball/backend/internal/models"
)

func TestCreatePaperValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPaperRepository(db)
	author := createTestUser(t, db, "thrower")

	tests := []struct {
		name  string
		paper models.Paper
		want  error
	}{
		{"empty content and media", models.Paper{AuthorID: author.ID}, ErrInvalidArgument},
		{"latitude out of range", models.Paper{Content: "hi", AuthorID: author.ID, Latitude: 91}, ErrInvalidArgument},
		{"longitude out of range", models.Paper{Content: "hi", AuthorID: author.ID, Longitude: -181}, ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.paper
			assert.ErrorIs(t, repo.CreatePaper(&p), tt.want)
		})
	}

	// Media-only papers are fine; type defaults to text.
	p := models.Paper{MediaURL: "/uploads/pic.png", AuthorID: author.ID}
	require.NoError(t, repo.CreatePaper(&p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, models.PaperTypeText, p.Type)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestGetPaperByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPaperRepository(db)
	author := createTestUser(t, db, "author")
	fan := createTestUser(t, db, "fan")
	paper := createTestPaper(t, db, author.ID, 10, 20)

	createTestComment(t, db, paper.ID, fan.ID, nil)
	createTestComment(t, db, paper.ID, fan.ID, nil)
	require.NoError(t, NewPostgresLikeRepository(db).CreateLike(&models.Like{PaperID: paper.ID, UserID: fan.ID}))

	view, err := repo.GetPaperByID(paper.ID)
	require.NoError(t, err)
	assert.Equal(t, paper.ID, view.ID)
	assert.Equal(t, "author", view.AuthorNickname)
	assert.Equal(t, models.DefaultAvatar, view.AuthorAvatar)
	assert.EqualValues(t, 1, view.Likes)
	assert.EqualValues(t, 2, view.CommentCount)

	_, err = repo.GetPaperByID("no-such-paper")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNearbyRadiusFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPaperRepository(db)
	author := createTestUser(t, db, "geo")

	// Roughly 556 m and 2224 m from the origin along the equator.
	near := createTestPaper(t, db, author.ID, 0, 0.005)
	far := createTestPaper(t, db, author.ID, 0, 0.02)

	papers, err := repo.ListNearby(0, 0, 1000)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, near.ID, papers[0].ID)
	assert.InDelta(t, 556, papers[0].Distance, 1)
	nearDistance := papers[0].Distance

	// A wide enough radius picks up both.
	papers, err = repo.ListNearby(0, 0, 3000)
	require.NoError(t, err)
	assert.Len(t, papers, 2)

	// The boundary is inclusive: a radius of exactly the paper's distance
	// still returns it.
	papers, err = repo.ListNearby(0, 0, nearDistance)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, near.ID, papers[0].ID)

	_ = far
}

func TestListNearbyCountsAreDerived(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPaperRepository(db)
	author := createTestUser(t, db, "counted")
	fan := createTestUser(t, db, "counter")
	paper := createTestPaper(t, db, author.ID, 0, 0)

	likeRepo := NewPostgresLikeRepository(db)
	require.NoError(t, likeRepo.CreateLike(&models.Like{PaperID: paper.ID, UserID: fan.ID}))
	createTestComment(t, db, paper.ID, fan.ID, nil)

	papers, err := repo.ListNearby(0, 0, 100)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.EqualValues(t, 1, papers[0].Likes)
	assert.EqualValues(t, 1, papers[0].CommentCount)

	// Deleting the like is immediately visible; nothing is cached.
	require.NoError(t, likeRepo.DeleteLike(paper.ID, fan.ID))
	papers, err = repo.ListNearby(0, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 0, papers[0].Likes)
}

func TestListByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPaperRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	first := createTestPaper(t, db, alice.ID, 1, 1)
	// Force distinct timestamps so the recency ordering is deterministic.
	db.Model(&models.Paper{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour))
	second := createTestPaper(t, db, alice.ID, 2, 2)
	createTestPaper(t, db, bob.ID, 3, 3)

	papers, err := repo.ListByAuthor(alice.ID)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	assert.Equal(t, second.ID, papers[0].ID)
	assert.Equal(t, first.ID, papers[1].ID)
}

func TestListCommentedByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPaperRepository(db)
	author := createTestUser(t, db, "writer")
	commenter := createTestUser(t, db, "commenter")

	commented := createTestPaper(t, db, author.ID, 0, 0)
	createTestPaper(t, db, author.ID, 5, 5) // untouched

	// Two comments on the same paper still yield one distinct row.
	createTestComment(t, db, commented.ID, commenter.ID, nil)
	createTestComment(t, db, commented.ID, commenter.ID, nil)

	papers, err := repo.ListCommentedByUser(commenter.ID)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, commented.ID, papers[0].ID)
	assert.EqualValues(t, 2, papers[0].CommentCount)
}
