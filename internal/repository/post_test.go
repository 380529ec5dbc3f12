package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPost(t *testing.T, userID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "some content", UserID: userID}
	require.NoError(t, testDB.Create(post).Error)
	return post
}

func TestPostRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(testDB)
	comments := NewCommentRepository(testDB)

	t.Run("GetOwned enforces authorship", func(t *testing.T) {
		author := createTestUser(t, "author")
		intruder := createTestUser(t, "intruder")
		post := createTestPost(t, author.ID, "mine")

		owned, err := repo.GetOwned(ctx, post.ID, author.ID)
		require.NoError(t, err)
		assert.Equal(t, post.ID, owned.ID)

		_, err = repo.GetOwned(ctx, post.ID, intruder.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("ToggleLike flips and collapses", func(t *testing.T) {
		author := createTestUser(t, "author")
		viewer := createTestUser(t, "viewer")
		post := createTestPost(t, author.ID, "likeable")

		liked, err := repo.ToggleLike(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, liked)

		count, err := repo.CountLikes(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		liked, err = repo.ToggleLike(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, liked)

		count, err = repo.CountLikes(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("GetByID computes counts for the viewer", func(t *testing.T) {
		author := createTestUser(t, "author")
		viewer := createTestUser(t, "viewer")
		bystander := createTestUser(t, "bystander")
		post := createTestPost(t, author.ID, "counted")

		_, err := repo.ToggleLike(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		require.NoError(t, comments.Create(ctx, &models.Comment{
			Content: "first", UserID: viewer.ID, PostID: post.ID,
		}))
		require.NoError(t, comments.Create(ctx, &models.Comment{
			Content: "second", UserID: author.ID, PostID: post.ID,
		}))

		got, err := repo.GetByID(ctx, post.ID, viewer.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.LikesCount)
		assert.Equal(t, 2, got.CommentsCount)
		assert.True(t, got.Liked)

		got, err = repo.GetByID(ctx, post.ID, bystander.ID)
		require.NoError(t, err)
		assert.False(t, got.Liked)
	})

	t.Run("DeleteCascade removes children", func(t *testing.T) {
		author := createTestUser(t, "author")
		viewer := createTestUser(t, "viewer")
		post := createTestPost(t, author.ID, "doomed")

		_, err := repo.ToggleLike(ctx, viewer.ID, post.ID)
		require.NoError(t, err)
		require.NoError(t, comments.Create(ctx, &models.Comment{
			Content: "gone soon", UserID: viewer.ID, PostID: post.ID,
		}))

		require.NoError(t, repo.DeleteCascade(ctx, post.ID))

		_, err = repo.GetByID(ctx, post.ID, viewer.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)

		var commentCount, likeCount int64
		require.NoError(t, testDB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount).Error)
		require.NoError(t, testDB.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeCount).Error)
		assert.Zero(t, commentCount)
		assert.Zero(t, likeCount)

		// The row is gone outright, not soft-deleted.
		err = testDB.Unscoped().First(&models.Post{}, post.ID).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("List orders newest first", func(t *testing.T) {
		author := createTestUser(t, "author")
		older := createTestPost(t, author.ID, "older")
		newer := createTestPost(t, author.ID, "newer")

		posts, err := repo.GetByUserID(ctx, author.ID, 10, 0, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, newer.ID, posts[0].ID)
		assert.Equal(t, older.ID, posts[1].ID)
	})
}
