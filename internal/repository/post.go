// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetOwned(ctx context.Context, id uint, userID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	DeleteCascade(ctx context.Context, id uint) error
	ToggleLike(ctx context.Context, userID, postID uint) (bool, error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
	CountByAuthor(ctx context.Context, userID uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return wrapStorageError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post

	var err error
	if currentUserID == 0 {
		// Anonymous reads share a cache entry; liked is always false for them.
		key := cache.PostKey(id)
		err = cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
			return r.applyPostDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				First(&post, id).Error
		})
	} else {
		err = r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&post, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, wrapStorageError(err)
	}
	return &post, nil
}

// GetOwned fetches a post only when userID is its author. A missing post and
// someone else's post produce the same NotFound, so callers cannot probe for
// the existence of posts they do not own.
func (r *postRepository) GetOwned(ctx context.Context, id uint, userID uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, wrapStorageError(err)
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, wrapStorageError(err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, wrapStorageError(err)
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return wrapStorageError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

// DeleteCascade removes a post with its comments and likes in one transaction,
// so comments never outlive their post.
func (r *postRepository) DeleteCascade(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return wrapStorageError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// ToggleLike flips the caller's like on a post and reports the resulting
// state. The insert is ON CONFLICT DO NOTHING on the (user_id, post_id)
// unique pair: if it lands the caller just liked the post; if it conflicts
// a like already existed, so it is removed instead.
func (r *postRepository) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	insert := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID, time.Now(),
	)
	if insert.Error != nil {
		return false, wrapStorageError(insert.Error)
	}
	if insert.RowsAffected == 1 {
		cache.InvalidatePost(ctx, postID)
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error; err != nil {
		return false, wrapStorageError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return false, nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, wrapStorageError(err)
	}
	return count, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, wrapStorageError(err)
	}
	return count, nil
}
