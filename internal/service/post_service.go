package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	Content  string
	ImageURL string
	VideoURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    string
	Content  string
	ImageURL string
	VideoURL string
}

// LikeResult is the outcome of a like toggle: the post's like total and
// whether the caller's like is now present.
type LikeResult struct {
	Likes     int64 `json:"likes"`
	UserLiked bool  `json:"userLiked"`
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxTitleLen = 300
	const maxContentLen = 50000

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		VideoURL: in.VideoURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// UpdatePost applies non-empty fields to the caller's own post. The lookup
// is scoped to the caller, so a post owned by someone else is reported as
// missing rather than forbidden.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetOwned(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}
	if in.VideoURL != "" {
		post.VideoURL = in.VideoURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// DeletePost removes the caller's own post together with its comments and
// likes. Like UpdatePost, someone else's post looks missing.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetOwned(ctx, postID, userID)
	if err != nil {
		return err
	}
	return s.postRepo.DeleteCascade(ctx, post.ID)
}

// ToggleLike flips the caller's like on a post and returns the new state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if liked {
		observability.LikeToggles.WithLabelValues("liked").Inc()
	} else {
		observability.LikeToggles.WithLabelValues("unliked").Inc()
	}

	likes, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &LikeResult{Likes: likes, UserLiked: liked}, nil
}
