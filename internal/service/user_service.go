package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	friendRepo repository.FriendRepository
}

// Profile is a user together with their post count and friends.
type Profile struct {
	User      *models.User         `json:"user"`
	PostCount int64                `json:"post_count"`
	Friends   []models.UserSummary `json:"friends"`
}

type UpdateProfileInput struct {
	CallerID uint
	UserID   uint
	Bio      string
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, friendRepo repository.FriendRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo, friendRepo: friendRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetProfile(ctx context.Context, id uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.postRepo.CountByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	friends, err := s.friendRepo.GetFriends(ctx, id)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(friends))
	for _, f := range friends {
		summaries = append(summaries, f.Summary())
	}
	return &Profile{User: user, PostCount: count, Friends: summaries}, nil
}

// UpdateProfile changes a user's bio. Profiles are public, so a missing
// target reads as NotFound before ownership is checked; only the owner may
// write, and only the bio field is writable here.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	const maxBioLen = 500

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if in.CallerID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own profile")
	}

	if len(in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}
	user.Bio = in.Bio

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetProfilePicture stores a new profile picture URL for the caller.
func (s *UserService) SetProfilePicture(ctx context.Context, userID uint, url string) (*models.User, error) {
	return s.setPhoto(ctx, userID, func(u *models.User) { u.ProfilePicture = url })
}

// SetCoverPhoto stores a new cover photo URL for the caller.
func (s *UserService) SetCoverPhoto(ctx context.Context, userID uint, url string) (*models.User, error) {
	return s.setPhoto(ctx, userID, func(u *models.User) { u.CoverPhoto = url })
}

func (s *UserService) setPhoto(ctx context.Context, userID uint, apply func(*models.User)) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	apply(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
