package service

import (
	"context"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"
)

// AuthService implements registration and login on top of the user store
// and the token service.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, models.NewValidationError("Username and password are required")
	}
	if err := validation.ValidateUsername(username); err != nil {
		return "", nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", nil, models.NewValidationError(err.Error())
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return token, user, nil
}

// Login verifies credentials and returns a signed token. Unknown usernames
// and wrong passwords produce the same error, so callers cannot probe which
// usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, models.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !auth.VerifyPassword(password, user.Password) {
		observability.AuthFailures.WithLabelValues("bad_credentials").Inc()
		return "", nil, models.NewUnauthenticatedError("Invalid username or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return token, user, nil
}
