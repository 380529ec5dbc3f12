package service

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/models"
)

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret-at-least-32-characters-long", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	return tokens
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"Empty Username", "", "SecurePass12!@"},
		{"Empty Password", "alice", ""},
		{"Bad Username", "a", "SecurePass12!@"},
		{"Weak Password", "alice", "weak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(noopUserRepo(), newTestTokenService(t))
			_, _, err := svc.Register(context.Background(), tt.username, tt.password)
			assertAppErrorCode(t, err, models.CodeValidation)
		})
	}
}

func TestAuthServiceRegisterDuplicateUsername(t *testing.T) {
	users := noopUserRepo()
	users.createFn = func(context.Context, *models.User) error {
		return models.NewConflictError("Username already taken")
	}

	svc := NewAuthService(users, newTestTokenService(t))
	_, _, err := svc.Register(context.Background(), "alice", "SecurePass12!@")
	assertAppErrorCode(t, err, models.CodeConflict)
}

func TestAuthServiceRegisterStoresHashNotPlaintext(t *testing.T) {
	var created *models.User
	users := noopUserRepo()
	users.createFn = func(_ context.Context, user *models.User) error {
		user.ID = 1
		created = user
		return nil
	}

	svc := NewAuthService(users, newTestTokenService(t))
	token, user, err := svc.Register(context.Background(), "alice", "SecurePass12!@")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if created.Password == "SecurePass12!@" {
		t.Fatal("password must be stored hashed")
	}
	if !auth.VerifyPassword("SecurePass12!@", created.Password) {
		t.Fatal("stored credential must verify against the original password")
	}
	if token == "" || user.ID != 1 {
		t.Fatalf("expected token and user, got token=%q user=%#v", token, user)
	}
}

func TestAuthServiceLoginFailuresIndistinguishable(t *testing.T) {
	hashed, err := auth.HashPassword("SecurePass12!@")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	unknownUser := noopUserRepo()
	unknownUser.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return nil, nil
	}

	wrongPassword := noopUserRepo()
	wrongPassword.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 1, Username: "alice", Password: hashed}, nil
	}

	tokens := newTestTokenService(t)
	_, _, errUnknown := NewAuthService(unknownUser, tokens).Login(context.Background(), "ghost", "SecurePass12!@")
	_, _, errWrong := NewAuthService(wrongPassword, tokens).Login(context.Background(), "alice", "WrongPass12!@")

	assertAppErrorCode(t, errUnknown, models.CodeUnauthenticated)
	assertAppErrorCode(t, errWrong, models.CodeUnauthenticated)
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", errUnknown, errWrong)
	}
}

func TestAuthServiceLoginOK(t *testing.T) {
	hashed, err := auth.HashPassword("SecurePass12!@")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	users := noopUserRepo()
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 42, Username: "alice", Password: hashed}, nil
	}

	tokens := newTestTokenService(t)
	token, user, err := NewAuthService(users, tokens).Login(context.Background(), "alice", "SecurePass12!@")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("expected user 42, got %d", user.ID)
	}

	userID, err := tokens.Verify(token)
	if err != nil || userID != 42 {
		t.Fatalf("expected token for user 42, got id=%d err=%v", userID, err)
	}
}
