package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

func newTestServer(t *testing.T, userRepo *MockUserRepository) *Server {
	t.Helper()
	tokens, err := auth.NewTokenService("test_secret", 0)
	require.NoError(t, err)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		tokens:   tokens,
		userRepo: userRepo,
	}
	s.authService = service.NewAuthService(userRepo, tokens)
	return s
}

func TestRegister(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := newTestServer(t, mockRepo)

	app.Post("/register", s.Register)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"username": "testuser",
				"password": "Password123!",
			},
			mockSetup: func() {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate username",
			body: map[string]string{
				"username": "taken",
				"password": "Password123!",
			},
			mockSetup: func() {
				mockRepo.On("Create", mock.Anything, mock.Anything).
					Return(models.NewConflictError("Username already taken")).Once()
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Weak password",
			body: map[string]string{
				"username": "testuser",
				"password": "short",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid username",
			body: map[string]string{
				"username": "bad name!",
				"password": "Password123!",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)
	s := newTestServer(t, mockRepo)

	app.Post("/login", s.Login)

	hashed, err := auth.HashPassword("Password123!")
	require.NoError(t, err)
	stored := &models.User{ID: 1, Username: "testuser", Password: hashed}

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
		expectToken    bool
	}{
		{
			name: "Success",
			body: map[string]string{
				"username": "testuser",
				"password": "Password123!",
			},
			mockSetup: func() {
				mockRepo.On("GetByUsername", mock.Anything, "testuser").Return(stored, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectToken:    true,
		},
		{
			name: "Wrong password",
			body: map[string]string{
				"username": "testuser",
				"password": "WrongPassword1!",
			},
			mockSetup: func() {
				mockRepo.On("GetByUsername", mock.Anything, "testuser").Return(stored, nil).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unknown username",
			body: map[string]string{
				"username": "nobody",
				"password": "Password123!",
			},
			mockSetup: func() {
				mockRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, nil).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectToken {
				var parsed AuthResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
				assert.NotEmpty(t, parsed.Token)
				require.NotNil(t, parsed.User)
				assert.Equal(t, "testuser", parsed.User.Username)
			}
		})
	}
}

func TestAuthRequired(t *testing.T) {
	mockRepo := new(MockUserRepository)
	s := newTestServer(t, mockRepo)

	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": currentUserID(c)})
	})

	token, err := s.tokens.Issue(42)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"Valid token", "Bearer " + token, http.StatusOK},
		{"Missing header", "", http.StatusUnauthorized},
		{"Not a bearer token", "Basic abc123", http.StatusUnauthorized},
		{"Garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var parsed map[string]uint
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
				assert.Equal(t, uint(42), parsed["user_id"])
			}
		})
	}
}
