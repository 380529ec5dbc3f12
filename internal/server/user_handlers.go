// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me. Unlike the public profile it
// includes the caller's incoming friend requests.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	profile, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	requests, err := s.friendService.GetPendingRequests(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"user":            profile.User,
		"post_count":      profile.PostCount,
		"friends":         profile.Friends,
		"friend_requests": requests,
	})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(profile)
}

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	users, err := s.userService.ListUsers(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return c.JSON(fiber.Map{
		"users": summaries,
	})
}

// UpdateProfile handles PUT /api/users/:id. Only the bio is writable, and
// only by the profile's owner.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		CallerID: currentUserID(c),
		UserID:   id,
		Bio:      req.Bio,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}
