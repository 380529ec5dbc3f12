// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/friends/requests/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.SendFriendRequest(c.UserContext(), currentUserID(c), targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Friend request sent",
	})
}

// AcceptFriendRequest handles POST /api/friends/requests/:userId/accept.
// The :userId is the requester whose pending request the caller accepts.
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	requesterID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.AcceptFriendRequest(c.UserContext(), currentUserID(c), requesterID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Friend request accepted",
	})
}

// RejectFriendRequest handles POST /api/friends/requests/:userId/reject.
// Rejecting a request that does not exist still succeeds.
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	requesterID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.RejectFriendRequest(c.UserContext(), currentUserID(c), requesterID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Friend request rejected",
	})
}

// RemoveFriend handles DELETE /api/friends/:userId
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.friendService.RemoveFriend(c.UserContext(), currentUserID(c), targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Friend removed",
	})
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.GetFriends(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	summaries := make([]models.UserSummary, 0, len(friends))
	for _, f := range friends {
		summaries = append(summaries, f.Summary())
	}
	return c.JSON(fiber.Map{
		"friends": summaries,
	})
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.GetPendingRequests(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"requests": requests,
	})
}

// GetSentRequests handles GET /api/friends/requests/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	friendships, err := s.friendService.GetSentRequests(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	sent := make([]fiber.Map, 0, len(friendships))
	for _, f := range friendships {
		sent = append(sent, fiber.Map{
			"id":         f.ID,
			"to":         f.Addressee.Summary(),
			"created_at": f.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{
		"requests": sent,
	})
}

// GetFriendshipStatus handles GET /api/friends/status/:userId
func (s *Server) GetFriendshipStatus(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	status, err := s.friendService.GetFriendshipStatus(c.UserContext(), currentUserID(c), targetID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"status": status,
	})
}
