package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// FriendService provides friend-request and friendship business logic.
// All transitions are keyed by user IDs, and the decisive check always
// happens inside a single conditional statement in the repository, so two
// racing calls cannot both observe the old state and both apply.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendFriendRequest sends a friend request from the caller to the target user.
func (s *FriendService) SendFriendRequest(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		observability.FriendRequestOutcomes.WithLabelValues("send", "rejected_self").Inc()
		return models.NewValidationError("Cannot send friend request to yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return err
	}

	existing, err := s.friendRepo.GetBetween(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Status == models.FriendshipStatusAccepted {
			observability.FriendRequestOutcomes.WithLabelValues("send", "already_friends").Inc()
			return models.NewAlreadyFriendsError()
		}
		// A pending row in either direction suppresses a new request. For
		// the mutual-pending case the target should accept instead of
		// both sides holding crossed requests.
		observability.FriendRequestOutcomes.WithLabelValues("send", "duplicate").Inc()
		return models.NewDuplicateRequestError()
	}

	created, err := s.friendRepo.CreateRequest(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if !created {
		// Lost a race with an identical request; same answer as above.
		observability.FriendRequestOutcomes.WithLabelValues("send", "duplicate").Inc()
		return models.NewDuplicateRequestError()
	}

	observability.FriendRequestOutcomes.WithLabelValues("send", "ok").Inc()
	return nil
}

// AcceptFriendRequest accepts the pending request sent by requesterID to the
// caller. The accepted row is the friend edge for both users at once.
func (s *FriendService) AcceptFriendRequest(ctx context.Context, userID, requesterID uint) error {
	if userID == requesterID {
		return models.NewValidationError("Cannot accept a friend request from yourself")
	}

	accepted, err := s.friendRepo.AcceptRequest(ctx, requesterID, userID)
	if err != nil {
		return err
	}
	if !accepted {
		observability.FriendRequestOutcomes.WithLabelValues("accept", "no_such_request").Inc()
		return models.NewNoSuchRequestError()
	}

	observability.FriendRequestOutcomes.WithLabelValues("accept", "ok").Inc()
	return nil
}

// RejectFriendRequest drops the pending request from requesterID to the
// caller. Rejecting an absent request is a no-op, so retried or raced
// rejections all land on the same terminal state.
func (s *FriendService) RejectFriendRequest(ctx context.Context, userID, requesterID uint) error {
	deleted, err := s.friendRepo.DeleteRequest(ctx, requesterID, userID)
	if err != nil {
		return err
	}
	if deleted {
		observability.FriendRequestOutcomes.WithLabelValues("reject", "ok").Inc()
	} else {
		observability.FriendRequestOutcomes.WithLabelValues("reject", "noop").Inc()
	}
	return nil
}

// RemoveFriend deletes the friend edge between the caller and the target.
// Removing a non-friend is a no-op, but the target must exist.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, targetUserID uint) error {
	if userID == targetUserID {
		return models.NewValidationError("Cannot remove yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return err
	}

	removed, err := s.friendRepo.RemoveEdge(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if removed {
		observability.FriendRequestOutcomes.WithLabelValues("remove", "ok").Inc()
	} else {
		observability.FriendRequestOutcomes.WithLabelValues("remove", "noop").Inc()
	}
	return nil
}

// GetFriends returns the user's friends.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// GetPendingRequests returns incoming requests as read projections.
func (s *FriendService) GetPendingRequests(ctx context.Context, userID uint) ([]models.FriendRequest, error) {
	friendships, err := s.friendRepo.GetPendingRequests(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests := make([]models.FriendRequest, 0, len(friendships))
	for _, f := range friendships {
		requests = append(requests, models.FriendRequest{
			ID:        f.ID,
			From:      f.Requester.Summary(),
			CreatedAt: f.CreatedAt,
		})
	}
	return requests, nil
}

// GetSentRequests returns the caller's outgoing pending requests.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetSentRequests(ctx, userID)
}

// GetFriendshipStatus reports the relationship between two users:
// "none", "friends", "pending_sent" or "pending_received".
func (s *FriendService) GetFriendshipStatus(ctx context.Context, userID, targetUserID uint) (string, error) {
	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return "", err
	}

	friendship, err := s.friendRepo.GetBetween(ctx, userID, targetUserID)
	if err != nil {
		return "", err
	}

	switch {
	case friendship == nil:
		return "none", nil
	case friendship.Status == models.FriendshipStatusAccepted:
		return "friends", nil
	case friendship.RequesterID == userID:
		return "pending_sent", nil
	default:
		return "pending_received", nil
	}
}
