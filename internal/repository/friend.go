// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friendship data operations.
// Request/accept/remove are phrased as conditional single-statement writes
// whose rows-affected count tells the caller whether the transition happened,
// so racing callers never double-apply a transition.
type FriendRepository interface {
	CreateRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error)
	AcceptRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error)
	DeleteRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error)
	GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error)
	GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error)
	RemoveEdge(ctx context.Context, userID1, userID2 uint) (bool, error)
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// CreateRequest inserts a pending row for requester->addressee. The unique
// index on the pair makes concurrent duplicates collapse to one row; a false
// return means the row already existed.
func (r *friendRepository) CreateRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Exec(
		`INSERT INTO friendships (requester_id, addressee_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (requester_id, addressee_id) DO NOTHING`,
		requesterID, addresseeID, models.FriendshipStatusPending, now, now,
	)
	if result.Error != nil {
		return false, wrapStorageError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// AcceptRequest flips the pending requester->addressee row to accepted.
// The status condition makes the transition single-shot: a second accept,
// or an accept racing a reject, affects zero rows and returns false.
func (r *friendRepository) AcceptRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("requester_id = ? AND addressee_id = ? AND status = ?",
			requesterID, addresseeID, models.FriendshipStatusPending).
		Update("status", models.FriendshipStatusAccepted)
	if result.Error != nil {
		return false, wrapStorageError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// DeleteRequest removes the pending requester->addressee row if present.
func (r *friendRepository) DeleteRequest(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("requester_id = ? AND addressee_id = ? AND status = ?",
			requesterID, addresseeID, models.FriendshipStatusPending).
		Delete(&models.Friendship{})
	if result.Error != nil {
		return false, wrapStorageError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *friendRepository) GetBetween(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	var friendship models.Friendship

	// Find the row where the users are requester/addressee in either order
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No relationship exists
		}
		return nil, wrapStorageError(err)
	}
	return &friendship, nil
}

func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User

	// Find all accepted friendships for the user and select the other side of each
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.requester_id OR users.id = f.addressee_id)").
		Where("f.status = ? AND (f.requester_id = ? OR f.addressee_id = ?) AND users.id != ?",
			models.FriendshipStatusAccepted, userID, userID, userID).
		Find(&users).Error; err != nil {
		return nil, wrapStorageError(err)
	}

	return users, nil
}

func (r *friendRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship

	// Pending requests where the user is the addressee
	if err := r.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Order("created_at DESC").
		Preload("Requester").
		Find(&friendships).Error; err != nil {
		return nil, wrapStorageError(err)
	}

	return friendships, nil
}

func (r *friendRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship

	// Pending requests where the user is the requester
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Order("created_at DESC").
		Preload("Addressee").
		Find(&friendships).Error; err != nil {
		return nil, wrapStorageError(err)
	}

	return friendships, nil
}

// RemoveEdge deletes the accepted row between the two users regardless of
// direction. Returns false when no edge existed, which callers treat as a
// no-op rather than an error.
func (r *friendRepository) RemoveEdge(ctx context.Context, userID1, userID2 uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)) AND status = ?",
			userID1, userID2, userID2, userID1, models.FriendshipStatusAccepted).
		Delete(&models.Friendship{})
	if result.Error != nil {
		return false, wrapStorageError(result.Error)
	}
	return result.RowsAffected >= 1, nil
}
