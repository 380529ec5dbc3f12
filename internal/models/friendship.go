// Package models contains data structures for the application's domain models.
package models

import "time"

// FriendshipStatus represents the status of a friendship row.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a directed, not-yet-answered friend request.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an established friend edge.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

// Friendship is a single row per user pair. A pending row is a friend
// request stored against its addressee; an accepted row is the symmetric
// friend edge itself, so both halves of the edge exist exactly when the row
// does. The unique index on (requester_id, addressee_id) is what suppresses
// concurrent duplicate requests at the storage layer.
type Friendship struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"requester_id"`
	AddresseeID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair" json:"addressee_id"`
	Status      FriendshipStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"addressee,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// FriendRequest is the read projection of a pending friendship returned by
// request listings: the requester's display fields and when it was sent.
type FriendRequest struct {
	ID        uint        `json:"id"`
	From      UserSummary `json:"from"`
	CreatedAt time.Time   `json:"created_at"`
}
