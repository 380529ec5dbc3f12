package models

import "time"

// Like represents a user's like on a post. The (UserID, PostID) pair is
// unique, which is what makes concurrent like toggles collapse to a single
// row instead of double-counting.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
