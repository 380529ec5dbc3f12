// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered author on the platform. The password column
// holds a bcrypt hash and is never serialized.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Password       string         `gorm:"not null" json:"-"`
	Bio            string         `json:"bio"`
	ProfilePicture string         `json:"profile_picture"`
	CoverPhoto     string         `json:"cover_photo"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Posts          []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UserSummary is the read projection exposed in friend listings and request
// listings: identity and display fields only, never credentials.
type UserSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// Summary projects a User down to its public display fields.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}
