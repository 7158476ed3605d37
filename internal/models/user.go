package models

import "time"

// User rows are created and refreshed from identity-provider session claims;
// IsAdmin is only ever set directly in the database.
type User struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Email           *string   `gorm:"uniqueIndex" json:"email"`
	FirstName       *string   `json:"firstName"`
	LastName        *string   `json:"lastName"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	IsAdmin         bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
