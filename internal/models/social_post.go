package models

import "time"

type SocialPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"not null" json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	EventID   *uint     `gorm:"index" json:"eventId"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Comments  int       `gorm:"not null;default:0" json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostWithAuthor pairs a post with its authoring user. User is nil when the
// author row no longer exists; callers must treat that as a valid post.
type PostWithAuthor struct {
	SocialPost
	User *User `json:"user"`
}
