package models

import "time"

// UserFollow is a directed subscription from one user to another.
//
// The composite unique index keeps the edge set duplicate-free under
// concurrent writers; irreflexivity (no self-follow) is a service-level rule.
type UserFollow struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_user_follows_pair" json:"user_id"`
	FollowedUserID uint      `gorm:"not null;uniqueIndex:idx_user_follows_pair" json:"followed_user_id"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	User         User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FollowedUser User `gorm:"foreignKey:FollowedUserID" json:"followed_user,omitempty"`
}

// TableName specifies the table name for GORM
func (UserFollow) TableName() string {
	return "user_follows"
}
