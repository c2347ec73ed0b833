package models

import "time"

// Friendship rows gate the friends-visibility filter on the feed. A row in
// either direction with status accepted counts.
type Friendship struct {
	ID        uint       `gorm:"column:id;primary_key" json:"id"`
	UserID    uint       `gorm:"column:user_id;unique_index:idx_friend_pair" json:"user_id"`
	FriendID  uint       `gorm:"column:friend_id;unique_index:idx_friend_pair" json:"friend_id"`
	Status    string     `gorm:"column:status;default:'pending'" json:"status"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (f *Friendship) TableName() string {
	return "friendships"
}
