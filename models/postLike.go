package models

import "time"

type PostLike struct {
	ID        uint       `gorm:"column:id;primary_key" json:"id"`
	PostID    uint       `gorm:"column:post_id;unique_index:idx_like_post_user" json:"post_id"`
	UserID    uint       `gorm:"column:user_id;unique_index:idx_like_post_user" json:"user_id"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName sets the insert table name for this struct type
func (p *PostLike) TableName() string {
	return "post_likes"
}
