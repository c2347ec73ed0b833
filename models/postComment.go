package models

import "time"

type PostComment struct {
	ID        uint       `gorm:"column:id;primary_key" json:"id"`
	PostID    uint       `gorm:"column:post_id;index" json:"post_id"`
	UserID    uint       `gorm:"column:user_id" json:"user_id"`
	Content   string     `gorm:"column:content" json:"content"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (p *PostComment) TableName() string {
	return "post_comments"
}
