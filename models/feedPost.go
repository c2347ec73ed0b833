package models

import "time"

// FeedPost carries denormalized likes/comments counters; both are adjusted in
// the same transaction as the like/comment row so readers never see a
// half-applied pair.
type FeedPost struct {
	ID            uint          `gorm:"column:id;primary_key" json:"id"`
	UserID        uint          `gorm:"column:user_id;index" json:"user_id"`
	Content       string        `gorm:"column:content" json:"content"`
	ImageURL      string        `gorm:"column:image_url" json:"image_url"`
	Visibility    string        `gorm:"column:visibility;default:'public'" json:"visibility"`
	LikesCount    int           `gorm:"column:likes_count" json:"likes_count"`
	CommentsCount int           `gorm:"column:comments_count" json:"comments_count"`
	Comments      []PostComment `gorm:"foreignkey:PostID" json:"comments,omitempty"`
	CreatedAt     *time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (f *FeedPost) TableName() string {
	return "feed_posts"
}
