package models

import "time"

// Challenge is a fixed catalog entry, addressed by slug.
type Challenge struct {
	ID          uint       `gorm:"column:id;primary_key" json:"id"`
	Slug        string     `gorm:"column:slug;unique_index" json:"slug"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	Metric      string     `gorm:"column:metric" json:"metric"`
	Goal        int        `gorm:"column:goal" json:"goal"`
	StartDate   string     `gorm:"column:start_date" json:"start_date"`
	EndDate     string     `gorm:"column:end_date" json:"end_date"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (c *Challenge) TableName() string {
	return "challenges"
}
