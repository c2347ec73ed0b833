package models

import "time"

type LocationPoint struct {
	ID        uint       `gorm:"column:id;primary_key" json:"id"`
	WorkoutID uint       `gorm:"column:workout_id;index" json:"workout_id"`
	Latitude  float64    `gorm:"column:latitude" json:"latitude"`
	Longitude float64    `gorm:"column:longitude" json:"longitude"`
	Altitude  float64    `gorm:"column:altitude" json:"altitude"`
	Timestamp time.Time  `gorm:"column:timestamp" json:"timestamp"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName sets the insert table name for this struct type
func (l *LocationPoint) TableName() string {
	return "location_points"
}
