package models

import "time"

type Workout struct {
	ID                  uint            `gorm:"column:id;primary_key" json:"id"`
	DailyHealthID       uint            `gorm:"column:daily_health_id;index" json:"daily_health_id"`
	Name                string          `gorm:"column:name" json:"name"`
	Type                string          `gorm:"column:type" json:"type"`
	TotalCaloriesBurned int             `gorm:"column:total_calories_burned" json:"total_calories_burned"`
	Distance            float64         `gorm:"column:distance" json:"distance"`
	AvgSpeed            float64         `gorm:"column:avg_speed" json:"avg_speed"`
	MaxSpeed            float64         `gorm:"column:max_speed" json:"max_speed"`
	Duration            int             `gorm:"column:duration" json:"duration"`
	Exercises           []Exercise      `gorm:"foreignkey:WorkoutID" json:"exercises"`
	LocationPoints      []LocationPoint `gorm:"foreignkey:WorkoutID" json:"location_points"`
	CreatedAt           *time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           *time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (w *Workout) TableName() string {
	return "workouts"
}
