package models

import "time"

type Exercise struct {
	ID        uint       `gorm:"column:id;primary_key" json:"id"`
	WorkoutID uint       `gorm:"column:workout_id;index" json:"workout_id"`
	Name      string     `gorm:"column:name" json:"name"`
	Sets      int        `gorm:"column:sets" json:"sets"`
	Reps      int        `gorm:"column:reps" json:"reps"`
	Weight    float64    `gorm:"column:weight" json:"weight"`
	Calories  int        `gorm:"column:calories" json:"calories"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (e *Exercise) TableName() string {
	return "exercises"
}
