package models

import "time"

type User struct {
	ID            uint       `gorm:"column:id;primary_key" json:"id"`
	Email         string     `gorm:"column:email;unique_index" json:"email"`
	Name          string     `gorm:"column:name" json:"name"`
	Gender        string     `gorm:"column:gender" json:"gender"`
	Birthday      *time.Time `gorm:"column:birthday" json:"birthday"`
	HeightCm      float64    `gorm:"column:height_cm" json:"height_cm"`
	WeightKg      float64    `gorm:"column:weight_kg" json:"weight_kg"`
	ActivityLevel string     `gorm:"column:activity_level" json:"activity_level"`
	WaterGoal     int        `gorm:"column:water_goal;default:8" json:"water_goal"`
	CreatedAt     *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (u *User) TableName() string {
	return "users"
}
