package models

import "time"

type Meal struct {
	ID            uint       `gorm:"column:id;primary_key" json:"id"`
	DailyHealthID uint       `gorm:"column:daily_health_id;index" json:"daily_health_id"`
	Type          string     `gorm:"column:type" json:"type"`
	Name          string     `gorm:"column:name" json:"name"`
	Calories      int        `gorm:"column:calories" json:"calories"`
	Carbs         float64    `gorm:"column:carbs" json:"carbs"`
	Protein       float64    `gorm:"column:protein" json:"protein"`
	Fat           float64    `gorm:"column:fat" json:"fat"`
	Timestamp     *time.Time `gorm:"column:timestamp" json:"timestamp"`
	CreatedAt     *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (m *Meal) TableName() string {
	return "meals"
}
