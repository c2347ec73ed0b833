package models

import "time"

// DailyHealth is the per-user, per-calendar-day aggregate. The running totals
// are kept consistent with the owned children by the health service; they are
// never re-summed on read.
type DailyHealth struct {
	ID               uint            `gorm:"column:id;primary_key" json:"id"`
	UserID           uint            `gorm:"column:user_id;unique_index:idx_daily_user_date" json:"user_id"`
	Date             string          `gorm:"column:date;unique_index:idx_daily_user_date" json:"date"`
	CaloriesConsumed int             `gorm:"column:calories_consumed" json:"calories_consumed"`
	CaloriesBurned   int             `gorm:"column:calories_burned" json:"calories_burned"`
	Steps            int             `gorm:"column:steps" json:"steps"`
	WaterIntake      int             `gorm:"column:water_intake" json:"water_intake"`
	WaterGoal        int             `gorm:"column:water_goal;default:8" json:"water_goal"`
	Meals            []Meal          `gorm:"foreignkey:DailyHealthID" json:"meals"`
	WaterEntries     []WaterEntry    `gorm:"foreignkey:DailyHealthID" json:"water_entries"`
	Workouts         []Workout       `gorm:"foreignkey:DailyHealthID" json:"workouts"`
	FastingSession   *FastingSession `gorm:"foreignkey:DailyHealthID" json:"fasting_session"`
	CreatedAt        *time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        *time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (d *DailyHealth) TableName() string {
	return "daily_health_records"
}
