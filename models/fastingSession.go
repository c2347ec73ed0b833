package models

import (
	"time"

	"fittrack-go-server/enums"
)

// FastingSession is one-to-one with DailyHealth. A nil EndTime means the
// session is still ACTIVE; completion happens either explicitly or lazily on
// read once the elapsed time reaches TargetDuration.
type FastingSession struct {
	ID                uint       `gorm:"column:id;primary_key" json:"id"`
	DailyHealthID     uint       `gorm:"column:daily_health_id;unique_index" json:"daily_health_id"`
	Type              string     `gorm:"column:type" json:"type"`
	StartTime         time.Time  `gorm:"column:start_time" json:"start_time"`
	EndTime           *time.Time `gorm:"column:end_time" json:"end_time"`
	Duration          int        `gorm:"column:duration" json:"duration"`
	TargetDuration    *int       `gorm:"column:target_duration" json:"target_duration"`
	EatingWindowStart *time.Time `gorm:"column:eating_window_start" json:"eating_window_start"`
	EatingWindowEnd   *time.Time `gorm:"column:eating_window_end" json:"eating_window_end"`
	CreatedAt         *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (f *FastingSession) TableName() string {
	return "fasting_sessions"
}

func (f *FastingSession) Status() string {
	if f.EndTime == nil {
		return enums.FastingActive
	}
	return enums.FastingCompleted
}
