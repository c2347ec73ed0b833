package models

import "time"

// WaterEntry is append-only: the service exposes no delete path, water intake
// only ever accumulates within a day.
type WaterEntry struct {
	ID            uint       `gorm:"column:id;primary_key" json:"id"`
	DailyHealthID uint       `gorm:"column:daily_health_id;index" json:"daily_health_id"`
	Glasses       int        `gorm:"column:glasses" json:"glasses"`
	Timestamp     *time.Time `gorm:"column:timestamp" json:"timestamp"`
	CreatedAt     *time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName sets the insert table name for this struct type
func (w *WaterEntry) TableName() string {
	return "water_entries"
}
