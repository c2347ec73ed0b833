package health

import (
	"time"

	"fittrack-go-server/models"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

// AddWaterEntry appends one water entry and bumps the running intake. Water is
// append-only: there is no decrement or delete path.
func (s *HealthService) AddWaterEntry(userID uint, date string, p structs.WaterEntryPayload) (*models.DailyHealth, error) {
	if p.Glasses <= 0 {
		return nil, structs.NewValidationError("glasses must be positive")
	}

	tx := s.DB.Begin()
	daily, err := s.getOrCreateDaily(tx, userID, date)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	ts := p.Timestamp
	if ts == nil {
		now := time.Now()
		ts = &now
	}
	entry := models.WaterEntry{
		DailyHealthID: daily.ID,
		Glasses:       p.Glasses,
		Timestamp:     ts,
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Model(&models.DailyHealth{}).Where("id = ?", daily.ID).
		Update("water_intake", gorm.Expr("water_intake + ?", p.Glasses)).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}
