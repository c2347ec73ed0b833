package health

import (
	"time"

	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

// Meal mutations adjust the parent's calories_consumed by the child's delta
// inside the same transaction, never by re-summing all children.

func (s *HealthService) AddMeal(userID uint, date string, p structs.MealPayload) (*models.DailyHealth, error) {
	if !enums.IsMealType(p.Type) {
		return nil, structs.NewValidationError("invalid meal type %q", p.Type)
	}
	if p.Name == "" {
		return nil, structs.NewValidationError("meal name is required")
	}
	if p.Calories < 0 {
		return nil, structs.NewValidationError("calories must not be negative")
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
	meal := models.Meal{
		DailyHealthID: daily.ID,
		Type:          p.Type,
		Name:          p.Name,
		Calories:      p.Calories,
		Carbs:         p.Carbs,
		Protein:       p.Protein,
		Fat:           p.Fat,
		Timestamp:     ts,
	}
	if err := tx.Create(&meal).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Model(&models.DailyHealth{}).Where("id = ?", daily.ID).
		Update("calories_consumed", gorm.Expr("calories_consumed + ?", p.Calories)).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

func (s *HealthService) UpdateMeal(userID uint, date string, mealID uint, p structs.MealPayload) (*models.DailyHealth, error) {
	if p.Type != "" && !enums.IsMealType(p.Type) {
		return nil, structs.NewValidationError("invalid meal type %q", p.Type)
	}
	if p.Calories < 0 {
		return nil, structs.NewValidationError("calories must not be negative")
	}

	tx := s.DB.Begin()
	daily, meal, err := s.findMeal(tx, userID, date, mealID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	delta := p.Calories - meal.Calories

	updates := map[string]interface{}{
		"calories": p.Calories,
		"carbs":    p.Carbs,
		"protein":  p.Protein,
		"fat":      p.Fat,
	}
	if p.Name != "" {
		updates["name"] = p.Name
	}
	if p.Type != "" {
		updates["type"] = p.Type
	}
	if p.Timestamp != nil {
		updates["timestamp"] = p.Timestamp
	}
	if err := tx.Model(&models.Meal{}).Where("id = ?", meal.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := s.adjustTotal(tx, daily.ID, "calories_consumed", daily.CaloriesConsumed, delta); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

func (s *HealthService) DeleteMeal(userID uint, date string, mealID uint) (*models.DailyHealth, error) {
	tx := s.DB.Begin()
	daily, meal, err := s.findMeal(tx, userID, date, mealID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Delete(&models.Meal{}, "id = ?", meal.ID).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := s.adjustTotal(tx, daily.ID, "calories_consumed", daily.CaloriesConsumed, -meal.Calories); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

func (s *HealthService) findMeal(tx *gorm.DB, userID uint, date string, mealID uint) (*models.DailyHealth, *models.Meal, error) {
	daily, err := s.getOrCreateDaily(tx, userID, date)
	if err != nil {
		return nil, nil, err
	}
	var meal models.Meal
	if err := tx.Where("id = ? AND daily_health_id = ?", mealID, daily.ID).First(&meal).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, structs.NewNotFoundError("meal %d not found", mealID)
		}
		return nil, nil, structs.NewInternalError(err)
	}
	return daily, &meal, nil
}

// adjustTotal applies a delta to one running total, floored at zero.
func (s *HealthService) adjustTotal(tx *gorm.DB, dailyID uint, column string, current, delta int) error {
	next := current + delta
	if next < 0 {
		next = 0
	}
	if err := tx.Model(&models.DailyHealth{}).Where("id = ?", dailyID).
		Update(column, next).Error; err != nil {
		return structs.NewInternalError(err)
	}
	return nil
}
