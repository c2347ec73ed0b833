package health

import (
	"fittrack-go-server/models"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

func (s *HealthService) AddWorkout(userID uint, date string, p structs.WorkoutPayload) (*models.DailyHealth, error) {
	if p.Name == "" {
		return nil, structs.NewValidationError("workout name is required")
	}
	if p.TotalCaloriesBurned < 0 {
		return nil, structs.NewValidationError("total calories burned must not be negative")
	}

	tx := s.DB.Begin()
	daily, err := s.getOrCreateDaily(tx, userID, date)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	workout := models.Workout{
		DailyHealthID:       daily.ID,
		Name:                p.Name,
		Type:                p.Type,
		TotalCaloriesBurned: p.TotalCaloriesBurned,
		Distance:            p.Distance,
		AvgSpeed:            p.AvgSpeed,
		MaxSpeed:            p.MaxSpeed,
		Duration:            p.Duration,
	}
	if err := tx.Create(&workout).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := s.createWorkoutChildren(tx, workout.ID, p); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&models.DailyHealth{}).Where("id = ?", daily.ID).
		Update("calories_burned", gorm.Expr("calories_burned + ?", p.TotalCaloriesBurned)).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

// UpdateWorkout replaces the exercise and track children wholesale; only the
// calories total is delta-adjusted.
func (s *HealthService) UpdateWorkout(userID uint, date string, workoutID uint, p structs.WorkoutPayload) (*models.DailyHealth, error) {
	if p.TotalCaloriesBurned < 0 {
		return nil, structs.NewValidationError("total calories burned must not be negative")
	}

	tx := s.DB.Begin()
	daily, workout, err := s.findWorkout(tx, userID, date, workoutID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	delta := p.TotalCaloriesBurned - workout.TotalCaloriesBurned

	updates := map[string]interface{}{
		"name":                  p.Name,
		"type":                  p.Type,
		"total_calories_burned": p.TotalCaloriesBurned,
		"distance":              p.Distance,
		"avg_speed":             p.AvgSpeed,
		"max_speed":             p.MaxSpeed,
		"duration":              p.Duration,
	}
	if err := tx.Model(&models.Workout{}).Where("id = ?", workout.ID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}

	// delete-then-recreate, children are never patched incrementally
	if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.LocationPoint{}).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := s.createWorkoutChildren(tx, workout.ID, p); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := s.adjustTotal(tx, daily.ID, "calories_burned", daily.CaloriesBurned, delta); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

func (s *HealthService) DeleteWorkout(userID uint, date string, workoutID uint) (*models.DailyHealth, error) {
	tx := s.DB.Begin()
	daily, workout, err := s.findWorkout(tx, userID, date, workoutID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.LocationPoint{}).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := tx.Delete(&models.Workout{}, "id = ?", workout.ID).Error; err != nil {
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
	if err := s.adjustTotal(tx, daily.ID, "calories_burned", daily.CaloriesBurned, -workout.TotalCaloriesBurned); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

func (s *HealthService) createWorkoutChildren(tx *gorm.DB, workoutID uint, p structs.WorkoutPayload) error {
	for _, e := range p.Exercises {
		exercise := models.Exercise{
			WorkoutID: workoutID,
			Name:      e.Name,
			Sets:      e.Sets,
			Reps:      e.Reps,
			Weight:    e.Weight,
			Calories:  e.Calories,
		}
		if err := tx.Create(&exercise).Error; err != nil {
			return structs.NewInternalError(err)
		}
	}
	for _, lp := range p.LocationPoints {
		point := models.LocationPoint{
			WorkoutID: workoutID,
			Latitude:  lp.Latitude,
			Longitude: lp.Longitude,
			Altitude:  lp.Altitude,
			Timestamp: lp.Timestamp,
		}
		if err := tx.Create(&point).Error; err != nil {
			return structs.NewInternalError(err)
		}
	}
	return nil
}

func (s *HealthService) findWorkout(tx *gorm.DB, userID uint, date string, workoutID uint) (*models.DailyHealth, *models.Workout, error) {
	daily, err := s.getOrCreateDaily(tx, userID, date)
	if err != nil {
		return nil, nil, err
	}
	var workout models.Workout
	if err := tx.Where("id = ? AND daily_health_id = ?", workoutID, daily.ID).First(&workout).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, structs.NewNotFoundError("workout %d not found", workoutID)
		}
		return nil, nil, structs.NewInternalError(err)
	}
	return daily, &workout, nil
}
