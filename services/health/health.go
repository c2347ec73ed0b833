package health

import (
	"time"

	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/services/trackLog"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

const dateLayout = "2006-01-02"

// HealthService owns the per-user, per-day aggregate and keeps its running
// totals consistent with the child rows. All multi-step writes run inside a
// transaction; concurrency control beyond that is the store's unique index on
// (user_id, date).
type HealthService struct {
	DB *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{DB: db}
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// getOrCreateDaily returns the daily row for (userID, date), creating a zeroed
// one on first write. A uniqueness violation on create means another request
// won the race, so the existing row is re-fetched. Pre-existing duplicate rows
// are reconciled by keeping the oldest and dropping the rest together with
// their children.
func (s *HealthService) getOrCreateDaily(tx *gorm.DB, userID uint, date string) (*models.DailyHealth, error) {
	if !validDate(date) {
		return nil, structs.NewValidationError("invalid date %q, want YYYY-MM-DD", date)
	}

	var rows []models.DailyHealth
	if err := tx.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}

	if len(rows) == 0 {
		row := models.DailyHealth{UserID: userID, Date: date, WaterGoal: 8}
		if err := tx.Create(&row).Error; err != nil {
			if !services.IsDuplicateKeyError(err) {
				return nil, structs.NewInternalError(err)
			}
			// lost the creation race, the winner's row is the one we want
			if err := tx.Where("user_id = ? AND date = ?", userID, date).
				Order("created_at asc, id asc").First(&row).Error; err != nil {
				return nil, structs.NewInternalError(err)
			}
		}
		return &row, nil
	}

	if len(rows) > 1 {
		trackLog.Error("duplicate daily rows detected, keeping oldest", true)
		ids := make([]uint, 0, len(rows)-1)
		for _, dup := range rows[1:] {
			ids = append(ids, dup.ID)
		}
		if err := s.dropDailyRows(tx, ids); err != nil {
			return nil, structs.NewInternalError(err)
		}
	}

	return &rows[0], nil
}

func (s *HealthService) dropDailyRows(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var workoutIDs []uint
	if err := tx.Model(&models.Workout{}).Where("daily_health_id IN (?)", ids).
		Pluck("id", &workoutIDs).Error; err != nil {
		return err
	}
	if len(workoutIDs) > 0 {
		if err := tx.Where("workout_id IN (?)", workoutIDs).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id IN (?)", workoutIDs).Delete(&models.LocationPoint{}).Error; err != nil {
			return err
		}
	}
	for _, child := range []interface{}{&models.Meal{}, &models.WaterEntry{}, &models.Workout{}, &models.FastingSession{}} {
		if err := tx.Where("daily_health_id IN (?)", ids).Delete(child).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN (?)", ids).Delete(&models.DailyHealth{}).Error
}

// loadDaily fetches one aggregate with all children attached.
func (s *HealthService) loadDaily(id uint) (*models.DailyHealth, error) {
	var row models.DailyHealth
	err := s.DB.
		Preload("Meals").
		Preload("WaterEntries").
		Preload("Workouts.Exercises").
		Preload("Workouts.LocationPoints", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp asc")
		}).
		Preload("FastingSession").
		Where("id = ?", id).First(&row).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("daily record %d not found", id)
		}
		return nil, structs.NewInternalError(err)
	}
	return &row, nil
}

// GetOrCreateDaily is the mutation entry point: it guarantees a parent row
// exists before children are attached.
func (s *HealthService) GetOrCreateDaily(userID uint, date string) (*models.DailyHealth, error) {
	row, err := s.getOrCreateDaily(s.DB, userID, date)
	if err != nil {
		return nil, err
	}
	return s.loadDaily(row.ID)
}

// GetDaily returns the aggregate for the date, completing an expired fasting
// session opportunistically before returning. 404 when no data was ever
// recorded for that day.
func (s *HealthService) GetDaily(userID uint, date string) (*models.DailyHealth, error) {
	if !validDate(date) {
		return nil, structs.NewValidationError("invalid date %q, want YYYY-MM-DD", date)
	}
	var row models.DailyHealth
	err := s.DB.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc, id asc").First(&row).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("no health data for %s", date)
		}
		return nil, structs.NewInternalError(err)
	}
	if err := s.completeExpiredForDaily(row.ID); err != nil {
		return nil, err
	}
	return s.loadDaily(row.ID)
}

// GetWeekly returns the aggregates of the 7-day window starting at startDate,
// with the same opportunistic fasting completion per day. Days without data
// are omitted.
func (s *HealthService) GetWeekly(userID uint, startDate string) ([]models.DailyHealth, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, structs.NewValidationError("invalid start date %q, want YYYY-MM-DD", startDate)
	}
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(dateLayout))
	}

	var rows []models.DailyHealth
	if err := s.DB.Where("user_id = ? AND date IN (?)", userID, dates).
		Order("date asc").Find(&rows).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}

	result := make([]models.DailyHealth, 0, len(rows))
	for _, row := range rows {
		if err := s.completeExpiredForDaily(row.ID); err != nil {
			return nil, err
		}
		loaded, err := s.loadDaily(row.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, *loaded)
	}
	return result, nil
}

// UpsertDailyTotals applies the totals of POST /health/daily onto the daily
// row, creating it when needed (race-safe, duplicate-reconciling).
func (s *HealthService) UpsertDailyTotals(userID uint, p structs.DailyTotalsPayload) (*models.DailyHealth, error) {
	if p.Date == "" {
		return nil, structs.NewValidationError("date is required")
	}
	if p.WaterGoal != nil && *p.WaterGoal < 8 {
		return nil, structs.NewValidationError("water goal must be at least 8")
	}

	tx := s.DB.Begin()
	daily, err := s.getOrCreateDaily(tx, userID, p.Date)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	updates := map[string]interface{}{}
	if p.CaloriesConsumed != nil {
		updates["calories_consumed"] = clampNonNegative(*p.CaloriesConsumed)
	}
	if p.CaloriesBurned != nil {
		updates["calories_burned"] = clampNonNegative(*p.CaloriesBurned)
	}
	if p.Steps != nil {
		updates["steps"] = clampNonNegative(*p.Steps)
	}
	if p.WaterIntake != nil {
		updates["water_intake"] = clampNonNegative(*p.WaterIntake)
	}
	if p.WaterGoal != nil {
		updates["water_goal"] = *p.WaterGoal
	}
	if len(updates) > 0 {
		if err := tx.Model(&models.DailyHealth{}).Where("id = ?", daily.ID).
			Updates(updates).Error; err != nil {
			tx.Rollback()
			return nil, structs.NewInternalError(err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.loadDaily(daily.ID)
}

// PurgeDaily removes every daily record of one user together with all
// children. The only delete path for daily aggregates; audit-logged.
func (s *HealthService) PurgeDaily(userID uint) error {
	var ids []uint
	if err := s.DB.Model(&models.DailyHealth{}).Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		return structs.NewInternalError(err)
	}
	if len(ids) == 0 {
		return nil
	}
	tx := s.DB.Begin()
	if err := s.dropDailyRows(tx, ids); err != nil {
		tx.Rollback()
		return structs.NewInternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return structs.NewInternalError(err)
	}
	_ = services.InsertActivityLog(s.DB, "health.purge", map[string]interface{}{
		"user_id": userID,
		"records": len(ids),
	})
	return nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
