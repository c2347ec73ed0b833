package health

import (
	"time"

	"fittrack-go-server/models"
	"fittrack-go-server/services"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
)

// Fasting state machine: NoSession -> ACTIVE -> COMPLETED. A session is ACTIVE
// while end_time is null. There is no background timer; expiry against
// target_duration is detected opportunistically on the read paths, so an
// ACTIVE session that is never read again stays ACTIVE in storage. That is an
// accepted tradeoff, not a bug to fix here.

// roundFastingHours converts elapsed hours to the stored integer duration.
// Anything under half an hour rounds up to 1 so a short session is not
// recorded as 0 and effectively lost; everything else rounds to nearest.
func roundFastingHours(elapsed float64) int {
	if elapsed <= 0 {
		return 0
	}
	if elapsed < 0.5 {
		return 1
	}
	return services.Round(elapsed)
}

// StartFasting begins a session for the date. Conflict while one is ACTIVE; a
// COMPLETED session is replaced in place (the daily row holds at most one).
func (s *HealthService) StartFasting(userID uint, p structs.FastingStartPayload) (*models.FastingSession, error) {
	if p.Date == "" {
		return nil, structs.NewValidationError("date is required")
	}
	if p.Type == "" {
		return nil, structs.NewValidationError("fasting type is required")
	}

	tx := s.DB.Begin()
	daily, err := s.getOrCreateDaily(tx, userID, p.Date)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	var existing models.FastingSession
	err = tx.Where("daily_health_id = ?", daily.ID).First(&existing).Error
	switch {
	case err == nil && existing.EndTime == nil:
		tx.Rollback()
		return nil, structs.NewConflictError("a fasting session is already active for %s", p.Date)
	case err == nil:
		// completed session on that day, start over in the same row
		updates := map[string]interface{}{
			"type":                p.Type,
			"start_time":          now,
			"end_time":            nil,
			"duration":            0,
			"target_duration":     p.TargetDuration,
			"eating_window_start": p.EatingWindowStart,
			"eating_window_end":   p.EatingWindowEnd,
		}
		if err := tx.Model(&models.FastingSession{}).Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			tx.Rollback()
			return nil, structs.NewInternalError(err)
		}
		if err := tx.Commit().Error; err != nil {
			return nil, structs.NewInternalError(err)
		}
		return s.findSession(daily.ID)
	case gorm.IsRecordNotFoundError(err):
		session := models.FastingSession{
			DailyHealthID:     daily.ID,
			Type:              p.Type,
			StartTime:         now,
			TargetDuration:    p.TargetDuration,
			EatingWindowStart: p.EatingWindowStart,
			EatingWindowEnd:   p.EatingWindowEnd,
		}
		if err := tx.Create(&session).Error; err != nil {
			tx.Rollback()
			if services.IsDuplicateKeyError(err) {
				// concurrent start won the unique index race
				return nil, structs.NewConflictError("a fasting session is already active for %s", p.Date)
			}
			return nil, structs.NewInternalError(err)
		}
		if err := tx.Commit().Error; err != nil {
			return nil, structs.NewInternalError(err)
		}
		return &session, nil
	default:
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}
}

// EndFasting completes the ACTIVE session of the date.
func (s *HealthService) EndFasting(userID uint, date string) (*models.FastingSession, error) {
	if !validDate(date) {
		return nil, structs.NewValidationError("invalid date %q, want YYYY-MM-DD", date)
	}

	var daily models.DailyHealth
	err := s.DB.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at asc, id asc").First(&daily).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("no health data for %s", date)
		}
		return nil, structs.NewInternalError(err)
	}

	var session models.FastingSession
	if err := s.DB.Where("daily_health_id = ?", daily.ID).First(&session).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("no fasting session for %s", date)
		}
		return nil, structs.NewInternalError(err)
	}
	if session.EndTime != nil {
		return nil, structs.NewConflictError("fasting session for %s already completed", date)
	}

	now := time.Now()
	duration := roundFastingHours(now.Sub(session.StartTime).Hours())
	if session.TargetDuration != nil && duration > *session.TargetDuration {
		duration = *session.TargetDuration
	}
	updates := map[string]interface{}{
		"end_time": now,
		"duration": duration,
	}
	if err := s.DB.Model(&models.FastingSession{}).Where("id = ?", session.ID).
		Updates(updates).Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.findSession(daily.ID)
}

// SaveFastingSession is the upsert variant of POST /health/fasting. Duration
// is derived server-side: a still-open session past its target auto-completes
// with the duration capped at the target.
func (s *HealthService) SaveFastingSession(userID uint, date string, p structs.FastingSessionPayload) (*models.FastingSession, error) {
	if p.Type == "" {
		return nil, structs.NewValidationError("fasting type is required")
	}
	if p.StartTime == nil {
		return nil, structs.NewValidationError("start time is required")
	}

	tx := s.DB.Begin()
	daily, err := s.getOrCreateDaily(tx, userID, date)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	endTime := p.EndTime
	var duration int
	switch {
	case p.EndTime != nil:
		duration = roundFastingHours(p.EndTime.Sub(*p.StartTime).Hours())
	case p.TargetDuration != nil && now.Sub(*p.StartTime).Hours() >= float64(*p.TargetDuration):
		endTime = &now
		duration = *p.TargetDuration
	default:
		duration = roundFastingHours(now.Sub(*p.StartTime).Hours())
	}
	if p.TargetDuration != nil && duration > *p.TargetDuration {
		duration = *p.TargetDuration
	}

	values := map[string]interface{}{
		"type":                p.Type,
		"start_time":          *p.StartTime,
		"end_time":            endTime,
		"duration":            duration,
		"target_duration":     p.TargetDuration,
		"eating_window_start": p.EatingWindowStart,
		"eating_window_end":   p.EatingWindowEnd,
	}

	var existing models.FastingSession
	err = tx.Where("daily_health_id = ?", daily.ID).First(&existing).Error
	switch {
	case err == nil:
		if err := tx.Model(&models.FastingSession{}).Where("id = ?", existing.ID).
			Updates(values).Error; err != nil {
			tx.Rollback()
			return nil, structs.NewInternalError(err)
		}
	case gorm.IsRecordNotFoundError(err):
		session := models.FastingSession{
			DailyHealthID:     daily.ID,
			Type:              p.Type,
			StartTime:         *p.StartTime,
			EndTime:           endTime,
			Duration:          duration,
			TargetDuration:    p.TargetDuration,
			EatingWindowStart: p.EatingWindowStart,
			EatingWindowEnd:   p.EatingWindowEnd,
		}
		if err := tx.Create(&session).Error; err != nil {
			if !services.IsDuplicateKeyError(err) {
				tx.Rollback()
				return nil, structs.NewInternalError(err)
			}
			// racing upsert created the row first, apply ours on top
			if err := tx.Model(&models.FastingSession{}).Where("daily_health_id = ?", daily.ID).
				Updates(values).Error; err != nil {
				tx.Rollback()
				return nil, structs.NewInternalError(err)
			}
		}
	default:
		tx.Rollback()
		return nil, structs.NewInternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, structs.NewInternalError(err)
	}
	return s.findSession(daily.ID)
}

// completeExpiredForDaily transitions the day's session to COMPLETED when its
// elapsed time has reached the target, capping the stored duration at the
// target. Called on every aggregate read.
func (s *HealthService) completeExpiredForDaily(dailyID uint) error {
	var session models.FastingSession
	err := s.DB.Where("daily_health_id = ?", dailyID).First(&session).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil
		}
		return structs.NewInternalError(err)
	}
	if session.EndTime != nil || session.TargetDuration == nil {
		return nil
	}
	if time.Since(session.StartTime).Hours() < float64(*session.TargetDuration) {
		return nil
	}
	now := time.Now()
	updates := map[string]interface{}{
		"end_time": now,
		"duration": *session.TargetDuration,
	}
	if err := s.DB.Model(&models.FastingSession{}).Where("id = ?", session.ID).
		Updates(updates).Error; err != nil {
		return structs.NewInternalError(err)
	}
	return nil
}

func (s *HealthService) findSession(dailyID uint) (*models.FastingSession, error) {
	var session models.FastingSession
	if err := s.DB.Where("daily_health_id = ?", dailyID).First(&session).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, structs.NewNotFoundError("fasting session not found")
		}
		return nil, structs.NewInternalError(err)
	}
	return &session, nil
}
