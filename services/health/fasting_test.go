package health

import (
	"testing"
	"time"

	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundFastingHours(t *testing.T) {
	assert.Equal(t, 0, roundFastingHours(-1))
	assert.Equal(t, 0, roundFastingHours(0))
	assert.Equal(t, 1, roundFastingHours(0.2))
	assert.Equal(t, 1, roundFastingHours(0.49))
	assert.Equal(t, 1, roundFastingHours(0.5))
	assert.Equal(t, 3, roundFastingHours(2.6))
	assert.Equal(t, 2, roundFastingHours(2.4))
	assert.Equal(t, 3, roundFastingHours(2.5))
}

func TestStartFastingConflictWhileActive(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	session, err := svc.StartFasting(1, structs.FastingStartPayload{
		Date: "2026-03-10", Type: "16:8", TargetDuration: intPtr(16),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.FastingActive, session.Status())

	_, err = svc.StartFasting(1, structs.FastingStartPayload{
		Date: "2026-03-10", Type: "16:8",
	})
	require.Error(t, err)
	assert.Equal(t, enums.CodeConflict, structs.AsErrorModel(err).Code)
}

func TestStartFastingAfterCompleted(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	_, err := svc.StartFasting(1, structs.FastingStartPayload{
		Date: "2026-03-10", Type: "16:8", TargetDuration: intPtr(16),
	})
	require.NoError(t, err)
	_, err = svc.EndFasting(1, "2026-03-10")
	require.NoError(t, err)

	// the day holds one session row; a new start reuses it
	session, err := svc.StartFasting(1, structs.FastingStartPayload{
		Date: "2026-03-10", Type: "18:6", TargetDuration: intPtr(18),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.FastingActive, session.Status())
	assert.Equal(t, "18:6", session.Type)
	assert.Equal(t, 0, session.Duration)

	var count int
	require.NoError(t, db.Model(&models.FastingSession{}).Count(&count).Error)
	assert.Equal(t, 1, count)
}

func TestStartFastingValidation(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	_, err := svc.StartFasting(1, structs.FastingStartPayload{Type: "16:8"})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)

	_, err = svc.StartFasting(1, structs.FastingStartPayload{Date: "2026-03-10"})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)
}

func TestEndFastingShortSessionRoundsUp(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	_, err := svc.StartFasting(1, structs.FastingStartPayload{
		Date: "2026-03-11", Type: "16:8", TargetDuration: intPtr(16),
	})
	require.NoError(t, err)

	// ended seconds after starting: stored as 1, never 0
	session, err := svc.EndFasting(1, "2026-03-11")
	require.NoError(t, err)
	assert.Equal(t, enums.FastingCompleted, session.Status())
	assert.Equal(t, 1, session.Duration)

	_, err = svc.EndFasting(1, "2026-03-11")
	require.Error(t, err)
	assert.Equal(t, enums.CodeConflict, structs.AsErrorModel(err).Code)
}

func TestEndFastingNotFound(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	_, err := svc.EndFasting(1, "2026-03-11")
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)

	_, err = svc.AddWaterEntry(1, "2026-03-11", structs.WaterEntryPayload{Glasses: 1})
	require.NoError(t, err)
	_, err = svc.EndFasting(1, "2026-03-11")
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)
}

func TestSaveFastingSessionDerivesDuration(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	start := time.Now().Add(-9 * time.Hour)
	end := start.Add(156 * time.Minute) // 2.6h rounds to 3

	session, err := svc.SaveFastingSession(1, "2026-03-12", structs.FastingSessionPayload{
		Type: "16:8", StartTime: &start, EndTime: &end,
	})
	require.NoError(t, err)
	assert.Equal(t, enums.FastingCompleted, session.Status())
	assert.Equal(t, 3, session.Duration)

	// upsert onto the same day replaces the stored session
	session, err = svc.SaveFastingSession(1, "2026-03-12", structs.FastingSessionPayload{
		Type: "20:4", StartTime: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, "20:4", session.Type)
	assert.Equal(t, enums.FastingActive, session.Status())
	assert.Equal(t, 9, session.Duration)
}

func TestSaveFastingSessionAutoCompletesPastTarget(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	// open session that already ran past its 8h target: completes at exactly 8
	start := time.Now().Add(-9 * time.Hour)
	session, err := svc.SaveFastingSession(1, "2026-03-13", structs.FastingSessionPayload{
		Type: "16:8", StartTime: &start, TargetDuration: intPtr(8),
	})
	require.NoError(t, err)
	assert.Equal(t, enums.FastingCompleted, session.Status())
	assert.Equal(t, 8, session.Duration)
}

func TestSaveFastingSessionValidation(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	start := time.Now()
	_, err := svc.SaveFastingSession(1, "2026-03-13", structs.FastingSessionPayload{StartTime: &start})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)

	_, err = svc.SaveFastingSession(1, "2026-03-13", structs.FastingSessionPayload{Type: "16:8"})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)
}

func TestGetDailyCompletesExpiredSession(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	daily, err := svc.GetOrCreateDaily(1, "2026-03-14")
	require.NoError(t, err)

	start := time.Now().Add(-9 * time.Hour)
	target := 8
	require.NoError(t, db.Create(&models.FastingSession{
		DailyHealthID: daily.ID, Type: "16:8", StartTime: start, TargetDuration: &target,
	}).Error)

	loaded, err := svc.GetDaily(1, "2026-03-14")
	require.NoError(t, err)
	require.NotNil(t, loaded.FastingSession)
	assert.Equal(t, enums.FastingCompleted, loaded.FastingSession.Status())
	assert.Equal(t, 8, loaded.FastingSession.Duration)
}

func TestGetWeeklyCompletesExpiredSessions(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	daily, err := svc.GetOrCreateDaily(1, "2026-03-16")
	require.NoError(t, err)

	start := time.Now().Add(-9 * time.Hour)
	target := 8
	require.NoError(t, db.Create(&models.FastingSession{
		DailyHealthID: daily.ID, Type: "16:8", StartTime: start, TargetDuration: &target,
	}).Error)

	rows, err := svc.GetWeekly(1, "2026-03-16")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].FastingSession)
	assert.Equal(t, enums.FastingCompleted, rows[0].FastingSession.Status())
	assert.Equal(t, 8, rows[0].FastingSession.Duration)
}

func TestGetDailyLeavesUnexpiredSessionActive(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()
	svc := NewHealthService(db)

	_, err := svc.StartFasting(1, structs.FastingStartPayload{
		Date: "2026-03-15", Type: "16:8", TargetDuration: intPtr(16),
	})
	require.NoError(t, err)

	loaded, err := svc.GetDaily(1, "2026-03-15")
	require.NoError(t, err)
	require.NotNil(t, loaded.FastingSession)
	assert.Equal(t, enums.FastingActive, loaded.FastingSession.Status())
}
