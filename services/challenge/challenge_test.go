package challenge

import (
	"testing"

	"fittrack-go-server/database"
	"fittrack-go-server/enums"
	"fittrack-go-server/models"
	"fittrack-go-server/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*ChallengeService, *gorm.DB) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)
	require.NoError(t, database.Migrate(db))

	svc := NewChallengeService(db)
	require.NoError(t, svc.SeedDefaults())
	return svc, db
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	defer db.Close()

	require.NoError(t, svc.SeedDefaults())

	var count int
	require.NoError(t, db.Model(&models.Challenge{}).Count(&count).Error)
	assert.Equal(t, len(defaultChallenges), count)
}

func TestListReflectsEnrollment(t *testing.T) {
	svc, db := newTestService(t)
	defer db.Close()

	views, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, views, len(defaultChallenges))
	for _, v := range views {
		assert.False(t, v.Enrolled)
	}

	_, err = svc.Enroll(1, "workout-warrior")
	require.NoError(t, err)

	views, err = svc.List(1)
	require.NoError(t, err)
	enrolled := 0
	for _, v := range views {
		if v.Enrolled {
			enrolled++
			assert.Equal(t, "workout-warrior", v.Slug)
		}
	}
	assert.Equal(t, 1, enrolled)

	// another user's listing is unaffected
	views, err = svc.List(2)
	require.NoError(t, err)
	for _, v := range views {
		assert.False(t, v.Enrolled)
	}
}

func TestEnrollIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	defer db.Close()

	first, err := svc.Enroll(1, "fasting-five")
	require.NoError(t, err)

	_, err = svc.UpdateProgress(1, "fasting-five", structs.ChallengeProgressPayload{Progress: 3})
	require.NoError(t, err)

	// re-enrolling keeps the row and its progress
	again, err := svc.Enroll(1, "fasting-five")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 3, again.Progress)

	_, err = svc.Enroll(1, "no-such-challenge")
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)
}

func TestUpdateProgressStampsCompletionOnce(t *testing.T) {
	svc, db := newTestService(t)
	defer db.Close()

	_, err := svc.Enroll(1, "fasting-five")
	require.NoError(t, err)

	enrollment, err := svc.UpdateProgress(1, "fasting-five", structs.ChallengeProgressPayload{Progress: 4})
	require.NoError(t, err)
	assert.Nil(t, enrollment.CompletedAt)

	enrollment, err = svc.UpdateProgress(1, "fasting-five", structs.ChallengeProgressPayload{Progress: 5})
	require.NoError(t, err)
	require.NotNil(t, enrollment.CompletedAt)
	completedAt := *enrollment.CompletedAt

	// a later update keeps the original completion stamp
	enrollment, err = svc.UpdateProgress(1, "fasting-five", structs.ChallengeProgressPayload{Progress: 7})
	require.NoError(t, err)
	require.NotNil(t, enrollment.CompletedAt)
	assert.Equal(t, completedAt.Unix(), enrollment.CompletedAt.Unix())
}

func TestUpdateProgressErrors(t *testing.T) {
	svc, db := newTestService(t)
	defer db.Close()

	_, err := svc.UpdateProgress(1, "fasting-five", structs.ChallengeProgressPayload{Progress: 1})
	assert.Equal(t, enums.CodeNotFound, structs.AsErrorModel(err).Code)

	_, err = svc.Enroll(1, "fasting-five")
	require.NoError(t, err)
	_, err = svc.UpdateProgress(1, "fasting-five", structs.ChallengeProgressPayload{Progress: -1})
	assert.Equal(t, enums.CodeValidation, structs.AsErrorModel(err).Code)
}
