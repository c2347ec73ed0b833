package services

import (
	"encoding/json"
	"strings"
	"time"

	"fittrack-go-server/models"

	"github.com/jinzhu/gorm"
)

// InsertActivityLog writes one row to the operational audit table.
func InsertActivityLog(db *gorm.DB, logName string, data interface{}) error {

	activityLogJSON, _ := json.Marshal(data)

	insertTime := time.Now()
	var activityLogEntity models.ActivityLog
	activityLogEntity.CreatedAt = &insertTime
	activityLogEntity.UpdatedAt = &insertTime
	activityLogEntity.LogName = logName
	activityLogEntity.Description = "fittrack-server log"
	activityLogEntity.Properties = string(activityLogJSON)

	if err := db.Create(&activityLogEntity).Error; err != nil {
		return err
	}

	return nil
}

// IsDuplicateKeyError reports whether err is a uniqueness violation, across
// the mysql and sqlite drivers.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
