package database

import (
	"fmt"
	"time"

	"fittrack-go-server/models"
	"fittrack-go-server/utils"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

var Mysql *gorm.DB

// InitDatabasePool opens the pooled gorm connection described by the env
// config and runs pending migrations.
func InitDatabasePool() {
	cfg := utils.EnvConfig.Database

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Db, cfg.Params)

	db, err := gorm.Open(cfg.Client, dsn)
	if err != nil {
		panic(fmt.Errorf("database connect failed: %s", err))
	}

	db.DB().SetMaxIdleConns(int(cfg.MaxIdle))
	db.DB().SetMaxOpenConns(int(cfg.MaxOpenConn))
	if lifetime, err := time.ParseDuration(cfg.MaxLifeTime); err == nil {
		db.DB().SetConnMaxLifetime(lifetime)
	}
	db.LogMode(cfg.LogEnable == 1)

	Mysql = db

	if err := Migrate(Mysql); err != nil {
		panic(fmt.Errorf("database migrate failed: %s", err))
	}
}

// Migrate creates/updates the schema. AutoMigrate covers the baseline; the
// water_goal column arrived after launch and carries a hard floor of 8.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.DailyHealth{},
		&models.Meal{},
		&models.Workout{},
		&models.Exercise{},
		&models.LocationPoint{},
		&models.WaterEntry{},
		&models.FastingSession{},
		&models.FoodItem{},
		&models.BasketItem{},
		&models.FeedPost{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Friendship{},
		&models.Challenge{},
		&models.ChallengeEnrollment{},
		&models.ActivityLog{},
	).Error; err != nil {
		return err
	}

	// sqlite (tests) cannot ALTER ... ADD CONSTRAINT, the unique indexes above
	// are enough there.
	if db.Dialect().GetName() == "mysql" {
		db.Exec("ALTER TABLE daily_health_records MODIFY COLUMN water_goal INT NOT NULL DEFAULT 8")
		db.Exec("ALTER TABLE daily_health_records ADD CONSTRAINT chk_daily_water_goal CHECK (water_goal >= 8)")
		db.Exec("ALTER TABLE users ADD CONSTRAINT chk_user_water_goal CHECK (water_goal >= 8)")
	}

	return nil
}
