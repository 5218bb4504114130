package app

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pvoronin/taskboard/internal/config"
	"github.com/pvoronin/taskboard/internal/models"
)

var globalDB *gorm.DB

func MustOpenSQLite() {
	cfg := config.Global().SQLite
	dsn := fmt.Sprintf("%s?_busy_timeout=%d", cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open sqlite database")
		panic(err)
	}

	err = db.AutoMigrate(&models.Task{})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to migrate sqlite schema")
		panic(err)
	}

	globalDB = db
	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("opened sqlite database")
}

func CloseSQLite() {
	sqlDB, err := globalDB.DB()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to get underlying sqlite connection")
		return
	}

	err = sqlDB.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close sqlite database")
		return
	}
	globalLogger.Info().Msg("closed sqlite database")
}
