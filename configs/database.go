package configs

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vows.link/configs/configslog"
)

var db *gorm.DB

// InitDB opens the PostgreSQL connection using App.DatabaseURL.
// GORM's own logger is silenced; DB errors are reported through configslog.
func InitDB() {
	gormDB, err := gorm.Open(postgres.Open(App.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}
	db = gormDB
	configslog.SLog.Info("database connection established")
}

// GetDB returns the active GORM handle.
func GetDB() *gorm.DB {
	return db
}

// SetDB swaps the active handle. Tests use this to point the
// repositories at an in-memory database.
func SetDB(gormDB *gorm.DB) {
	db = gormDB
}

// CloseDB closes the underlying sql.DB pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("could not access underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("database close failed", zap.Error(err))
	}
}
