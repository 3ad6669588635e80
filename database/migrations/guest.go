package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
)

// MigrateGuestsTable creates/updates the guests table. The weddings
// table must already exist for the foreign key.
func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guests table...")
	if err := db.AutoMigrate(&models.Guest{}); err != nil {
		configslog.Log.Error("Failed to migrate guests table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Guests table migrated successfully")
	return nil
}
