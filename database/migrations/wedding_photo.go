package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
)

// MigrateWeddingPhotosTable creates/updates the wedding_photos table.
func MigrateWeddingPhotosTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating wedding_photos table...")
	if err := db.AutoMigrate(&models.WeddingPhoto{}); err != nil {
		configslog.Log.Error("Failed to migrate wedding_photos table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Wedding_photos table migrated successfully")
	return nil
}
