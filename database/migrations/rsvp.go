package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vows.link/configs/configslog"
	"vows.link/models"
)

// MigrateRSVPsTable creates/updates the rsvps table. The unique index
// on guest_id is what makes the submit upsert safe under concurrency.
func MigrateRSVPsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvps table...")
	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Rsvps table migrated successfully")
	return nil
}
