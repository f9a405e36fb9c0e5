package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

func MigrateLocationsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating locations & cemeteries tables...")
	if err := db.AutoMigrate(&models.Location{}, &models.Cemetery{}); err != nil {
		configslog.Log.Error("Failed to migrate locations & cemeteries tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Locations & cemeteries tables migrated successfully")
	return nil
}
