package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

func MigratePhotosTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating photos table...")
	if err := db.AutoMigrate(&models.Photo{}); err != nil {
		configslog.Log.Error("Failed to migrate photos table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Photos table migrated successfully")
	return nil
}
