package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

func MigratePersonsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating persons table...")
	if err := db.AutoMigrate(&models.Person{}); err != nil {
		configslog.Log.Error("Failed to migrate persons table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Persons table migrated successfully")
	return nil
}
