package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

func MigrateMemorialsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating memorials, remembrances, virtual_offerings & memorial_reminders tables...")
	err := db.AutoMigrate(
		&models.Memorial{},
		&models.Remembrance{},
		&models.VirtualOffering{},
		&models.MemorialReminder{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate memorial tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Memorial tables migrated successfully")
	return nil
}
