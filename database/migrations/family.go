package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

func MigrateFamilyRelationshipsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating family_relationships table...")
	if err := db.AutoMigrate(&models.FamilyRelationship{}); err != nil {
		configslog.Log.Error("Failed to migrate family_relationships table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Family relationships table migrated successfully")
	return nil
}
