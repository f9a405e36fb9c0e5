package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// SeedLocations örnek konumları ve mezarlığı yoksa oluşturur.
func SeedLocations(db *gorm.DB) error {
	locationsToSeed := []models.Location{
		{Name: "Saigon", City: "Ho Chi Minh City", Country: "Vietnam"},
		{Name: "Garden of Serenity", City: "San Jose", Country: "USA"},
	}

	configslog.SLog.Info("Konum seed işlemi başlıyor...")

	for i := range locationsToSeed {
		loc := &locationsToSeed[i]

		var existing models.Location
		result := db.Where("name = ? AND country = ?", loc.Name, loc.Country).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Konum '%s' zaten mevcut, oluşturma atlanıyor.", loc.Name)
			*loc = existing
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Konum kontrol edilirken veritabanı hatası",
				zap.String("name", loc.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(loc).Error; err != nil {
			configslog.Log.Error("Konum oluşturulamadı", zap.String("name", loc.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Konum '%s' başarıyla oluşturuldu (ID: %d).", loc.Name, loc.ID)
	}

	// Mezarlık ikinci konuma bağlıdır.
	cemeteryLocation := locationsToSeed[1]

	var existingCemetery models.Cemetery
	result := db.Where("name = ?", "Garden of Serenity").First(&existingCemetery)
	if result.Error == nil {
		configslog.SLog.Debug("Mezarlık 'Garden of Serenity' zaten mevcut, oluşturma atlanıyor.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Mezarlık kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	cemetery := models.Cemetery{Name: "Garden of Serenity", LocationID: &cemeteryLocation.ID}
	if err := db.Create(&cemetery).Error; err != nil {
		configslog.Log.Error("Mezarlık oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Mezarlık 'Garden of Serenity' başarıyla oluşturuldu (ID: %d).", cemetery.ID)
	return nil
}
