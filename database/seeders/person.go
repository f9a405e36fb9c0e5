package seeders

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// SeedSamplePersons iki örnek kişiyi, akrabalık kenarını ve ilk kişinin
// memorial içeriğini (anı, sunu, fotoğraf) yoksa oluşturur.
func SeedSamplePersons(db *gorm.DB) error {
	configslog.SLog.Info("Örnek kişi seed işlemi başlıyor...")

	var saigon, garden models.Location
	if err := db.Where("name = ?", "Saigon").First(&saigon).Error; err != nil {
		configslog.Log.Error("Seed için 'Saigon' konumu bulunamadı", zap.Error(err))
		return err
	}
	if err := db.Where("name = ? AND country = ?", "Garden of Serenity", "USA").First(&garden).Error; err != nil {
		configslog.Log.Error("Seed için 'Garden of Serenity' konumu bulunamadı", zap.Error(err))
		return err
	}
	var cemetery models.Cemetery
	if err := db.Where("name = ?", "Garden of Serenity").First(&cemetery).Error; err != nil {
		configslog.Log.Error("Seed için mezarlık bulunamadı", zap.Error(err))
		return err
	}

	personsToSeed := []models.Person{
		{
			FirstName:      "Minh",
			LastName:       "Tran",
			DateOfBirth:    datePtr(1954, time.April, 7),
			DateOfDeath:    datePtr(1988, time.June, 4),
			CauseOfDeath:   "Lost at sea while seeking freedom",
			PlaceOfBirthID: &saigon.ID,
			PlaceOfDeathID: &garden.ID,
			CemeteryID:     &cemetery.ID,
		},
		{
			FirstName:      "Lan",
			LastName:       "Nguyen",
			DateOfBirth:    datePtr(1969, time.January, 1),
			DateOfDeath:    datePtr(1989, time.May, 12),
			CauseOfDeath:   "Perished during the journey",
			PlaceOfBirthID: &saigon.ID,
			PlaceOfDeathID: &garden.ID,
			CemeteryID:     &cemetery.ID,
		},
	}

	for i := range personsToSeed {
		p := &personsToSeed[i]

		var existing models.Person
		result := db.Where("first_name = ? AND last_name = ?", p.FirstName, p.LastName).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Kişi '%s %s' zaten mevcut, oluşturma atlanıyor.", p.FirstName, p.LastName)
			*p = existing
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Kişi kontrol edilirken veritabanı hatası",
				zap.String("firstName", p.FirstName), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(p).Error; err != nil {
			configslog.Log.Error("Kişi oluşturulamadı", zap.String("firstName", p.FirstName), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Kişi '%s %s' başarıyla oluşturuldu (ID: %d).", p.FirstName, p.LastName, p.ID)
	}

	personA, personB := personsToSeed[0], personsToSeed[1]

	if err := seedSpouseEdge(db, personA.ID, personB.ID); err != nil {
		return err
	}
	if err := seedMemorialContent(db, personA.ID); err != nil {
		return err
	}

	configslog.SLog.Info("Örnek kişi seed işlemi başarıyla tamamlandı.")
	return nil
}

func seedSpouseEdge(db *gorm.DB, personID, relatedPersonID uint) error {
	var existing models.FamilyRelationship
	result := db.Where("person_id = ? AND related_person_id = ?", personID, relatedPersonID).First(&existing)
	if result.Error == nil {
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Akrabalık kenarı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	edge := models.FamilyRelationship{
		PersonID:         personID,
		RelatedPersonID:  relatedPersonID,
		RelationshipType: models.RelationshipSpouse,
	}
	if err := db.Create(&edge).Error; err != nil {
		configslog.Log.Error("Akrabalık kenarı oluşturulamadı", zap.Error(err))
		return err
	}
	return nil
}

func seedMemorialContent(db *gorm.DB, personID uint) error {
	var memorial models.Memorial
	result := db.Where("person_id = ?", personID).First(&memorial)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		memorial = models.Memorial{PersonID: personID}
		if err := db.Create(&memorial).Error; err != nil {
			configslog.Log.Error("Memorial oluşturulamadı", zap.Uint("personID", personID), zap.Error(err))
			return err
		}
	} else if result.Error != nil {
		configslog.Log.Error("Memorial kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	var remembranceCount int64
	if err := db.Model(&models.Remembrance{}).Where("memorial_id = ?", memorial.ID).Count(&remembranceCount).Error; err != nil {
		return err
	}
	if remembranceCount == 0 {
		remembrance := models.Remembrance{
			MemorialID: memorial.ID,
			Message:    "Forever remembered for courage and love.",
			AuthorName: "Family",
			Approved:   true,
			IsPublic:   true,
		}
		if err := db.Create(&remembrance).Error; err != nil {
			configslog.Log.Error("Örnek anı oluşturulamadı", zap.Error(err))
			return err
		}
	}

	var offeringCount int64
	if err := db.Model(&models.VirtualOffering{}).Where("memorial_id = ?", memorial.ID).Count(&offeringCount).Error; err != nil {
		return err
	}
	if offeringCount == 0 {
		offering := models.VirtualOffering{
			MemorialID:   memorial.ID,
			OfferingType: models.OfferingTypeCandle,
			Message:      "A light in our hearts",
		}
		if err := db.Create(&offering).Error; err != nil {
			configslog.Log.Error("Örnek sunu oluşturulamadı", zap.Error(err))
			return err
		}
	}

	var photoCount int64
	if err := db.Model(&models.Photo{}).Where("person_id = ?", personID).Count(&photoCount).Error; err != nil {
		return err
	}
	if photoCount == 0 {
		photo := models.Photo{
			PersonID:     personID,
			URL:          "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=800&q=80",
			ThumbnailURL: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=320&q=80",
			Caption:      "In memory",
			IsPrimary:    true,
		}
		if err := db.Create(&photo).Error; err != nil {
			configslog.Log.Error("Örnek fotoğraf oluşturulamadı", zap.Error(err))
			return err
		}
	}

	return nil
}
