package repositories

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// IFamilyRepository akrabalık kenarları için arayüz.
type IFamilyRepository interface {
	Create(ctx context.Context, relationship *models.FamilyRelationship) error
	// FindByPersonID kenarı iki uçtan biri eşleşen tüm ilişkileri, iki kişiyi de
	// preload ederek döndürür.
	FindByPersonID(ctx context.Context, personID uint) ([]models.FamilyRelationship, error)
}

// FamilyRepository IFamilyRepository arayüzünü uygular.
type FamilyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository yeni bir FamilyRepository örneği oluşturur.
func NewFamilyRepository(db *gorm.DB) IFamilyRepository {
	return &FamilyRepository{db: db}
}

func (r *FamilyRepository) Create(ctx context.Context, relationship *models.FamilyRelationship) error {
	return dbFromContext(ctx, r.db).Create(relationship).Error
}

func (r *FamilyRepository) FindByPersonID(ctx context.Context, personID uint) ([]models.FamilyRelationship, error) {
	var relationships []models.FamilyRelationship
	err := dbFromContext(ctx, r.db).
		Where("person_id = ? OR related_person_id = ?", personID, personID).
		Preload("Person").
		Preload("RelatedPerson").
		Find(&relationships).Error
	if err != nil {
		configslog.Log.Error("FamilyRepository.FindByPersonID: DB hatası",
			zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return relationships, nil
}
