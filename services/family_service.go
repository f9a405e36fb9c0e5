package services

import (
	"context"

	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/repositories"
)

// FamilyServiceError akrabalık servis hataları.
type FamilyServiceError string

func (e FamilyServiceError) Error() string { return string(e) }

const (
	ErrRelationshipTypeInvalid FamilyServiceError = "geçersiz akrabalık türü"
	ErrRelatedPersonRequired   FamilyServiceError = "ilişkili kişi zorunludur"
)

// FamilyInput akrabalık kenarı oluşturma girdisidir.
type FamilyInput struct {
	RelatedPersonID  uint
	RelationshipType models.RelationshipType
}

// IFamilyService akrabalık işlemleri için arayüz. Tekrarlayan veya simetrik
// kenarlar engellenmez; listeleme iki yönlüdür.
type IFamilyService interface {
	ListByPerson(ctx context.Context, personID uint) ([]models.FamilyRelationship, error)
	Create(ctx context.Context, personID uint, input FamilyInput) (*models.FamilyRelationship, error)
}

// FamilyService IFamilyService arayüzünü uygular.
type FamilyService struct {
	familyRepo repositories.IFamilyRepository
}

// NewFamilyService yeni bir FamilyService örneği oluşturur.
func NewFamilyService(familyRepo repositories.IFamilyRepository) IFamilyService {
	return &FamilyService{familyRepo: familyRepo}
}

func (s *FamilyService) ListByPerson(ctx context.Context, personID uint) ([]models.FamilyRelationship, error) {
	return s.familyRepo.FindByPersonID(ctx, personID)
}

func (s *FamilyService) Create(ctx context.Context, personID uint, input FamilyInput) (*models.FamilyRelationship, error) {
	if input.RelatedPersonID == 0 {
		return nil, ErrRelatedPersonRequired
	}
	if !models.ValidRelationshipType(input.RelationshipType) {
		return nil, ErrRelationshipTypeInvalid
	}

	relationship := &models.FamilyRelationship{
		PersonID:         personID,
		RelatedPersonID:  input.RelatedPersonID,
		RelationshipType: input.RelationshipType,
	}
	if err := s.familyRepo.Create(ctx, relationship); err != nil {
		configslog.Log.Error("FamilyService.Create: DB hatası",
			zap.Uint("personID", personID), zap.Uint("relatedPersonID", input.RelatedPersonID), zap.Error(err))
		return nil, err
	}
	return relationship, nil
}

var _ IFamilyService = (*FamilyService)(nil)
