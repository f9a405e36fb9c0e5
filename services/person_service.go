package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/pkg/queryparams"
	"anma.link/repositories"
)

// PersonServiceError kişi servis hataları.
type PersonServiceError string

func (e PersonServiceError) Error() string { return string(e) }

const (
	ErrPersonNotFound     PersonServiceError = "kişi bulunamadı"
	ErrPersonNameRequired PersonServiceError = "ad ve soyad zorunludur"
	ErrPersonNameTooLong  PersonServiceError = "ad ve soyad en fazla 100 karakter olabilir"
	ErrPersonCauseTooLong PersonServiceError = "ölüm nedeni en fazla 255 karakter olabilir"
)

// PersonInput kişi oluşturma/güncelleme girdisidir.
type PersonInput struct {
	FirstName      string
	LastName       string
	DateOfBirth    *time.Time
	DateOfDeath    *time.Time
	CauseOfDeath   string
	PlaceOfBirthID *uint
	PlaceOfDeathID *uint
	CemeteryID     *uint
}

// IPersonService kişi CRUD işlemleri için arayüz. Oluşturma ve güncelleme,
// uygulanmış yazmanın yanına bir katkı (denetim) kaydı düşer.
type IPersonService interface {
	ListPersons(ctx context.Context, params queryparams.ListParams) ([]models.Person, queryparams.PaginationMeta, error)
	GetPersonByID(ctx context.Context, id uint) (*models.Person, error)
	CreatePerson(ctx context.Context, userID uint, input PersonInput) (*models.Person, error)
	UpdatePerson(ctx context.Context, userID, id uint, input PersonInput) (*models.Person, error)
	DeletePerson(ctx context.Context, id uint) error
}

// PersonService IPersonService arayüzünü uygular.
type PersonService struct {
	personRepo       repositories.IPersonRepository
	contributionRepo repositories.IContributionRepository
	db               *gorm.DB
}

// NewPersonService yeni bir PersonService örneği oluşturur.
func NewPersonService(
	personRepo repositories.IPersonRepository,
	contributionRepo repositories.IContributionRepository,
	db *gorm.DB,
) IPersonService {
	return &PersonService{personRepo: personRepo, contributionRepo: contributionRepo, db: db}
}

// ValidatePersonInput temel alan validasyonlarını yapar.
func ValidatePersonInput(input PersonInput) error {
	if input.FirstName == "" || input.LastName == "" {
		return ErrPersonNameRequired
	}
	if len(input.FirstName) > 100 || len(input.LastName) > 100 {
		return ErrPersonNameTooLong
	}
	if len(input.CauseOfDeath) > 255 {
		return ErrPersonCauseTooLong
	}
	return nil
}

func (s *PersonService) ListPersons(ctx context.Context, params queryparams.ListParams) ([]models.Person, queryparams.PaginationMeta, error) {
	params.Validate()
	persons, total, err := s.personRepo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}
	return persons, queryparams.NewPaginationMeta(params, total), nil
}

func (s *PersonService) GetPersonByID(ctx context.Context, id uint) (*models.Person, error) {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

func (s *PersonService) CreatePerson(ctx context.Context, userID uint, input PersonInput) (*models.Person, error) {
	if err := ValidatePersonInput(input); err != nil {
		return nil, err
	}

	var created *models.Person
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		person := &models.Person{
			FirstName:      input.FirstName,
			LastName:       input.LastName,
			DateOfBirth:    input.DateOfBirth,
			DateOfDeath:    input.DateOfDeath,
			CauseOfDeath:   input.CauseOfDeath,
			PlaceOfBirthID: input.PlaceOfBirthID,
			PlaceOfDeathID: input.PlaceOfDeathID,
			CemeteryID:     input.CemeteryID,
		}
		if err := s.personRepo.Create(txCtx, person); err != nil {
			return err
		}

		contribution := &models.Contribution{
			UserID:   &userID,
			PersonID: person.ID,
			Type:     models.ContributionPersonCreate,
			Data:     contributionPayload(input),
		}
		if err := s.contributionRepo.Create(txCtx, contribution); err != nil {
			return err
		}

		created = person
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("CreatePerson transaction başarısız", zap.Uint("userID", userID), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("Kişi oluşturuldu: %s %s (ID %d)", created.FirstName, created.LastName, created.ID)
	return created, nil
}

func (s *PersonService) UpdatePerson(ctx context.Context, userID, id uint, input PersonInput) (*models.Person, error) {
	if err := ValidatePersonInput(input); err != nil {
		return nil, err
	}

	var updated *models.Person
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)

		person, err := s.personRepo.FindByID(txCtx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrPersonNotFound
			}
			return err
		}

		person.FirstName = input.FirstName
		person.LastName = input.LastName
		person.DateOfBirth = input.DateOfBirth
		person.DateOfDeath = input.DateOfDeath
		person.CauseOfDeath = input.CauseOfDeath
		person.PlaceOfBirthID = input.PlaceOfBirthID
		person.PlaceOfDeathID = input.PlaceOfDeathID
		person.CemeteryID = input.CemeteryID

		if err := s.personRepo.Update(txCtx, person); err != nil {
			return err
		}

		contribution := &models.Contribution{
			UserID:   &userID,
			PersonID: person.ID,
			Type:     models.ContributionPersonUpdate,
			Data:     contributionPayload(input),
		}
		if err := s.contributionRepo.Create(txCtx, contribution); err != nil {
			return err
		}

		updated = person
		return nil
	})
	if txErr != nil {
		if !errors.Is(txErr, ErrPersonNotFound) {
			configslog.Log.Error("UpdatePerson transaction başarısız", zap.Uint("id", id), zap.Error(txErr))
		}
		return nil, txErr
	}
	return updated, nil
}

func (s *PersonService) DeletePerson(ctx context.Context, id uint) error {
	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPersonNotFound
		}
		return err
	}
	if err := s.personRepo.Delete(ctx, person); err != nil {
		configslog.Log.Error("DeletePerson: DB hatası", zap.Uint("id", id), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kişi silindi: ID %d", id)
	return nil
}

// contributionPayload girdinin jsonb anlık görüntüsünü üretir.
func contributionPayload(input PersonInput) models.JSONMap {
	payload := models.JSONMap{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
	}
	if input.DateOfBirth != nil {
		payload["dateOfBirth"] = input.DateOfBirth.UTC().Format(time.RFC3339)
	}
	if input.DateOfDeath != nil {
		payload["dateOfDeath"] = input.DateOfDeath.UTC().Format(time.RFC3339)
	}
	if input.CauseOfDeath != "" {
		payload["causeOfDeath"] = input.CauseOfDeath
	}
	if input.PlaceOfBirthID != nil {
		payload["placeOfBirthId"] = *input.PlaceOfBirthID
	}
	if input.PlaceOfDeathID != nil {
		payload["placeOfDeathId"] = *input.PlaceOfDeathID
	}
	if input.CemeteryID != nil {
		payload["cemeteryId"] = *input.CemeteryID
	}
	return payload
}

var _ IPersonService = (*PersonService)(nil)
