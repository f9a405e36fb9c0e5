package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/repositories"
)

// MemorialServiceError memorial servis hataları.
type MemorialServiceError string

func (e MemorialServiceError) Error() string { return string(e) }

const (
	ErrRemembranceMessageRequired MemorialServiceError = "anı mesajı zorunludur"
	ErrRemembranceMessageTooLong  MemorialServiceError = "anı mesajı en fazla 1000 karakter olabilir"
	ErrAuthorNameTooLong          MemorialServiceError = "yazar adı en fazla 100 karakter olabilir"
	ErrOfferingTypeInvalid        MemorialServiceError = "geçersiz sunu türü"
	ErrOfferingMessageTooLong     MemorialServiceError = "sunu mesajı en fazla 500 karakter olabilir"
	ErrReminderTitleRequired      MemorialServiceError = "hatırlatıcı başlığı zorunludur"
	ErrReminderTitleTooLong       MemorialServiceError = "hatırlatıcı başlığı en fazla 200 karakter olabilir"
	ErrReminderDateRequired       MemorialServiceError = "hatırlatıcı tarihi zorunludur"
	ErrReminderFrequencyInvalid   MemorialServiceError = "geçersiz hatırlatıcı sıklığı"
	ErrReminderNotFound           MemorialServiceError = "hatırlatıcı bulunamadı"
)

// RemembranceInput anı gönderim girdisidir.
type RemembranceInput struct {
	Message    string
	AuthorName string
	IsPublic   bool
}

// OfferingInput sunu gönderim girdisidir.
type OfferingInput struct {
	OfferingType models.OfferingType
	Message      string
	AuthorName   string
}

// ReminderInput hatırlatıcı oluşturma girdisidir.
type ReminderInput struct {
	Title     string
	Date      time.Time
	Frequency models.ReminderFrequency
}

// OfferingSummary bir memorial'ın sunu özetidir: toplam, türe göre sayılar
// ve en yeni 20 sunu.
type OfferingSummary struct {
	TotalCount int64                         `json:"totalCount"`
	Counts     map[models.OfferingType]int64 `json:"counts"`
	Recent     []models.VirtualOffering      `json:"recent"`
}

// IMemorialService memorial'a bağlı anı, sunu ve hatırlatıcı işlemleri için arayüz.
type IMemorialService interface {
	// ListPublicRemembrances yalnızca approved && isPublic anıları döndürür.
	ListPublicRemembrances(ctx context.Context, personID uint) ([]models.Remembrance, error)
	// SubmitRemembrance anıyı approved=false olarak oluşturur ve yanında bir
	// PENDING katkı kaydı açar. Anı, bir yönetici onaylayana kadar herkese açık
	// listede görünmez.
	SubmitRemembrance(ctx context.Context, personID uint, input RemembranceInput) (*models.Remembrance, error)

	OfferingSummaryForPerson(ctx context.Context, personID uint) (*OfferingSummary, error)
	// SubmitOffering sunuyu oluşturur (anında görünür, moderasyon kapısı yok) ve
	// denetim için bir katkı kaydı açar.
	SubmitOffering(ctx context.Context, personID uint, input OfferingInput) (*models.VirtualOffering, error)

	ListReminders(ctx context.Context, userID, personID uint) ([]models.MemorialReminder, error)
	CreateReminder(ctx context.Context, userID, personID uint, input ReminderInput) (*models.MemorialReminder, error)
	// DeleteReminder soft-delete yapar. Sahip olmayan kullanıcıya ve bilinmeyen
	// ID'ye aynı hata döner: kayıt varlığı sızdırılmaz.
	DeleteReminder(ctx context.Context, userID, reminderID uint) error
}

// MemorialService IMemorialService arayüzünü uygular.
type MemorialService struct {
	memorialRepo     repositories.IMemorialRepository
	reminderRepo     repositories.IReminderRepository
	contributionRepo repositories.IContributionRepository
	db               *gorm.DB
}

// NewMemorialService yeni bir MemorialService örneği oluşturur.
func NewMemorialService(
	memorialRepo repositories.IMemorialRepository,
	reminderRepo repositories.IReminderRepository,
	contributionRepo repositories.IContributionRepository,
	db *gorm.DB,
) IMemorialService {
	return &MemorialService{
		memorialRepo:     memorialRepo,
		reminderRepo:     reminderRepo,
		contributionRepo: contributionRepo,
		db:               db,
	}
}

// recentOfferingsLimit özetle dönen en yeni sunu sayısı.
const recentOfferingsLimit = 20

// withTx fn'i tek bir veritabanı transaction'ı içinde çalıştırır ve tx'i
// context üzerinden repository katmanına taşır. DB tutamacı yoksa fn
// transaction'sız, verilen context ile çalışır.
func (s *MemorialService) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(repositories.ContextWithTx(ctx, tx))
	})
}

func validateRemembranceInput(input RemembranceInput) error {
	if input.Message == "" {
		return ErrRemembranceMessageRequired
	}
	if len(input.Message) > 1000 {
		return ErrRemembranceMessageTooLong
	}
	if len(input.AuthorName) > 100 {
		return ErrAuthorNameTooLong
	}
	return nil
}

func validateOfferingInput(input OfferingInput) error {
	if !models.ValidOfferingType(input.OfferingType) {
		return ErrOfferingTypeInvalid
	}
	if len(input.Message) > 500 {
		return ErrOfferingMessageTooLong
	}
	if len(input.AuthorName) > 100 {
		return ErrAuthorNameTooLong
	}
	return nil
}

func validateReminderInput(input ReminderInput) error {
	if input.Title == "" {
		return ErrReminderTitleRequired
	}
	if len(input.Title) > 200 {
		return ErrReminderTitleTooLong
	}
	if input.Date.IsZero() {
		return ErrReminderDateRequired
	}
	if !models.ValidReminderFrequency(input.Frequency) {
		return ErrReminderFrequencyInvalid
	}
	return nil
}

func (s *MemorialService) ListPublicRemembrances(ctx context.Context, personID uint) ([]models.Remembrance, error) {
	return s.memorialRepo.FindPublicRemembrances(ctx, personID)
}

func (s *MemorialService) SubmitRemembrance(ctx context.Context, personID uint, input RemembranceInput) (*models.Remembrance, error) {
	if err := validateRemembranceInput(input); err != nil {
		return nil, err
	}

	var created *models.Remembrance
	txErr := s.withTx(ctx, func(txCtx context.Context) error {
		memorial, err := s.memorialRepo.GetOrCreateByPersonID(txCtx, personID)
		if err != nil {
			return err
		}

		remembrance := &models.Remembrance{
			MemorialID: memorial.ID,
			Message:    input.Message,
			AuthorName: input.AuthorName,
			IsPublic:   input.IsPublic,
			Approved:   false,
		}
		if err := s.memorialRepo.CreateRemembrance(txCtx, remembrance); err != nil {
			return err
		}

		contribution := &models.Contribution{
			PersonID: personID,
			Type:     models.ContributionRemembrance,
			Data: models.JSONMap{
				"memorialId": memorial.ID,
				"message":    input.Message,
				"authorName": input.AuthorName,
				"isPublic":   input.IsPublic,
			},
		}
		if err := s.contributionRepo.Create(txCtx, contribution); err != nil {
			return err
		}

		created = remembrance
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("SubmitRemembrance transaction başarısız",
			zap.Uint("personID", personID), zap.Error(txErr))
		return nil, txErr
	}

	configslog.SLog.Infof("Anı gönderildi: ID %d (kişi %d), moderasyon bekliyor", created.ID, personID)
	return created, nil
}

func (s *MemorialService) OfferingSummaryForPerson(ctx context.Context, personID uint) (*OfferingSummary, error) {
	memorial, err := s.memorialRepo.FindByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Memorial henüz yoksa boş özet dönülür; 404 değil.
			return &OfferingSummary{
				Counts: map[models.OfferingType]int64{},
				Recent: []models.VirtualOffering{},
			}, nil
		}
		return nil, err
	}

	total, err := s.memorialRepo.CountOfferings(ctx, memorial.ID)
	if err != nil {
		return nil, err
	}
	counts, err := s.memorialRepo.CountOfferingsByType(ctx, memorial.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.memorialRepo.FindRecentOfferings(ctx, memorial.ID, recentOfferingsLimit)
	if err != nil {
		return nil, err
	}

	return &OfferingSummary{TotalCount: total, Counts: counts, Recent: recent}, nil
}

func (s *MemorialService) SubmitOffering(ctx context.Context, personID uint, input OfferingInput) (*models.VirtualOffering, error) {
	if err := validateOfferingInput(input); err != nil {
		return nil, err
	}

	var created *models.VirtualOffering
	txErr := s.withTx(ctx, func(txCtx context.Context) error {
		memorial, err := s.memorialRepo.GetOrCreateByPersonID(txCtx, personID)
		if err != nil {
			return err
		}

		offering := &models.VirtualOffering{
			MemorialID:   memorial.ID,
			OfferingType: input.OfferingType,
			Message:      input.Message,
			AuthorName:   input.AuthorName,
		}
		if err := s.memorialRepo.CreateOffering(txCtx, offering); err != nil {
			return err
		}

		contribution := &models.Contribution{
			PersonID: personID,
			Type:     models.ContributionOffering,
			Data: models.JSONMap{
				"memorialId":   memorial.ID,
				"offeringType": string(input.OfferingType),
				"message":      input.Message,
				"authorName":   input.AuthorName,
			},
		}
		if err := s.contributionRepo.Create(txCtx, contribution); err != nil {
			return err
		}

		created = offering
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("SubmitOffering transaction başarısız",
			zap.Uint("personID", personID), zap.Error(txErr))
		return nil, txErr
	}

	return created, nil
}

func (s *MemorialService) ListReminders(ctx context.Context, userID, personID uint) ([]models.MemorialReminder, error) {
	return s.reminderRepo.FindActiveForUser(ctx, userID, personID)
}

func (s *MemorialService) CreateReminder(ctx context.Context, userID, personID uint, input ReminderInput) (*models.MemorialReminder, error) {
	if input.Frequency == "" {
		input.Frequency = models.ReminderFrequencyOnce
	}
	if err := validateReminderInput(input); err != nil {
		return nil, err
	}

	memorial, err := s.memorialRepo.GetOrCreateByPersonID(ctx, personID)
	if err != nil {
		return nil, err
	}

	reminder := &models.MemorialReminder{
		MemorialID: memorial.ID,
		UserID:     userID,
		Title:      input.Title,
		Date:       input.Date,
		Frequency:  input.Frequency,
		Active:     true,
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		configslog.Log.Error("CreateReminder: DB hatası",
			zap.Uint("userID", userID), zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return reminder, nil
}

func (s *MemorialService) DeleteReminder(ctx context.Context, userID, reminderID uint) error {
	reminder, err := s.reminderRepo.FindByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrReminderNotFound
		}
		return err
	}
	// Sahip olmayan kullanıcıya da aynı "bulunamadı" hatası döner (403 değil 404).
	if reminder.UserID != userID {
		return ErrReminderNotFound
	}
	return s.reminderRepo.Deactivate(ctx, reminderID)
}

var _ IMemorialService = (*MemorialService)(nil)
