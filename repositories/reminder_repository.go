package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// IReminderRepository anma hatırlatıcısı veritabanı işlemleri için arayüz.
type IReminderRepository interface {
	Create(ctx context.Context, reminder *models.MemorialReminder) error
	FindByID(ctx context.Context, id uint) (*models.MemorialReminder, error)
	// FindActiveForUser kullanıcının bir kişiye ait aktif hatırlatıcılarını tarih sırasıyla döndürür.
	FindActiveForUser(ctx context.Context, userID, personID uint) ([]models.MemorialReminder, error)
	// Deactivate hatırlatıcıyı soft-delete eder (active=false).
	Deactivate(ctx context.Context, id uint) error
}

// ReminderRepository IReminderRepository arayüzünü uygular.
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository yeni bir ReminderRepository örneği oluşturur.
func NewReminderRepository(db *gorm.DB) IReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *models.MemorialReminder) error {
	return dbFromContext(ctx, r.db).Create(reminder).Error
}

func (r *ReminderRepository) FindByID(ctx context.Context, id uint) (*models.MemorialReminder, error) {
	var reminder models.MemorialReminder
	err := dbFromContext(ctx, r.db).First(&reminder, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *ReminderRepository) FindActiveForUser(ctx context.Context, userID, personID uint) ([]models.MemorialReminder, error) {
	var reminders []models.MemorialReminder
	err := dbFromContext(ctx, r.db).
		Joins("JOIN memorials ON memorials.id = memorial_reminders.memorial_id").
		Where("memorial_reminders.user_id = ? AND memorials.person_id = ? AND memorial_reminders.active = ?", userID, personID, true).
		Order("memorial_reminders.date ASC").
		Find(&reminders).Error
	if err != nil {
		configslog.Log.Error("ReminderRepository.FindActiveForUser: DB hatası",
			zap.Uint("userID", userID), zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return reminders, nil
}

func (r *ReminderRepository) Deactivate(ctx context.Context, id uint) error {
	return dbFromContext(ctx, r.db).
		Model(&models.MemorialReminder{}).
		Where("id = ?", id).
		Update("active", false).Error
}
