package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// IPhotoRepository fotoğraf veritabanı işlemleri için arayüz.
type IPhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	FindByID(ctx context.Context, id uint) (*models.Photo, error)
	FindByPersonID(ctx context.Context, personID uint) ([]models.Photo, error)
	// SetPrimary tek transaction içinde kişinin tüm fotoğraflarında is_primary'yi
	// temizler ve hedefi işaretler. Kısmi başarı iki primary ya da sıfır primary
	// bırakamaz; hata durumunda tamamı geri alınır.
	SetPrimary(ctx context.Context, photo *models.Photo) error
}

// PhotoRepository IPhotoRepository arayüzünü uygular.
type PhotoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository yeni bir PhotoRepository örneği oluşturur.
func NewPhotoRepository(db *gorm.DB) IPhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	return dbFromContext(ctx, r.db).Create(photo).Error
}

func (r *PhotoRepository) FindByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	err := dbFromContext(ctx, r.db).First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) FindByPersonID(ctx context.Context, personID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := dbFromContext(ctx, r.db).
		Where("person_id = ?", personID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		configslog.Log.Error("PhotoRepository.FindByPersonID: DB hatası",
			zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) SetPrimary(ctx context.Context, photo *models.Photo) error {
	db := dbFromContext(ctx, r.db)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Photo{}).
			Where("person_id = ?", photo.PersonID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Photo{}).
			Where("id = ?", photo.ID).
			Update("is_primary", true).Error
	})
}
