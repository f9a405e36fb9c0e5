package repositories

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// ILocationRepository konum referans verisi için arayüz.
type ILocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	FindByID(ctx context.Context, id uint) (*models.Location, error)
	// FindAllOrdered tüm konumları ada göre artan sırayla döndürür.
	FindAllOrdered(ctx context.Context) ([]models.Location, error)
}

// LocationRepository ILocationRepository arayüzünü uygular.
type LocationRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Location]
}

// NewLocationRepository yeni bir LocationRepository örneği oluşturur.
func NewLocationRepository(db *gorm.DB) ILocationRepository {
	return &LocationRepository{db: db, base: NewBaseRepository[models.Location](db)}
}

func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	return r.base.Create(ctx, location)
}

func (r *LocationRepository) FindByID(ctx context.Context, id uint) (*models.Location, error) {
	return r.base.FindByID(ctx, id)
}

func (r *LocationRepository) FindAllOrdered(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := dbFromContext(ctx, r.db).Order("name ASC").Find(&locations).Error
	if err != nil {
		configslog.Log.Error("LocationRepository.FindAllOrdered: DB hatası", zap.Error(err))
		return nil, err
	}
	return locations, nil
}
