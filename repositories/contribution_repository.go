package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// IContributionRepository katkı (denetim/moderasyon) kayıtları için arayüz.
type IContributionRepository interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	FindByID(ctx context.Context, id uint) (*models.Contribution, error)
	// FindPending en yeni N adet PENDING katkıyı döndürür (sabit üst sınır, offset yok).
	FindPending(ctx context.Context, limit int) ([]models.Contribution, error)
	UpdateStatus(ctx context.Context, id uint, status models.ContributionStatus) (*models.Contribution, error)
}

// ContributionRepository IContributionRepository arayüzünü uygular.
type ContributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository yeni bir ContributionRepository örneği oluşturur.
func NewContributionRepository(db *gorm.DB) IContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return dbFromContext(ctx, r.db).Create(contribution).Error
}

func (r *ContributionRepository) FindByID(ctx context.Context, id uint) (*models.Contribution, error) {
	var contribution models.Contribution
	err := dbFromContext(ctx, r.db).First(&contribution, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contribution, nil
}

func (r *ContributionRepository) FindPending(ctx context.Context, limit int) ([]models.Contribution, error) {
	var contributions []models.Contribution
	err := dbFromContext(ctx, r.db).
		Where("status = ?", models.ContributionStatusPending).
		Order("created_at DESC").
		Limit(limit).
		Find(&contributions).Error
	if err != nil {
		configslog.Log.Error("ContributionRepository.FindPending: DB hatası", zap.Error(err))
		return nil, err
	}
	return contributions, nil
}

func (r *ContributionRepository) UpdateStatus(ctx context.Context, id uint, status models.ContributionStatus) (*models.Contribution, error) {
	db := dbFromContext(ctx, r.db)

	contribution, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contribution.Status = status
	if err := db.Model(contribution).Update("status", status).Error; err != nil {
		configslog.Log.Error("ContributionRepository.UpdateStatus: DB hatası",
			zap.Uint("id", id), zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}
	return contribution, nil
}
