package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"anma.link/configs/configslog"
	"anma.link/models"
)

// IMemorialRepository memorial, anı ve sunu veritabanı işlemleri için arayüz.
type IMemorialRepository interface {
	// GetOrCreateByPersonID kişinin memorial'ını döndürür; yoksa oluşturur.
	// Aynı kişi için eşzamanlı ilk gönderimlerde çift satır oluşmaması için
	// ON CONFLICT DO NOTHING + yeniden okuma kullanılır.
	GetOrCreateByPersonID(ctx context.Context, personID uint) (*models.Memorial, error)
	FindByPersonID(ctx context.Context, personID uint) (*models.Memorial, error)

	CreateRemembrance(ctx context.Context, remembrance *models.Remembrance) error
	FindRemembranceByID(ctx context.Context, id uint) (*models.Remembrance, error)
	UpdateRemembrance(ctx context.Context, remembrance *models.Remembrance) error
	// FindPublicRemembrances yalnızca approved && is_public olanları created_at DESC döndürür.
	FindPublicRemembrances(ctx context.Context, personID uint) ([]models.Remembrance, error)
	// FindUnapprovedRemembrances moderasyon kuyruğu için en yeni N onaysız anıyı döndürür.
	FindUnapprovedRemembrances(ctx context.Context, limit int) ([]models.Remembrance, error)

	CreateOffering(ctx context.Context, offering *models.VirtualOffering) error
	CountOfferings(ctx context.Context, memorialID uint) (int64, error)
	CountOfferingsByType(ctx context.Context, memorialID uint) (map[models.OfferingType]int64, error)
	FindRecentOfferings(ctx context.Context, memorialID uint, limit int) ([]models.VirtualOffering, error)
}

// MemorialRepository IMemorialRepository arayüzünü uygular.
type MemorialRepository struct {
	db *gorm.DB
}

// NewMemorialRepository yeni bir MemorialRepository örneği oluşturur.
func NewMemorialRepository(db *gorm.DB) IMemorialRepository {
	return &MemorialRepository{db: db}
}

func (r *MemorialRepository) GetOrCreateByPersonID(ctx context.Context, personID uint) (*models.Memorial, error) {
	if personID == 0 {
		return nil, errors.New("geçersiz Person ID")
	}
	db := dbFromContext(ctx, r.db)

	memorial := models.Memorial{PersonID: personID}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "person_id"}},
		DoNothing: true,
	}).Create(&memorial).Error
	if err != nil {
		configslog.Log.Error("MemorialRepository.GetOrCreateByPersonID: oluşturma hatası",
			zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}

	// DoNothing çakışmada ID doldurmaz; her iki durumda da satırı yeniden oku.
	var existing models.Memorial
	if err := db.Where("person_id = ?", personID).First(&existing).Error; err != nil {
		configslog.Log.Error("MemorialRepository.GetOrCreateByPersonID: yeniden okuma hatası",
			zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return &existing, nil
}

func (r *MemorialRepository) FindByPersonID(ctx context.Context, personID uint) (*models.Memorial, error) {
	var memorial models.Memorial
	err := dbFromContext(ctx, r.db).Where("person_id = ?", personID).First(&memorial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("MemorialRepository.FindByPersonID: DB hatası",
			zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return &memorial, nil
}

func (r *MemorialRepository) CreateRemembrance(ctx context.Context, remembrance *models.Remembrance) error {
	return dbFromContext(ctx, r.db).Create(remembrance).Error
}

func (r *MemorialRepository) FindRemembranceByID(ctx context.Context, id uint) (*models.Remembrance, error) {
	var remembrance models.Remembrance
	err := dbFromContext(ctx, r.db).First(&remembrance, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &remembrance, nil
}

func (r *MemorialRepository) UpdateRemembrance(ctx context.Context, remembrance *models.Remembrance) error {
	return dbFromContext(ctx, r.db).Save(remembrance).Error
}

func (r *MemorialRepository) FindPublicRemembrances(ctx context.Context, personID uint) ([]models.Remembrance, error) {
	var remembrances []models.Remembrance
	err := dbFromContext(ctx, r.db).
		Joins("JOIN memorials ON memorials.id = remembrances.memorial_id").
		Where("memorials.person_id = ? AND remembrances.approved = ? AND remembrances.is_public = ?", personID, true, true).
		Order("remembrances.created_at DESC").
		Find(&remembrances).Error
	if err != nil {
		configslog.Log.Error("MemorialRepository.FindPublicRemembrances: DB hatası",
			zap.Uint("personID", personID), zap.Error(err))
		return nil, err
	}
	return remembrances, nil
}

func (r *MemorialRepository) FindUnapprovedRemembrances(ctx context.Context, limit int) ([]models.Remembrance, error) {
	var remembrances []models.Remembrance
	err := dbFromContext(ctx, r.db).
		Where("approved = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&remembrances).Error
	if err != nil {
		configslog.Log.Error("MemorialRepository.FindUnapprovedRemembrances: DB hatası", zap.Error(err))
		return nil, err
	}
	return remembrances, nil
}

func (r *MemorialRepository) CreateOffering(ctx context.Context, offering *models.VirtualOffering) error {
	return dbFromContext(ctx, r.db).Create(offering).Error
}

func (r *MemorialRepository) CountOfferings(ctx context.Context, memorialID uint) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).
		Model(&models.VirtualOffering{}).
		Where("memorial_id = ?", memorialID).
		Count(&total).Error
	return total, err
}

func (r *MemorialRepository) CountOfferingsByType(ctx context.Context, memorialID uint) (map[models.OfferingType]int64, error) {
	type row struct {
		OfferingType models.OfferingType
		Count        int64
	}
	var rows []row
	err := dbFromContext(ctx, r.db).
		Model(&models.VirtualOffering{}).
		Select("offering_type, COUNT(id) AS count").
		Where("memorial_id = ?", memorialID).
		Group("offering_type").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("MemorialRepository.CountOfferingsByType: DB hatası",
			zap.Uint("memorialID", memorialID), zap.Error(err))
		return nil, err
	}
	counts := make(map[models.OfferingType]int64, len(rows))
	for _, rr := range rows {
		counts[rr.OfferingType] = rr.Count
	}
	return counts, nil
}

func (r *MemorialRepository) FindRecentOfferings(ctx context.Context, memorialID uint, limit int) ([]models.VirtualOffering, error) {
	var offerings []models.VirtualOffering
	err := dbFromContext(ctx, r.db).
		Where("memorial_id = ?", memorialID).
		Order("created_at DESC").
		Limit(limit).
		Find(&offerings).Error
	if err != nil {
		configslog.Log.Error("MemorialRepository.FindRecentOfferings: DB hatası",
			zap.Uint("memorialID", memorialID), zap.Error(err))
		return nil, err
	}
	return offerings, nil
}
