package repositories

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/pkg/queryparams"
)

// PersonActivityCounts bir kişinin memorial'ı üzerinden toplanan aktivite sayılarıdır.
type PersonActivityCounts struct {
	Remembrances int64
	Offerings    int64
}

// IPersonRepository kişi veritabanı işlemleri için arayüz.
// Arama planlayıcısının üç stratejisi de bu arayüzün metodlarıyla çalışır.
type IPersonRepository interface {
	Create(ctx context.Context, person *models.Person) error
	FindByID(ctx context.Context, id uint) (*models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, person *models.Person) error
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Person, int64, error)

	// SearchByRange metin filtresi ve opsiyonel [start, end) ölüm tarihi aralığıyla
	// tek ilişkisel sorgu + sayım yapar. Aralık verilmezse yalnızca metinle filtreler.
	SearchByRange(ctx context.Context, text string, start, end *time.Time, offset, limit int) ([]models.Person, int64, error)

	// SearchMonthIDs ham SQL ile EXTRACT(MONTH FROM date_of_death) filtresini uygular
	// ve created_at DESC sırasıyla bir sayfa kişi ID'si + toplam sayıyı döndürür.
	SearchMonthIDs(ctx context.Context, text string, month, limit, offset int) ([]uint, int64, error)

	// FindByIDsOrdered verilen ID'lerin tam satırlarını created_at DESC sırasıyla yükler.
	FindByIDsOrdered(ctx context.Context, ids []uint) ([]models.Person, error)

	// FindCandidatesWithDeathDate bellek içi fallback için aday kümesini yükler:
	// yalnızca metin filtresi + date_of_death IS NOT NULL, created_at DESC.
	FindCandidatesWithDeathDate(ctx context.Context, text string) ([]models.Person, error)

	ActivityCounts(ctx context.Context, personIDs []uint) (map[uint]PersonActivityCounts, error)
	FamilyCounts(ctx context.Context, personIDs []uint) (map[uint]int64, error)
}

// PersonRepository IPersonRepository arayüzünü uygular.
type PersonRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Person]
}

// NewPersonRepository yeni bir PersonRepository örneği oluşturur.
func NewPersonRepository(db *gorm.DB) IPersonRepository {
	return &PersonRepository{db: db, base: NewBaseRepository[models.Person](db)}
}

func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	return r.base.Create(ctx, person)
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	return r.base.FindByID(ctx, id)
}

func (r *PersonRepository) Update(ctx context.Context, person *models.Person) error {
	return r.base.Update(ctx, person)
}

func (r *PersonRepository) Delete(ctx context.Context, person *models.Person) error {
	return r.base.Delete(ctx, person)
}

// FindAllPaginated kişileri created_at DESC sırasıyla sayfalayarak döndürür.
func (r *PersonRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Person, int64, error) {
	var persons []models.Person
	var total int64
	db := dbFromContext(ctx, r.db)

	if err := db.Model(&models.Person{}).Count(&total).Error; err != nil {
		configslog.Log.Error("PersonRepository.FindAllPaginated: sayım hatası", zap.Error(err))
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Offset(params.CalculateOffset()).
		Limit(params.PerPage).
		Find(&persons).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.FindAllPaginated: listeleme hatası", zap.Error(err))
		return nil, 0, err
	}
	return persons, total, nil
}

// applyTextFilter ad/soyad üzerinde büyük-küçük harf duyarsız substring filtresi uygular.
func applyTextFilter(query *gorm.DB, text string) *gorm.DB {
	if text == "" {
		return query
	}
	like := "%" + text + "%"
	return query.Where("first_name ILIKE ? OR last_name ILIKE ?", like, like)
}

// withSearchPreloads arama sonuçları için ilişkili verileri yükler:
// primary fotoğraf (en fazla 1) ve konum/mezarlık referansları.
func withSearchPreloads(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Photos", "is_primary = ?", true).
		Preload("PlaceOfBirth").
		Preload("PlaceOfDeath").
		Preload("Cemetery").
		Preload("Cemetery.Location")
}

func (r *PersonRepository) SearchByRange(ctx context.Context, text string, start, end *time.Time, offset, limit int) ([]models.Person, int64, error) {
	var persons []models.Person
	var total int64
	db := dbFromContext(ctx, r.db)

	query := applyTextFilter(db.Model(&models.Person{}), text)
	if start != nil && end != nil {
		query = query.Where("date_of_death >= ? AND date_of_death < ?", *start, *end)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("PersonRepository.SearchByRange: sayım hatası", zap.Error(err))
		return nil, 0, err
	}

	err := withSearchPreloads(query).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&persons).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.SearchByRange: listeleme hatası", zap.Error(err))
		return nil, 0, err
	}
	return persons, total, nil
}

func (r *PersonRepository) SearchMonthIDs(ctx context.Context, text string, month, limit, offset int) ([]uint, int64, error) {
	db := dbFromContext(ctx, r.db)

	whereSQL := "deleted_at IS NULL AND date_of_death IS NOT NULL AND EXTRACT(MONTH FROM date_of_death) = ?"
	args := []interface{}{month}
	if text != "" {
		like := "%" + text + "%"
		whereSQL += " AND (first_name ILIKE ? OR last_name ILIKE ?)"
		args = append(args, like, like)
	}

	var total int64
	countArgs := append([]interface{}{}, args...)
	err := db.Raw("SELECT COUNT(*) FROM persons WHERE "+whereSQL, countArgs...).Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ids []uint
	pageArgs := append(append([]interface{}{}, args...), limit, offset)
	err = db.Raw(
		"SELECT id FROM persons WHERE "+whereSQL+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		pageArgs...,
	).Scan(&ids).Error
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func (r *PersonRepository) FindByIDsOrdered(ctx context.Context, ids []uint) ([]models.Person, error) {
	if len(ids) == 0 {
		return []models.Person{}, nil
	}
	var persons []models.Person
	db := dbFromContext(ctx, r.db)
	err := withSearchPreloads(db.Where("id IN ?", ids)).
		Order("created_at DESC").
		Find(&persons).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.FindByIDsOrdered: DB hatası", zap.Error(err))
		return nil, err
	}
	return persons, nil
}

func (r *PersonRepository) FindCandidatesWithDeathDate(ctx context.Context, text string) ([]models.Person, error) {
	var persons []models.Person
	db := dbFromContext(ctx, r.db)

	query := applyTextFilter(db.Model(&models.Person{}), text).
		Where("date_of_death IS NOT NULL")
	err := withSearchPreloads(query).Order("created_at DESC").Find(&persons).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.FindCandidatesWithDeathDate: DB hatası", zap.Error(err))
		return nil, err
	}
	return persons, nil
}

// ActivityCounts verilen kişiler için memorial üzerinden anı ve sunu sayılarını toplar.
// Sayfa başına en fazla 100 kişi olduğundan iki grup sorgusu yeterlidir.
func (r *PersonRepository) ActivityCounts(ctx context.Context, personIDs []uint) (map[uint]PersonActivityCounts, error) {
	result := make(map[uint]PersonActivityCounts, len(personIDs))
	if len(personIDs) == 0 {
		return result, nil
	}
	db := dbFromContext(ctx, r.db)

	type row struct {
		PersonID uint
		Count    int64
	}

	var remembranceRows []row
	err := db.Model(&models.Remembrance{}).
		Select("memorials.person_id AS person_id, COUNT(remembrances.id) AS count").
		Joins("JOIN memorials ON memorials.id = remembrances.memorial_id").
		Where("memorials.person_id IN ?", personIDs).
		Group("memorials.person_id").
		Scan(&remembranceRows).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.ActivityCounts: anı sayımı hatası", zap.Error(err))
		return nil, err
	}
	for _, rr := range remembranceRows {
		counts := result[rr.PersonID]
		counts.Remembrances = rr.Count
		result[rr.PersonID] = counts
	}

	var offeringRows []row
	err = db.Model(&models.VirtualOffering{}).
		Select("memorials.person_id AS person_id, COUNT(virtual_offerings.id) AS count").
		Joins("JOIN memorials ON memorials.id = virtual_offerings.memorial_id").
		Where("memorials.person_id IN ?", personIDs).
		Group("memorials.person_id").
		Scan(&offeringRows).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.ActivityCounts: sunu sayımı hatası", zap.Error(err))
		return nil, err
	}
	for _, or := range offeringRows {
		counts := result[or.PersonID]
		counts.Offerings = or.Count
		result[or.PersonID] = counts
	}

	return result, nil
}

// FamilyCounts her kişi için iki yöndeki akrabalık kenarlarının toplamını döndürür.
func (r *PersonRepository) FamilyCounts(ctx context.Context, personIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(personIDs))
	if len(personIDs) == 0 {
		return result, nil
	}
	db := dbFromContext(ctx, r.db)

	type row struct {
		PersonID uint
		Count    int64
	}

	var outgoing []row
	err := db.Model(&models.FamilyRelationship{}).
		Select("person_id AS person_id, COUNT(id) AS count").
		Where("person_id IN ?", personIDs).
		Group("person_id").
		Scan(&outgoing).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.FamilyCounts: giden kenar sayımı hatası", zap.Error(err))
		return nil, err
	}
	for _, o := range outgoing {
		result[o.PersonID] += o.Count
	}

	var incoming []row
	err = db.Model(&models.FamilyRelationship{}).
		Select("related_person_id AS person_id, COUNT(id) AS count").
		Where("related_person_id IN ?", personIDs).
		Group("related_person_id").
		Scan(&incoming).Error
	if err != nil {
		configslog.Log.Error("PersonRepository.FamilyCounts: gelen kenar sayımı hatası", zap.Error(err))
		return nil, err
	}
	for _, i := range incoming {
		result[i.PersonID] += i.Count
	}

	return result, nil
}
