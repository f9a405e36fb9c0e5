package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/pkg/queryparams"
	"anma.link/repositories"
)

// SearchFilter kişi arama uç noktasının girdi parametreleridir.
type SearchFilter struct {
	Query      string
	DeathMonth int // 0 = filtre yok; 1-12 dışı değerler hiçbir kayıtla eşleşmez
	DeathYear  int // 0 = filtre yok
	Page       int
	Limit      int
}

// Normalize metni kırpar ve sayfalama değerlerini izin verilen aralığa çeker.
// Aralık dışı bir ay değeri sıfırlanmaz: filtre genişletilmek yerine boş
// sonuç kümesiyle eşleşir.
func (f *SearchFilter) Normalize() {
	f.Query = strings.TrimSpace(f.Query)
	if f.DeathYear < 0 {
		f.DeathYear = 0
	}
	params := queryparams.ListParams{Page: f.Page, PerPage: f.Limit}
	params.Validate()
	f.Page = params.Page
	f.Limit = params.PerPage
}

func (f SearchFilter) offset() int {
	return (f.Page - 1) * f.Limit
}

// searchStrategy sorgu şekline göre seçilen yürütme yoludur.
type searchStrategy int

const (
	// strategyRange tarih filtresi tek bir yarı açık [start, end) aralığı olarak
	// ifade edilebildiğinde (yıl, yıl+ay) veya hiç tarih filtresi yokken kullanılır.
	strategyRange searchStrategy = iota
	// strategyMonthExtract yılsız ay filtresi için ham SQL EXTRACT yoludur.
	// Bu yol başarısız olursa bellek içi fallback devreye girer.
	strategyMonthExtract
)

// pickStrategy filtre şeklinin saf bir fonksiyonudur.
func pickStrategy(f SearchFilter) searchStrategy {
	if f.DeathMonth != 0 && f.DeathYear == 0 {
		return strategyMonthExtract
	}
	return strategyRange
}

// deathRange yıl / yıl+ay filtresini UTC yarı açık [start, end) aralığına çevirir.
// Tarih filtresi yoksa (nil, nil) döner.
func deathRange(f SearchFilter) (*time.Time, *time.Time) {
	if f.DeathYear == 0 {
		return nil, nil
	}
	var start, end time.Time
	if f.DeathMonth != 0 {
		start = time.Date(f.DeathYear, time.Month(f.DeathMonth), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0)
	} else {
		start = time.Date(f.DeathYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
	}
	return &start, &end
}

// filterByUTCMonth ölüm ayı (UTC) verilen aya eşit olan kişileri, giriş sırasını
// koruyarak süzer. Bellek içi fallback'in çekirdeğidir.
func filterByUTCMonth(persons []models.Person, month int) []models.Person {
	filtered := make([]models.Person, 0, len(persons))
	for _, p := range persons {
		if p.DateOfDeath == nil {
			continue
		}
		if int(p.DateOfDeath.UTC().Month()) == month {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// pageWindow süzülmüş diziden [offset, offset+limit) penceresini keser.
// Birincil yol ile birebir aynı sayfalama semantiği korunur.
func pageWindow(persons []models.Person, offset, limit int) []models.Person {
	if offset >= len(persons) {
		return []models.Person{}
	}
	end := offset + limit
	if end > len(persons) {
		end = len(persons)
	}
	return persons[offset:end]
}

// MemorialActivity arama sonucundaki aktivite özetidir.
type MemorialActivity struct {
	Remembrances int64 `json:"remembrances"`
	Offerings    int64 `json:"offerings"`
}

// PersonSearchResult zenginleştirilmiş arama sonucu satırıdır: temel kişi alanları,
// primary fotoğraf (en fazla 1), memorial aktivite sayıları ve akrabalık kenarı toplamı.
type PersonSearchResult struct {
	models.Person
	Photos           []models.Photo   `json:"photos"`
	MemorialActivity MemorialActivity `json:"memorialActivity"`
	FamilyCount      int64            `json:"familyCount"`
}

// ISearchService kişi arama planlayıcısı için arayüz.
type ISearchService interface {
	SearchPersons(ctx context.Context, filter SearchFilter) ([]PersonSearchResult, queryparams.PaginationMeta, error)
}

// SearchService ISearchService arayüzünü uygular. Sorgu şekline göre üç strateji
// arasında seçim yapar; fallback çağıran için görünmezdir (aynı çıktı sözleşmesi).
type SearchService struct {
	personRepo repositories.IPersonRepository
}

// NewSearchService yeni bir SearchService örneği oluşturur.
func NewSearchService(personRepo repositories.IPersonRepository) ISearchService {
	return &SearchService{personRepo: personRepo}
}

func (s *SearchService) SearchPersons(ctx context.Context, filter SearchFilter) ([]PersonSearchResult, queryparams.PaginationMeta, error) {
	filter.Normalize()

	var persons []models.Person
	var total int64
	var err error

	switch pickStrategy(filter) {
	case strategyMonthExtract:
		persons, total, err = s.searchByMonth(ctx, filter)
	default:
		start, end := deathRange(filter)
		persons, total, err = s.personRepo.SearchByRange(ctx, filter.Query, start, end, filter.offset(), filter.Limit)
	}
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}

	results, err := s.enrich(ctx, persons)
	if err != nil {
		return nil, queryparams.PaginationMeta{}, err
	}

	meta := queryparams.NewPaginationMeta(queryparams.ListParams{Page: filter.Page, PerPage: filter.Limit}, total)
	return results, meta, nil
}

// searchByMonth önce ham SQL EXTRACT yolunu dener; herhangi bir nedenle başarısız
// olursa bellek içi filtrelemeye sessizce düşer. Hata çağırana yansıtılmaz,
// yalnızca loglanır; iki yol aynı sıralama ve sayfalama sözleşmesini paylaşır.
func (s *SearchService) searchByMonth(ctx context.Context, filter SearchFilter) ([]models.Person, int64, error) {
	ids, total, err := s.personRepo.SearchMonthIDs(ctx, filter.Query, filter.DeathMonth, filter.Limit, filter.offset())
	if err == nil {
		persons, hydrateErr := s.personRepo.FindByIDsOrdered(ctx, ids)
		if hydrateErr == nil {
			return persons, total, nil
		}
		err = hydrateErr
	}

	configslog.Log.Warn("Ay bazlı ham SQL araması başarısız oldu, bellek içi filtrelemeye geçiliyor",
		zap.Int("deathMonth", filter.DeathMonth), zap.Error(err))

	candidates, fbErr := s.personRepo.FindCandidatesWithDeathDate(ctx, filter.Query)
	if fbErr != nil {
		return nil, 0, fbErr
	}
	filtered := filterByUTCMonth(candidates, filter.DeathMonth)
	page := pageWindow(filtered, filter.offset(), filter.Limit)
	return page, int64(len(filtered)), nil
}

// enrich sayfa satırlarını aktivite ve akrabalık sayılarıyla tamamlar.
func (s *SearchService) enrich(ctx context.Context, persons []models.Person) ([]PersonSearchResult, error) {
	ids := make([]uint, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}

	activity, err := s.personRepo.ActivityCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	family, err := s.personRepo.FamilyCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]PersonSearchResult, 0, len(persons))
	for _, p := range persons {
		photos := p.Photos
		if photos == nil {
			photos = []models.Photo{}
		}
		counts := activity[p.ID]
		results = append(results, PersonSearchResult{
			Person: p,
			Photos: photos,
			MemorialActivity: MemorialActivity{
				Remembrances: counts.Remembrances,
				Offerings:    counts.Offerings,
			},
			FamilyCount: family[p.ID],
		})
	}
	return results, nil
}

var _ ISearchService = (*SearchService)(nil)
