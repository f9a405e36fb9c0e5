package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anma.link/models"
	"anma.link/pkg/queryparams"
	"anma.link/repositories"
)

func TestSearchFilterNormalize(t *testing.T) {
	filter := SearchFilter{
		Query:      "  Minh  ",
		DeathMonth: 13,
		DeathYear:  -1,
		Page:       0,
		Limit:      500,
	}
	filter.Normalize()

	assert.Equal(t, "Minh", filter.Query)
	// Aralık dışı ay korunur; sorgu genişletilmez, boş kümeyle eşleşir.
	assert.Equal(t, 13, filter.DeathMonth)
	assert.Equal(t, 0, filter.DeathYear)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 100, filter.Limit)
}

func TestPickStrategy(t *testing.T) {
	tests := []struct {
		name   string
		filter SearchFilter
		want   searchStrategy
	}{
		{"filtresiz", SearchFilter{}, strategyRange},
		{"yalnızca metin", SearchFilter{Query: "Minh"}, strategyRange},
		{"yalnızca yıl", SearchFilter{DeathYear: 1988}, strategyRange},
		{"yıl ve ay", SearchFilter{DeathMonth: 6, DeathYear: 1988}, strategyRange},
		{"yalnızca ay", SearchFilter{DeathMonth: 6}, strategyMonthExtract},
		{"ay ve metin", SearchFilter{Query: "Minh", DeathMonth: 6}, strategyMonthExtract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickStrategy(tt.filter))
		})
	}
}

func TestDeathRange(t *testing.T) {
	t.Run("tarih filtresi yok", func(t *testing.T) {
		start, end := deathRange(SearchFilter{})
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("yalnızca yıl", func(t *testing.T) {
		start, end := deathRange(SearchFilter{DeathYear: 1988})
		assert.Equal(t, time.Date(1988, time.January, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(1989, time.January, 1, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("yıl ve ay", func(t *testing.T) {
		start, end := deathRange(SearchFilter{DeathYear: 1988, DeathMonth: 6})
		assert.Equal(t, time.Date(1988, time.June, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(1988, time.July, 1, 0, 0, 0, 0, time.UTC), *end)
	})

	t.Run("aralık yıl sınırını aşar", func(t *testing.T) {
		start, end := deathRange(SearchFilter{DeathYear: 1988, DeathMonth: 12})
		assert.Equal(t, time.Date(1988, time.December, 1, 0, 0, 0, 0, time.UTC), *start)
		assert.Equal(t, time.Date(1989, time.January, 1, 0, 0, 0, 0, time.UTC), *end)
	})
}

func personWithDeath(id uint, death *time.Time) models.Person {
	p := models.Person{DateOfDeath: death}
	p.ID = id
	return p
}

func TestFilterByUTCMonth(t *testing.T) {
	june := time.Date(1988, time.June, 4, 0, 0, 0, 0, time.UTC)
	may := time.Date(1989, time.May, 12, 0, 0, 0, 0, time.UTC)
	// Yerel saatte 1 Haziran, UTC'de hâlâ 31 Mayıs.
	edge := time.Date(1990, time.June, 1, 0, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))

	persons := []models.Person{
		personWithDeath(1, &june),
		personWithDeath(2, &may),
		personWithDeath(3, nil),
		personWithDeath(4, &edge),
	}

	filtered := filterByUTCMonth(persons, 6)
	if assert.Len(t, filtered, 1) {
		assert.Equal(t, uint(1), filtered[0].ID)
	}

	filtered = filterByUTCMonth(persons, 5)
	if assert.Len(t, filtered, 2) {
		// Giriş sırası korunur.
		assert.Equal(t, uint(2), filtered[0].ID)
		assert.Equal(t, uint(4), filtered[1].ID)
	}
}

func TestPageWindow(t *testing.T) {
	death := time.Date(1988, time.June, 4, 0, 0, 0, 0, time.UTC)
	persons := make([]models.Person, 0, 5)
	for i := uint(1); i <= 5; i++ {
		persons = append(persons, personWithDeath(i, &death))
	}

	t.Run("ilk sayfa", func(t *testing.T) {
		window := pageWindow(persons, 0, 2)
		if assert.Len(t, window, 2) {
			assert.Equal(t, uint(1), window[0].ID)
			assert.Equal(t, uint(2), window[1].ID)
		}
	})

	t.Run("son sayfa eksik", func(t *testing.T) {
		window := pageWindow(persons, 4, 2)
		if assert.Len(t, window, 1) {
			assert.Equal(t, uint(5), window[0].ID)
		}
	})

	t.Run("ofset aralık dışında", func(t *testing.T) {
		window := pageWindow(persons, 10, 2)
		assert.NotNil(t, window)
		assert.Empty(t, window)
	})
}

// fakePersonRepo bellek içi IPersonRepository uygulamasıdır. Kayıtlar
// created_at DESC sırasında tutulur; monthSQLErr doluysa ham SQL yolu
// başarısız olur ve planlayıcı fallback'e düşer.
type fakePersonRepo struct {
	persons     []models.Person
	monthSQLErr error
}

func matchesText(p models.Person, text string) bool {
	if text == "" {
		return true
	}
	t := strings.ToLower(text)
	return strings.Contains(strings.ToLower(p.FirstName), t) ||
		strings.Contains(strings.ToLower(p.LastName), t)
}

func (f *fakePersonRepo) Create(_ context.Context, person *models.Person) error { return nil }

func (f *fakePersonRepo) FindByID(_ context.Context, id uint) (*models.Person, error) {
	for i := range f.persons {
		if f.persons[i].ID == id {
			return &f.persons[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakePersonRepo) Update(_ context.Context, person *models.Person) error { return nil }
func (f *fakePersonRepo) Delete(_ context.Context, person *models.Person) error { return nil }

func (f *fakePersonRepo) FindAllPaginated(_ context.Context, params queryparams.ListParams) ([]models.Person, int64, error) {
	page := pageWindow(f.persons, params.CalculateOffset(), params.PerPage)
	return page, int64(len(f.persons)), nil
}

func (f *fakePersonRepo) SearchByRange(_ context.Context, text string, start, end *time.Time, offset, limit int) ([]models.Person, int64, error) {
	matched := make([]models.Person, 0, len(f.persons))
	for _, p := range f.persons {
		if !matchesText(p, text) {
			continue
		}
		if start != nil {
			if p.DateOfDeath == nil || p.DateOfDeath.Before(*start) || !p.DateOfDeath.Before(*end) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return pageWindow(matched, offset, limit), int64(len(matched)), nil
}

func (f *fakePersonRepo) SearchMonthIDs(_ context.Context, text string, month, limit, offset int) ([]uint, int64, error) {
	if f.monthSQLErr != nil {
		return nil, 0, f.monthSQLErr
	}
	ids := make([]uint, 0, len(f.persons))
	for _, p := range f.persons {
		if p.DateOfDeath == nil || int(p.DateOfDeath.UTC().Month()) != month || !matchesText(p, text) {
			continue
		}
		ids = append(ids, p.ID)
	}
	total := int64(len(ids))
	if offset >= len(ids) {
		return []uint{}, total, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end], total, nil
}

func (f *fakePersonRepo) FindByIDsOrdered(_ context.Context, ids []uint) ([]models.Person, error) {
	wanted := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	result := make([]models.Person, 0, len(ids))
	for _, p := range f.persons {
		if _, ok := wanted[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePersonRepo) FindCandidatesWithDeathDate(_ context.Context, text string) ([]models.Person, error) {
	result := make([]models.Person, 0, len(f.persons))
	for _, p := range f.persons {
		if p.DateOfDeath != nil && matchesText(p, text) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePersonRepo) ActivityCounts(_ context.Context, personIDs []uint) (map[uint]repositories.PersonActivityCounts, error) {
	return map[uint]repositories.PersonActivityCounts{}, nil
}

func (f *fakePersonRepo) FamilyCounts(_ context.Context, personIDs []uint) (map[uint]int64, error) {
	return map[uint]int64{}, nil
}

var _ repositories.IPersonRepository = (*fakePersonRepo)(nil)

// monthFixture created_at DESC sırasında beş kişi döndürür; 10, 8, 7 ve 6
// numaralı kişiler Haziran'da, 9 numaralı kişi Mayıs'ta ölmüştür.
func monthFixture() []models.Person {
	june := func(day int) *time.Time {
		t := time.Date(1988, time.June, day, 0, 0, 0, 0, time.UTC)
		return &t
	}
	may := time.Date(1989, time.May, 12, 0, 0, 0, 0, time.UTC)

	return []models.Person{
		personWithDeath(10, june(4)),
		personWithDeath(9, &may),
		personWithDeath(8, june(9)),
		personWithDeath(7, june(14)),
		personWithDeath(6, june(21)),
	}
}

func resultIDs(results []PersonSearchResult) []uint {
	ids := make([]uint, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSearchByMonthFallbackMatchesPrimaryPath(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		wantIDs   []uint
		wantTotal int64
	}{
		{"ilk sayfa", 1, []uint{10, 8}, 4},
		{"ikinci sayfa", 2, []uint{7, 6}, 4},
		{"boş sayfa", 3, []uint{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := SearchFilter{DeathMonth: 6, Page: tt.page, Limit: 2}

			primary := NewSearchService(&fakePersonRepo{persons: monthFixture()})
			primaryResults, primaryMeta, err := primary.SearchPersons(context.Background(), filter)
			require.NoError(t, err)

			// Ham SQL yolu koparsa fallback aynı sayfa/sıralama/toplam sözleşmesini verir.
			fallback := NewSearchService(&fakePersonRepo{
				persons:     monthFixture(),
				monthSQLErr: errors.New("bağlantı koptu"),
			})
			fallbackResults, fallbackMeta, err := fallback.SearchPersons(context.Background(), filter)
			require.NoError(t, err)

			assert.Equal(t, tt.wantIDs, resultIDs(primaryResults))
			assert.Equal(t, resultIDs(primaryResults), resultIDs(fallbackResults))
			assert.Equal(t, tt.wantTotal, primaryMeta.Total)
			assert.Equal(t, primaryMeta, fallbackMeta)
		})
	}
}

func TestSearchOutOfRangeMonthReturnsEmpty(t *testing.T) {
	filter := SearchFilter{DeathMonth: 13, Page: 1, Limit: 20}

	for _, monthSQLErr := range []error{nil, errors.New("bağlantı koptu")} {
		svc := NewSearchService(&fakePersonRepo{persons: monthFixture(), monthSQLErr: monthSQLErr})

		results, meta, err := svc.SearchPersons(context.Background(), filter)
		require.NoError(t, err)
		// Aralık dışı ay tüm kayıtları döndürmek yerine hiçbir kayıtla eşleşmez.
		assert.Empty(t, results)
		assert.Zero(t, meta.Total)
	}
}
