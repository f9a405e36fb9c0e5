package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		params      ListParams
		wantPage    int
		wantPerPage int
	}{
		{"sıfır değerler", ListParams{}, 1, 20},
		{"negatif değerler", ListParams{Page: -3, PerPage: -5}, 1, 20},
		{"limit üst sınırda", ListParams{Page: 2, PerPage: 100}, 2, 100},
		{"limit üst sınırı aşıyor", ListParams{Page: 2, PerPage: 250}, 2, 100},
		{"geçerli değerler", ListParams{Page: 3, PerPage: 10}, 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			assert.Equal(t, tt.wantPage, tt.params.Page)
			assert.Equal(t, tt.wantPerPage, tt.params.PerPage)
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, PerPage: 20}.CalculateOffset())
	assert.Equal(t, 40, ListParams{Page: 3, PerPage: 20}.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(1, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(ListParams{Page: 2, PerPage: 20}, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}
