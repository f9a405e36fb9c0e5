package queryparams

// Sayfalama varsayılanları ve sınırları. Tüm listeleme uçları aynı kuralları kullanır.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListParams listeleme isteklerinden gelen sayfalama parametrelerini tutar.
type ListParams struct {
	Page    int `query:"page"`
	PerPage int `query:"limit"`
}

// DefaultListParams varsayılan değerlerle yeni bir ListParams döndürür.
func DefaultListParams() ListParams {
	return ListParams{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Validate sayfa ve limit değerlerini izin verilen aralığa çeker.
// Page en az 1, PerPage [1, MaxPerPage] aralığında olmalıdır.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// CalculateOffset geçerli sayfa için satır ofsetini hesaplar.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam kayıt sayısından toplam sayfa sayısını üretir (ceil).
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}

// PaginationMeta response zarfındaki pagination alanının şeklidir.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationMeta parametrelerden ve toplam sayıdan meta üretir.
func NewPaginationMeta(params ListParams, total int64) PaginationMeta {
	return PaginationMeta{
		Page:       params.Page,
		Limit:      params.PerPage,
		Total:      total,
		TotalPages: CalculateTotalPages(total, params.PerPage),
	}
}
