package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// SearchHandler kişi arama ucu için handler.
type SearchHandler struct {
	searchService services.ISearchService
}

// NewSearchHandler yeni bir SearchHandler örneği oluşturur.
func NewSearchHandler(searchService services.ISearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search metin ve ölüm tarihi filtreleriyle kişi arar.
// GET /api/v1/search/persons?q=&deathMonth=&deathYear=&page=&limit=
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	filter := services.SearchFilter{
		Query:      c.Query("q"),
		DeathMonth: c.QueryInt("deathMonth"),
		DeathYear:  c.QueryInt("deathYear"),
		Page:       c.QueryInt("page"),
		Limit:      c.QueryInt("limit"),
	}

	results, meta, err := h.searchService.SearchPersons(c.UserContext(), filter)
	if err != nil {
		configslog.Log.Error("Search handler: beklenmeyen hata", zap.String("q", filter.Query), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.SuccessPaginated(c, results, meta)
}
