package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// LocationHandler konum referans verisi uçları için handler.
type LocationHandler struct {
	locationService services.ILocationService
}

// NewLocationHandler yeni bir LocationHandler örneği oluşturur.
func NewLocationHandler(locationService services.ILocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

type locationRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// List tüm konumları ada göre sıralı döner. GET /api/v1/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.locationService.ListLocations(c.UserContext())
	if err != nil {
		configslog.Log.Error("Location List handler: beklenmeyen hata", zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, locations)
}

// Create yeni konum oluşturur. POST /api/v1/locations (token gerekli)
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req locationRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}

	location, err := h.locationService.CreateLocation(c.UserContext(), services.LocationInput{
		Name:    req.Name,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		var svcErr services.LocationServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("Location Create handler: beklenmeyen hata", zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Created(c, location)
}
