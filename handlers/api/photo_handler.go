package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// PhotoHandler fotoğraf yükleme ve listeleme uçları için handler.
type PhotoHandler struct {
	photoService  services.IPhotoService
	personService services.IPersonService
}

// NewPhotoHandler yeni bir PhotoHandler örneği oluşturur.
func NewPhotoHandler(photoService services.IPhotoService, personService services.IPersonService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService, personService: personService}
}

func (h *PhotoHandler) resolvePersonID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("personId")
	if err != nil || id <= 0 {
		return 0, apiresponse.NotFound(c, "Person not found")
	}
	if _, err := h.personService.GetPersonByID(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return 0, apiresponse.NotFound(c, "Person not found")
		}
		configslog.Log.Error("Photo handler: kişi sorgusunda beklenmeyen hata", zap.Int("personId", id), zap.Error(err))
		return 0, apiresponse.InternalError(c)
	}
	return uint(id), nil
}

// List kişinin fotoğraflarını döner. GET /api/v1/photos/:personId
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	photos, err := h.photoService.ListByPerson(c.UserContext(), personID)
	if err != nil {
		configslog.Log.Error("Photo List handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, photos)
}

// Upload multipart form'dan fotoğraf yükler. "photo" alanı zorunludur,
// "caption" ve "isPrimary" isteğe bağlıdır.
// POST /api/v1/photos/:personId (token gerekli)
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return apiresponse.Fail(c, fiber.StatusBadRequest, apiresponse.CodeNoFile, "Photo file is required")
	}

	photo, err := h.photoService.Upload(c.UserContext(), personID, services.PhotoUploadInput{
		File:      file,
		Caption:   c.FormValue("caption"),
		IsPrimary: c.FormValue("isPrimary") == "true",
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhotoFileRequired):
			return apiresponse.Fail(c, fiber.StatusBadRequest, apiresponse.CodeNoFile, "Photo file is required")
		case errors.Is(err, services.ErrPhotoTypeNotAllowed):
			return apiresponse.ValidationError(c, "Only JPG, PNG or WebP images are accepted")
		case errors.Is(err, services.ErrPhotoTooLarge):
			return apiresponse.ValidationError(c, "Photo must be at most 5MB")
		case errors.Is(err, services.ErrPhotoCaptionTooLong):
			return apiresponse.ValidationError(c, "Caption must be at most 200 characters")
		default:
			configslog.Log.Error("Photo Upload handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
			return apiresponse.InternalError(c)
		}
	}
	return apiresponse.Created(c, photo)
}

// SetPrimary fotoğrafı kişinin birincil fotoğrafı yapar.
// PUT /api/v1/photos/:photoId/primary (token gerekli)
func (h *PhotoHandler) SetPrimary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("photoId")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Photo not found")
	}

	photo, err := h.photoService.SetPrimary(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPhotoNotFound) {
			return apiresponse.NotFound(c, "Photo not found")
		}
		configslog.Log.Error("SetPrimary handler: beklenmeyen hata", zap.Int("photoId", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, photo)
}
