package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/middlewares"
	"anma.link/models"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// MemorialHandler anı, sunu ve hatırlatıcı uçları için handler.
type MemorialHandler struct {
	memorialService services.IMemorialService
	personService   services.IPersonService
}

// NewMemorialHandler yeni bir MemorialHandler örneği oluşturur.
func NewMemorialHandler(memorialService services.IMemorialService, personService services.IPersonService) *MemorialHandler {
	return &MemorialHandler{memorialService: memorialService, personService: personService}
}

type remembranceRequest struct {
	Message    string `json:"message"`
	AuthorName string `json:"authorName"`
	IsPublic   *bool  `json:"isPublic"`
}

type offeringRequest struct {
	OfferingType models.OfferingType `json:"offeringType"`
	Message      string              `json:"message"`
	AuthorName   string              `json:"authorName"`
}

type reminderRequest struct {
	Title     string                   `json:"title"`
	Date      *time.Time               `json:"date"`
	Frequency models.ReminderFrequency `json:"frequency"`
}

// resolvePersonID path parametresindeki kişiyi doğrular; kişi yoksa 0 döner ve
// 404 yanıtı yazılmış olur.
func (h *MemorialHandler) resolvePersonID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("personId")
	if err != nil || id <= 0 {
		return 0, apiresponse.NotFound(c, "Person not found")
	}
	if _, err := h.personService.GetPersonByID(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return 0, apiresponse.NotFound(c, "Person not found")
		}
		configslog.Log.Error("Memorial handler: kişi sorgusunda beklenmeyen hata", zap.Int("personId", id), zap.Error(err))
		return 0, apiresponse.InternalError(c)
	}
	return uint(id), nil
}

// ListRemembrances onaylı ve herkese açık anıları döner.
// GET /api/v1/memorials/:personId/remembrances
func (h *MemorialHandler) ListRemembrances(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	remembrances, err := h.memorialService.ListPublicRemembrances(c.UserContext(), personID)
	if err != nil {
		configslog.Log.Error("ListRemembrances handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, remembrances)
}

// SubmitRemembrance moderasyon kuyruğuna girecek yeni bir anı oluşturur.
// POST /api/v1/memorials/:personId/remembrances
func (h *MemorialHandler) SubmitRemembrance(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	var req remembranceRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}
	input := services.RemembranceInput{
		Message:    req.Message,
		AuthorName: req.AuthorName,
		IsPublic:   true,
	}
	if req.IsPublic != nil {
		input.IsPublic = *req.IsPublic
	}

	remembrance, err := h.memorialService.SubmitRemembrance(c.UserContext(), personID, input)
	if err != nil {
		var svcErr services.MemorialServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("SubmitRemembrance handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Created(c, remembrance)
}

// OfferingSummary kişinin sunu özetini döner.
// GET /api/v1/memorials/:personId/offerings
func (h *MemorialHandler) OfferingSummary(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	summary, err := h.memorialService.OfferingSummaryForPerson(c.UserContext(), personID)
	if err != nil {
		configslog.Log.Error("OfferingSummary handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, summary)
}

// SubmitOffering yeni bir sanal sunu bırakır.
// POST /api/v1/memorials/:personId/offerings
func (h *MemorialHandler) SubmitOffering(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	var req offeringRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}

	offering, err := h.memorialService.SubmitOffering(c.UserContext(), personID, services.OfferingInput{
		OfferingType: req.OfferingType,
		Message:      req.Message,
		AuthorName:   req.AuthorName,
	})
	if err != nil {
		var svcErr services.MemorialServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("SubmitOffering handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Created(c, offering)
}

// ListReminders kullanıcının kişi için aktif hatırlatıcılarını döner.
// GET /api/v1/memorials/:personId/reminders (token gerekli)
func (h *MemorialHandler) ListReminders(c *fiber.Ctx) error {
	userID, _ := middlewares.CurrentUserID(c)
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	reminders, err := h.memorialService.ListReminders(c.UserContext(), userID, personID)
	if err != nil {
		configslog.Log.Error("ListReminders handler: beklenmeyen hata",
			zap.Uint("userID", userID), zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, reminders)
}

// CreateReminder kullanıcıya ait yeni bir hatırlatıcı oluşturur.
// POST /api/v1/memorials/:personId/reminders (token gerekli)
func (h *MemorialHandler) CreateReminder(c *fiber.Ctx) error {
	userID, _ := middlewares.CurrentUserID(c)
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	var req reminderRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}
	input := services.ReminderInput{Title: req.Title, Frequency: req.Frequency}
	if req.Date != nil {
		input.Date = *req.Date
	}

	reminder, err := h.memorialService.CreateReminder(c.UserContext(), userID, personID, input)
	if err != nil {
		var svcErr services.MemorialServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("CreateReminder handler: beklenmeyen hata",
			zap.Uint("userID", userID), zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Created(c, reminder)
}

// DeleteReminder kullanıcının kendi hatırlatıcısını kaldırır. Başkasına ait
// hatırlatıcı için de 404 döner.
// DELETE /api/v1/memorials/reminders/:id (token gerekli)
func (h *MemorialHandler) DeleteReminder(c *fiber.Ctx) error {
	userID, _ := middlewares.CurrentUserID(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Reminder not found")
	}

	if err := h.memorialService.DeleteReminder(c.UserContext(), userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrReminderNotFound) {
			return apiresponse.NotFound(c, "Reminder not found")
		}
		configslog.Log.Error("DeleteReminder handler: beklenmeyen hata",
			zap.Uint("userID", userID), zap.Int("id", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id)})
}
