package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// FamilyHandler akrabalık uçları için handler.
type FamilyHandler struct {
	familyService services.IFamilyService
	personService services.IPersonService
}

// NewFamilyHandler yeni bir FamilyHandler örneği oluşturur.
func NewFamilyHandler(familyService services.IFamilyService, personService services.IPersonService) *FamilyHandler {
	return &FamilyHandler{familyService: familyService, personService: personService}
}

type familyRequest struct {
	RelatedPersonID  uint                    `json:"relatedPersonId"`
	RelationshipType models.RelationshipType `json:"relationshipType"`
}

func (h *FamilyHandler) resolvePersonID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("personId")
	if err != nil || id <= 0 {
		return 0, apiresponse.NotFound(c, "Person not found")
	}
	if _, err := h.personService.GetPersonByID(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return 0, apiresponse.NotFound(c, "Person not found")
		}
		configslog.Log.Error("Family handler: kişi sorgusunda beklenmeyen hata", zap.Int("personId", id), zap.Error(err))
		return 0, apiresponse.InternalError(c)
	}
	return uint(id), nil
}

// List kişinin iki yönlü akrabalık kenarlarını döner.
// GET /api/v1/family/:personId
func (h *FamilyHandler) List(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	relationships, err := h.familyService.ListByPerson(c.UserContext(), personID)
	if err != nil {
		configslog.Log.Error("Family List handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, relationships)
}

// Create yeni bir akrabalık kenarı ekler.
// POST /api/v1/family/:personId (token gerekli)
func (h *FamilyHandler) Create(c *fiber.Ctx) error {
	personID, failed := h.resolvePersonID(c)
	if personID == 0 {
		return failed
	}

	var req familyRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}
	if req.RelatedPersonID != 0 {
		if _, err := h.personService.GetPersonByID(c.UserContext(), req.RelatedPersonID); err != nil {
			if errors.Is(err, services.ErrPersonNotFound) {
				return apiresponse.NotFound(c, "Related person not found")
			}
			configslog.Log.Error("Family Create handler: ilişkili kişi sorgusunda beklenmeyen hata",
				zap.Uint("relatedPersonID", req.RelatedPersonID), zap.Error(err))
			return apiresponse.InternalError(c)
		}
	}

	relationship, err := h.familyService.Create(c.UserContext(), personID, services.FamilyInput{
		RelatedPersonID:  req.RelatedPersonID,
		RelationshipType: req.RelationshipType,
	})
	if err != nil {
		var svcErr services.FamilyServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("Family Create handler: beklenmeyen hata", zap.Uint("personID", personID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Created(c, relationship)
}
