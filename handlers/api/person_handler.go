package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/middlewares"
	"anma.link/pkg/apiresponse"
	"anma.link/pkg/queryparams"
	"anma.link/services"
)

// PersonHandler kişi CRUD uçları için handler.
type PersonHandler struct {
	personService services.IPersonService
}

// NewPersonHandler yeni bir PersonHandler örneği oluşturur.
func NewPersonHandler(personService services.IPersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

type personRequest struct {
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	DateOfDeath    *time.Time `json:"dateOfDeath"`
	CauseOfDeath   string     `json:"causeOfDeath"`
	PlaceOfBirthID *uint      `json:"placeOfBirthId"`
	PlaceOfDeathID *uint      `json:"placeOfDeathId"`
	CemeteryID     *uint      `json:"cemeteryId"`
}

func (r personRequest) toInput() services.PersonInput {
	return services.PersonInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DateOfBirth:    r.DateOfBirth,
		DateOfDeath:    r.DateOfDeath,
		CauseOfDeath:   r.CauseOfDeath,
		PlaceOfBirthID: r.PlaceOfBirthID,
		PlaceOfDeathID: r.PlaceOfDeathID,
		CemeteryID:     r.CemeteryID,
	}
}

// List kişileri sayfalayarak döner. GET /api/v1/persons
func (h *PersonHandler) List(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams()
	}

	persons, meta, err := h.personService.ListPersons(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Person List handler: beklenmeyen hata", zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.SuccessPaginated(c, persons, meta)
}

// Get tek kişiyi döner. GET /api/v1/persons/:id
func (h *PersonHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Person not found")
	}

	person, err := h.personService.GetPersonByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return apiresponse.NotFound(c, "Person not found")
		}
		configslog.Log.Error("Person Get handler: beklenmeyen hata", zap.Int("id", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, person)
}

// Create yeni kişi oluşturur. POST /api/v1/persons (token gerekli)
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	userID, _ := middlewares.CurrentUserID(c)

	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}

	person, err := h.personService.CreatePerson(c.UserContext(), userID, req.toInput())
	if err != nil {
		var svcErr services.PersonServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("Person Create handler: beklenmeyen hata", zap.Uint("userID", userID), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Created(c, person)
}

// Update mevcut kişiyi günceller. PUT /api/v1/persons/:id (token gerekli)
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	userID, _ := middlewares.CurrentUserID(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Person not found")
	}

	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}

	person, err := h.personService.UpdatePerson(c.UserContext(), userID, uint(id), req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return apiresponse.NotFound(c, "Person not found")
		}
		var svcErr services.PersonServiceError
		if errors.As(err, &svcErr) {
			return apiresponse.ValidationError(c, svcErr.Error())
		}
		configslog.Log.Error("Person Update handler: beklenmeyen hata", zap.Int("id", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, person)
}

// Delete kişiyi siler. DELETE /api/v1/persons/:id (token gerekli)
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Person not found")
	}

	if err := h.personService.DeletePerson(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return apiresponse.NotFound(c, "Person not found")
		}
		configslog.Log.Error("Person Delete handler: beklenmeyen hata", zap.Int("id", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, fiber.Map{"id": uint(id)})
}
