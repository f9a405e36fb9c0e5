package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// AdminHandler moderasyon kuyruğu uçları için handler. Tüm uçlar
// AuthMiddleware + AdminMiddleware arkasındadır.
type AdminHandler struct {
	contributionService services.IContributionService
}

// NewAdminHandler yeni bir AdminHandler örneği oluşturur.
func NewAdminHandler(contributionService services.IContributionService) *AdminHandler {
	return &AdminHandler{contributionService: contributionService}
}

// ListSubmissions bekleyen katkıları ve onaysız anıları döner.
// GET /api/v1/admin/submissions
func (h *AdminHandler) ListSubmissions(c *fiber.Ctx) error {
	queue, err := h.contributionService.ListSubmissions(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListSubmissions handler: beklenmeyen hata", zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, queue)
}

// ApproveRemembrance anıyı herkese açık listeye alır.
// PUT /api/v1/admin/remembrances/:id/approve
func (h *AdminHandler) ApproveRemembrance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Remembrance not found")
	}

	remembrance, err := h.contributionService.ApproveRemembrance(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrModRemembranceNotFound) {
			return apiresponse.NotFound(c, "Remembrance not found")
		}
		configslog.Log.Error("ApproveRemembrance handler: beklenmeyen hata", zap.Int("id", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, remembrance)
}

// ApproveContribution katkı kaydını APPROVED durumuna taşır.
// PUT /api/v1/admin/contributions/:id/approve
func (h *AdminHandler) ApproveContribution(c *fiber.Ctx) error {
	return h.updateContribution(c, h.contributionService.ApproveContribution)
}

// RejectContribution katkı kaydını REJECTED durumuna taşır. İlişkili içerik
// geri alınmaz; kayıt yalnızca denetim izinde işaretlenir.
// PUT /api/v1/admin/contributions/:id/reject
func (h *AdminHandler) RejectContribution(c *fiber.Ctx) error {
	return h.updateContribution(c, h.contributionService.RejectContribution)
}

func (h *AdminHandler) updateContribution(c *fiber.Ctx, op func(ctx context.Context, id uint) (*models.Contribution, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.NotFound(c, "Contribution not found")
	}

	contribution, err := op(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrContributionNotFound) {
			return apiresponse.NotFound(c, "Contribution not found")
		}
		configslog.Log.Error("Contribution update handler: beklenmeyen hata", zap.Int("id", id), zap.Error(err))
		return apiresponse.InternalError(c)
	}
	return apiresponse.Success(c, contribution)
}
