package tenant

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/merchant"
)

// Handler exposes the dashboard store-settings endpoints.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/tenant", h.getTenant)
	app.Put("/api/v1/tenant", h.updateTenant)
	app.Patch("/api/v1/tenant", h.updateTenant)
	app.Delete("/api/v1/tenant/logo", h.clearLogo)
}

func (h *Handler) getTenant(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	t, err := h.service.GetByMerchantID(merchantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(t)
}

func (h *Handler) updateTenant(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	patch := new(Patch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	t, err := h.service.ApplyPatch(merchantID, *patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(t)
}

func (h *Handler) clearLogo(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	t, err := h.service.ClearLogo(merchantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(t)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "tenant not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
