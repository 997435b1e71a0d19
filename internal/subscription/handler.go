package subscription

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/merchant"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/subscription", h.getSubscription)
	app.Get("/api/v1/subscription/payments", h.getPayments)
}

func (h *Handler) getSubscription(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	st, err := h.service.Status(merchantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	plans, err := h.service.Plans()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"current": st, "plans": plans})
}

func (h *Handler) getPayments(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payments, err := h.service.Payments(merchantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(payments)
}
