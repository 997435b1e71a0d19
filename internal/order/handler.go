package order

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/merchant"
)

// TenantResolver maps the authenticated merchant to their tenant.
type TenantResolver interface {
	TenantIDForMerchant(merchantID int) (int, error)
}

// Handler serves the public tracking endpoint and the merchant order list.
type Handler struct {
	service  *Service
	resolver TenantResolver
}

func NewHandler(s *Service, resolver TenantResolver) *Handler {
	return &Handler{service: s, resolver: resolver}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/track/:orderNumber", h.trackOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.listOrders)
	app.Put("/api/v1/orders/:id<[0-9]+>/status", h.updateStatus)
}

// trackingView hides the merchant-facing fields from shoppers.
type trackingView struct {
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	Items        []Item  `json:"items"`
	Subtotal     int     `json:"subtotal"`
	Tax          float64 `json:"tax"`
	Shipping     int     `json:"shipping"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

func (h *Handler) trackOrder(c *fiber.Ctx) error {
	o, err := h.service.GetByNumber(c.Params("orderNumber"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(trackingView{
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Items:        o.Items,
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Shipping:     o.Shipping,
		Total:        o.Total,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
	})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	tenantID, err := h.resolver.TenantIDForMerchant(merchantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "tenant not found"})
	}
	orders, err := h.service.ListByTenant(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	tenantID, err := h.resolver.TenantIDForMerchant(merchantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "tenant not found"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// a merchant can only touch their own orders
	existing, err := h.service.GetByID(id)
	if err != nil || existing.TenantID != tenantID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}

	updated, err := h.service.UpdateStatus(id, payload.Status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid status"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
