package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/cart"
	"github.com/fibidy/fibidy-backend/internal/tenant"
)

// TenantSource resolves the public store being checked out.
type TenantSource interface {
	GetBySlug(slug string) (tenant.Tenant, error)
}

// CartLoader hydrates the shopper's cart session.
type CartLoader interface {
	Load(tenantID int, key string) (cart.Session, error)
}

// Handler serves the public checkout endpoint.
type Handler struct {
	service *Service
	tenants TenantSource
	carts   CartLoader
}

func NewHandler(s *Service, tenants TenantSource, carts CartLoader) *Handler {
	return &Handler{service: s, tenants: tenants, carts: carts}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/store/:slug/checkout", h.submit)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	t, err := h.tenants.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}

	payload := new(Request)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	cartKey := c.Get("X-Cart-Key")
	sess, err := h.carts.Load(t.ID, cartKey)
	if err != nil {
		switch err {
		case cart.ErrCartKeyRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Cart-Key header is required"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	result, err := h.service.Submit(t, &sess.Cart, cartKey, *payload)
	if err != nil {
		switch err {
		case ErrNameRequired, ErrPhoneRequired, ErrAddressRequired, ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "could not submit order, please try again"})
		}
	}
	return c.JSON(result)
}
