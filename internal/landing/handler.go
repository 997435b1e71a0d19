package landing

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/merchant"
)

// TenantResolver maps the authenticated merchant to their tenant.
type TenantResolver interface {
	TenantIDForMerchant(merchantID int) (int, error)
}

// StoreInfo is the storefront view of the store owning the page.
type StoreInfo struct {
	TenantID    int    `json:"-"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// StoreSource resolves the public store whose page is being rendered.
// Disabled stores do not resolve.
type StoreSource interface {
	PublicStore(slug string) (StoreInfo, error)
}

// Handler exposes the dashboard landing-page editor and the public
// storefront page.
type Handler struct {
	service  *Service
	resolver TenantResolver
	stores   StoreSource
}

func NewHandler(s *Service, resolver TenantResolver, stores StoreSource) *Handler {
	return &Handler{service: s, resolver: resolver, stores: stores}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/store/:slug/landing", h.publicPage)
}

// publicPage serves the published config the storefront renders, with the
// store's display fields. Drafts in the editor never leak here.
func (h *Handler) publicPage(c *fiber.Ctx) error {
	store, err := h.stores.PublicStore(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	cfg, err := h.service.Published(store.TenantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"store":    store,
		"template": cfg.Template,
		"enabled":  cfg.Enabled,
		"sections": cfg.EnabledSections(),
	})
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/landing", h.getLanding)
	app.Patch("/api/v1/landing", h.updateConfig)
	app.Patch("/api/v1/landing/sections/:key", h.updateSection)
	app.Put("/api/v1/landing/sections/:key/enabled", h.toggleSection)
	app.Put("/api/v1/landing/order", h.reorder)
	app.Post("/api/v1/landing/publish", h.publish)
	app.Post("/api/v1/landing/discard", h.discard)
}

func (h *Handler) tenantID(c *fiber.Ctx) (int, error) {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return 0, fiber.ErrUnauthorized
	}
	return h.resolver.TenantIDForMerchant(merchantID)
}

func (h *Handler) getLanding(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	state, err := h.service.Get(tenantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) updateConfig(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	patch := new(ConfigPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	state, err := h.service.UpdateConfig(tenantID, *patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) updateSection(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	key := c.Params("key")
	if DefaultVariant(key) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown section"})
	}
	patch := new(SectionPatch)
	if err := c.BodyParser(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	state, err := h.service.UpdateSection(tenantID, key, *patch)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) toggleSection(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	key := c.Params("key")
	if DefaultVariant(key) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown section"})
	}
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	state, err := h.service.ToggleSection(tenantID, key, payload.Enabled)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

type reorderRequest struct {
	Order []string `json:"order"`
}

func (h *Handler) reorder(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(reorderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(payload.Order) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order cannot be empty"})
	}
	state, err := h.service.Reorder(tenantID, payload.Order)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) publish(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	state, err := h.service.Publish(tenantID)
	if err != nil {
		// the draft survives; the client can retry
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message":        "publish failed, changes kept",
			"unsavedChanges": state.Dirty,
		})
	}
	return c.JSON(state)
}

func (h *Handler) discard(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	state, err := h.service.Discard(tenantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "landing config not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
