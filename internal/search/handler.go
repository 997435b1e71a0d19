package search

import "github.com/gofiber/fiber/v2"

// SlugResolver maps a public store slug to a tenant id.
type SlugResolver interface {
	TenantIDForSlug(slug string) (int, error)
}

// Handler exposes the public recent-search routes. The shopper identifies
// their list with an X-Search-Key header, the same way the cart routes use
// X-Cart-Key.
type Handler struct {
	service *Service
	slugs   SlugResolver
}

func NewHandler(s *Service, slugs SlugResolver) *Handler {
	return &Handler{service: s, slugs: slugs}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/store/:slug/recent-searches", h.getRecent)
	app.Post("/api/v1/store/:slug/recent-searches", h.recordSearch)
}

func (h *Handler) resolve(c *fiber.Ctx) (tenantID int, key string, err error) {
	tenantID, err = h.slugs.TenantIDForSlug(c.Params("slug"))
	if err != nil {
		return 0, "", err
	}
	return tenantID, c.Get("X-Search-Key"), nil
}

func (h *Handler) getRecent(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	terms, err := h.service.Recent(tenantID, key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"terms": terms})
}

type recordRequest struct {
	Term string `json:"term"`
}

func (h *Handler) recordSearch(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	payload := new(recordRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	terms, err := h.service.Record(tenantID, key, payload.Term)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"terms": terms})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrSearchKeyRequired:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Search-Key header is required"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
