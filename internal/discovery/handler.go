package discovery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the public marketplace endpoints.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/discovery/categories", h.listCategories)
	app.Get("/api/v1/discovery/stores", h.listStores)
	app.Get("/api/v1/discovery/search", h.searchStores)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to load categories"})
	}
	return c.JSON(categories)
}

func (h *Handler) listStores(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	stores, err := h.service.ListStores(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to load stores"})
	}
	return c.JSON(stores)
}

func (h *Handler) searchStores(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	stores, err := h.service.SearchStores(c.Query("q"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "search failed"})
	}
	return c.JSON(stores)
}
