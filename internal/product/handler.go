package product

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

// SlugResolver maps a public store slug to a tenant id.
type SlugResolver interface {
	TenantIDForSlug(slug string) (int, error)
}

// Handler exposes catalog routes: dashboard CRUD and the public storefront
// listing.
type Handler struct {
	service  *Service
	resolver TenantResolver
	slugs    SlugResolver
}

func NewHandler(s *Service, resolver TenantResolver, slugs SlugResolver) *Handler {
	return &Handler{service: s, resolver: resolver, slugs: slugs}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/store/:slug/products", h.listStoreProducts)
	app.Get("/api/v1/store/:slug/products/:id<[0-9]+>", h.getStoreProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/products/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/products/:id<[0-9]+>", h.deleteProduct)
}

func (h *Handler) listStoreProducts(c *fiber.Ctx) error {
	tenantID, err := h.slugs.TenantIDForSlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	products, err := h.service.ListActive(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getStoreProduct(c *fiber.Ctx) error {
	tenantID, err := h.slugs.TenantIDForSlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.service.GetByID(id)
	if err != nil || p.TenantID != tenantID || !p.Active {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) tenantID(c *fiber.Ctx) (int, error) {
	merchantID, err := merchant.GetMerchantIDFromCtx(c)
	if err != nil {
		return 0, fiber.ErrUnauthorized
	}
	return h.resolver.TenantIDForMerchant(merchantID)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	products, err := h.service.ListByTenant(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Unit        string `json:"unit"`
	Stock       *int   `json:"stock"`
	Active      *bool  `json:"active"`
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	active := true
	if payload.Active != nil {
		active = *payload.Active
	}
	created, err := h.service.Create(Product{
		TenantID:    tenantID,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Image:       payload.Image,
		Unit:        payload.Unit,
		Stock:       payload.Stock,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		switch err {
		case ErrInvalidProduct:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required and price must be non-negative"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	existing, err := h.service.GetByID(id)
	if err != nil || existing.TenantID != tenantID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	existing.Name = payload.Name
	existing.Description = payload.Description
	existing.Price = payload.Price
	existing.Image = payload.Image
	existing.Unit = payload.Unit
	existing.Stock = payload.Stock
	if payload.Active != nil {
		existing.Active = *payload.Active
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.Update(id, existing)
	if err != nil {
		switch err {
		case ErrInvalidProduct:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required and price must be non-negative"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	tenantID, err := h.tenantID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	existing, err := h.service.GetByID(id)
	if err != nil || existing.TenantID != tenantID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
