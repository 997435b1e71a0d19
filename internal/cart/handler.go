package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/product"
)

// SlugResolver maps a public store slug to a tenant id.
type SlugResolver interface {
	TenantIDForSlug(slug string) (int, error)
}

// ProductSource supplies authoritative product data: the server, not the
// client, decides the captured price and stock ceiling.
type ProductSource interface {
	GetByID(id int) (product.Product, error)
}

// Handler exposes the public cart routes. The shopper identifies their cart
// with an X-Cart-Key header; the key plays the role of the fixed storage key
// a browser would use.
type Handler struct {
	service  *Service
	slugs    SlugResolver
	products ProductSource
}

func NewHandler(s *Service, slugs SlugResolver, products ProductSource) *Handler {
	return &Handler{service: s, slugs: slugs, products: products}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/store/:slug/cart", h.getCart)
	app.Post("/api/v1/store/:slug/cart/items", h.addItem)
	app.Post("/api/v1/store/:slug/cart/items/:id/increment", h.incrementQty)
	app.Post("/api/v1/store/:slug/cart/items/:id/decrement", h.decrementQty)
	app.Delete("/api/v1/store/:slug/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/store/:slug/cart", h.clearCart)
}

// sessionResponse is the cart payload with derived aggregates included, so
// the client never recomputes totals itself.
type sessionResponse struct {
	Items      []Item `json:"items"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int    `json:"totalPrice"`
	IsEmpty    bool   `json:"isEmpty"`
	Hydrated   bool   `json:"hydrated"`
}

func toResponse(sess Session) sessionResponse {
	items := sess.Cart.Items
	if items == nil {
		items = []Item{}
	}
	return sessionResponse{
		Items:      items,
		TotalItems: sess.Cart.TotalItems(),
		TotalPrice: sess.Cart.TotalPrice(),
		IsEmpty:    sess.Cart.IsEmpty(),
		Hydrated:   sess.Hydrated,
	}
}

func (h *Handler) resolve(c *fiber.Ctx) (tenantID int, key string, err error) {
	tenantID, err = h.slugs.TenantIDForSlug(c.Params("slug"))
	if err != nil {
		return 0, "", err
	}
	return tenantID, c.Get("X-Cart-Key"), nil
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	sess, err := h.service.Load(tenantID, key)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(toResponse(sess))
}

type addItemRequest struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty,omitempty"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil || p.TenantID != tenantID || !p.Active {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	qty := payload.Qty
	if qty <= 0 {
		qty = 1
	}
	sess, err := h.service.AddItem(tenantID, key, Item{
		ID:       strconv.Itoa(p.ID),
		Name:     p.Name,
		Price:    p.Price,
		Qty:      qty,
		Image:    p.Image,
		Unit:     p.Unit,
		MaxStock: p.Stock,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(toResponse(sess))
}

func (h *Handler) incrementQty(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	sess, err := h.service.IncrementQty(tenantID, key, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(toResponse(sess))
}

func (h *Handler) decrementQty(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	sess, err := h.service.DecrementQty(tenantID, key, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(toResponse(sess))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	sess, err := h.service.RemoveItem(tenantID, key, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(toResponse(sess))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	tenantID, key, err := h.resolve(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
	}
	if err := h.service.Clear(tenantID, key); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrCartKeyRequired:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Cart-Key header is required"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
