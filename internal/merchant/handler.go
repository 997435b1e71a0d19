package merchant

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// StoreProvisioner creates the merchant's tenant (with defaults) at sign-up.
type StoreProvisioner interface {
	Provision(merchantID int, storeName, whatsapp string) error
}

type Handler struct {
	service     *Service
	provisioner StoreProvisioner
}

func NewHandler(service *Service, provisioner StoreProvisioner) *Handler {
	return &Handler{service: service, provisioner: provisioner}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.login)
	app.Post("/api/v1/sign-up", h.register)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/profile", h.getProfile)
	// the handler accepts partial payloads so PATCH behaviour is satisfied
	app.Put("/api/v1/profile", h.updateProfile)
	app.Patch("/api/v1/profile", h.updateProfile)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	StoreName string `json:"storeName"`
	WhatsApp  string `json:"whatsapp"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	m, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	signed, err := signToken(m)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.JSON(fiber.Map{"token": signed, "merchant": sanitize(m)})
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and password are required"})
	}
	if payload.StoreName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "storeName is required"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	m, err := h.service.Register(Merchant{
		Email:     payload.Email,
		Password:  payload.Password,
		Name:      payload.Name,
		Phone:     payload.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		switch err {
		case ErrEmailExists:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "email already registered"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	if h.provisioner != nil {
		if err := h.provisioner.Provision(m.ID, payload.StoreName, payload.WhatsApp); err != nil {
			fmt.Printf("warning: could not provision store for merchant %d: %v\n", m.ID, err)
		}
	}

	signed, err := signToken(m)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": signed, "merchant": sanitize(m)})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	merchantID, err := GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	m, err := h.service.GetByID(merchantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "merchant not found"})
	}
	return c.JSON(sanitize(m))
}

// profileUpdateRequest represents the fields the client may send to update.
type profileUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	merchantID, err := GetMerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	existing, err := h.service.GetByID(merchantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "merchant not found"})
	}

	payload := new(profileUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Phone != nil {
		existing.Phone = *payload.Phone
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	updated, err := h.service.Update(merchantID, existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(sanitize(updated))
}

func signToken(m Merchant) (string, error) {
	claims := jwt.MapClaims{
		"merchant_id": m.ID,
		"email":       m.Email,
		"exp":         time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GetMerchantIDFromCtx extracts the merchant id from the JWT stored by the
// auth middleware. Claim values arrive as float64 from JSON, but tests and
// other callers may set ints or strings.
func GetMerchantIDFromCtx(c *fiber.Ctx) (int, error) {
	u := c.Locals("user")
	if u == nil {
		return 0, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	raw, ok := claims["merchant_id"]
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, fiber.ErrUnauthorized
	}
}

func sanitize(m Merchant) Merchant {
	m.Password = ""
	return m
}
