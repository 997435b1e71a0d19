package order

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type staticResolver map[int]int

func (r staticResolver) TenantIDForMerchant(merchantID int) (int, error) {
	id, ok := r[merchantID]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}

func makeApp(svc *Service) *fiber.App {
	handler := NewHandler(svc, staticResolver{7: 1, 8: 2})
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Merchant-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"merchant_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	handler.RegisterPublicRoutes(app)
	handler.RegisterProtectedRoutes(app)
	return app
}

func seedOrder(t *testing.T, svc *Service, tenantID int) Order {
	t.Helper()
	created, err := svc.Create(Order{
		OrderNumber:   "FBD-20250101-AAAAAA",
		TenantID:      tenantID,
		CustomerName:  "Budi",
		CustomerPhone: "0812",
		Address:       "Jl. Mawar",
		Items:         []Item{{ProductID: "1", Name: "Keripik", Price: 10000, Qty: 2}},
		Subtotal:      20000,
		Shipping:      5000,
		Total:         25000,
	})
	if err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return created
}

func TestTrackOrderIsPublic(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	created := seedOrder(t, svc, 1)
	app := makeApp(svc)

	req := httptest.NewRequest("GET", "/api/v1/track/"+created.OrderNumber, nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, created.OrderNumber) || !strings.Contains(body, "pending") {
		t.Fatalf("tracking view incomplete: %s", body)
	}
	// the shopper view must not leak merchant-side contact fields
	if strings.Contains(body, "customerPhone") || strings.Contains(body, "address") {
		t.Fatalf("tracking view leaks private fields: %s", body)
	}
}

func TestTrackUnknownOrder(t *testing.T) {
	app := makeApp(NewService(NewInMemoryRepository()))

	req := httptest.NewRequest("GET", "/api/v1/track/FBD-20250101-ZZZZZZ", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestListOrdersScopedToTenant(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	seedOrder(t, svc, 1)
	app := makeApp(svc)

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("X-Merchant-ID", "8")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var orders []Order
	if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("merchant 8 must not see tenant 1's orders, got %d", len(orders))
	}

	req = httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("X-Merchant-ID", "7")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order for merchant 7, got %d", len(orders))
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	created := seedOrder(t, svc, 1)
	app := makeApp(svc)

	id := strconv.Itoa(created.ID)

	req := httptest.NewRequest("PUT", "/api/v1/orders/"+id+"/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("X-Merchant-ID", "7")
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	o, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if o.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %q", o.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	created := seedOrder(t, svc, 1)
	app := makeApp(svc)

	req := httptest.NewRequest("PUT", "/api/v1/orders/"+strconv.Itoa(created.ID)+"/status", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("X-Merchant-ID", "7")
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}

func TestUpdateStatusEnforcesOwnership(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	created := seedOrder(t, svc, 1)
	app := makeApp(svc)

	req := httptest.NewRequest("PUT", "/api/v1/orders/"+strconv.Itoa(created.ID)+"/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("X-Merchant-ID", "8")
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("foreign orders must look like 404, got %d", res.StatusCode)
	}

	o, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if o.Status != StatusPending {
		t.Fatalf("foreign merchant must not mutate the order, got %q", o.Status)
	}
}
