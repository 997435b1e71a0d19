package cart

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/fibidy/fibidy-backend/internal/product"
)

type staticSlugs map[string]int

func (s staticSlugs) TenantIDForSlug(slug string) (int, error) {
	id, ok := s[slug]
	if !ok {
		return 0, errors.New("tenant not found")
	}
	return id, nil
}

type staticProducts map[int]product.Product

func (s staticProducts) GetByID(id int) (product.Product, error) {
	p, ok := s[id]
	if !ok {
		return product.Product{}, product.ErrNotFound
	}
	return p, nil
}

func makeCartApp() *fiber.App {
	stock := 5
	products := staticProducts{
		1: {ID: 1, TenantID: 1, Name: "Keripik Singkong", Price: 10000, Unit: "bungkus", Stock: &stock, Active: true},
		2: {ID: 2, TenantID: 1, Name: "Kopi Robusta", Price: 25000, Active: true},
		3: {ID: 3, TenantID: 2, Name: "Milik Toko Lain", Price: 9999, Active: true},
		4: {ID: 4, TenantID: 1, Name: "Nonaktif", Price: 1000, Active: false},
	}
	handler := NewHandler(NewService(NewInMemoryStore()), staticSlugs{"warung": 1}, products)
	app := fiber.New()
	handler.RegisterPublicRoutes(app)
	return app
}

func doCart(t *testing.T, app *fiber.App, method, path, body string) sessionResponse {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Cart-Key", "visitor-1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("%s %s: expected 200, got %d", method, path, res.StatusCode)
	}
	var sess sessionResponse
	if err := json.NewDecoder(res.Body).Decode(&sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return sess
}

func TestCartRequiresCartKey(t *testing.T) {
	app := makeCartApp()

	req := httptest.NewRequest("GET", "/api/v1/store/warung/cart", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("missing X-Cart-Key should yield 400, got %d", res.StatusCode)
	}
}

func TestCartUnknownStore(t *testing.T) {
	app := makeCartApp()

	req := httptest.NewRequest("GET", "/api/v1/store/nonexistent/cart", nil)
	req.Header.Set("X-Cart-Key", "visitor-1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown slug should yield 404, got %d", res.StatusCode)
	}
}

func TestCartFlowThroughRoutes(t *testing.T) {
	app := makeCartApp()

	sess := doCart(t, app, "GET", "/api/v1/store/warung/cart", "")
	if !sess.Hydrated || !sess.IsEmpty {
		t.Fatalf("fresh cart should be hydrated and empty: %+v", sess)
	}

	sess = doCart(t, app, "POST", "/api/v1/store/warung/cart/items", `{"productId":1,"qty":2}`)
	if sess.TotalItems != 2 || sess.TotalPrice != 20000 {
		t.Fatalf("unexpected totals after add: %+v", sess)
	}
	if sess.Items[0].Name != "Keripik Singkong" {
		t.Fatalf("item data should come from the catalog, got %+v", sess.Items[0])
	}

	sess = doCart(t, app, "POST", "/api/v1/store/warung/cart/items/1/increment", "")
	if sess.TotalItems != 3 {
		t.Fatalf("expected qty 3 after increment, got %+v", sess)
	}

	sess = doCart(t, app, "POST", "/api/v1/store/warung/cart/items", `{"productId":2}`)
	if sess.TotalItems != 4 || sess.TotalPrice != 55000 {
		t.Fatalf("unexpected totals with second product: %+v", sess)
	}

	sess = doCart(t, app, "POST", "/api/v1/store/warung/cart/items/2/decrement", "")
	if sess.Items[1].Qty != 1 {
		t.Fatalf("decrement must floor at 1: %+v", sess.Items)
	}

	sess = doCart(t, app, "DELETE", "/api/v1/store/warung/cart/items/1", "")
	if sess.TotalItems != 1 || sess.TotalPrice != 25000 {
		t.Fatalf("unexpected totals after removal: %+v", sess)
	}
}

func TestCartAddClampsToCatalogStock(t *testing.T) {
	app := makeCartApp()

	sess := doCart(t, app, "POST", "/api/v1/store/warung/cart/items", `{"productId":1,"qty":99}`)
	if sess.TotalItems != 5 {
		t.Fatalf("qty should clamp to the catalog stock, got %+v", sess)
	}
}

func TestCartRejectsForeignAndInactiveProducts(t *testing.T) {
	app := makeCartApp()

	for _, body := range []string{`{"productId":3}`, `{"productId":4}`, `{"productId":99}`} {
		req := httptest.NewRequest("POST", "/api/v1/store/warung/cart/items", strings.NewReader(body))
		req.Header.Set("X-Cart-Key", "visitor-1")
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != fiber.StatusNotFound {
			t.Fatalf("body %s: expected 404, got %d", body, res.StatusCode)
		}
	}
}

func TestCartClearRoute(t *testing.T) {
	app := makeCartApp()

	doCart(t, app, "POST", "/api/v1/store/warung/cart/items", `{"productId":1}`)

	req := httptest.NewRequest("DELETE", "/api/v1/store/warung/cart", nil)
	req.Header.Set("X-Cart-Key", "visitor-1")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}

	sess := doCart(t, app, "GET", "/api/v1/store/warung/cart", "")
	if !sess.IsEmpty {
		t.Fatalf("cart should be empty after clear: %+v", sess)
	}
}
