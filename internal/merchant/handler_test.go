package merchant

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

type provisionerSpy struct {
	merchantID int
	storeName  string
	whatsapp   string
	calls      int
}

func (p *provisionerSpy) Provision(merchantID int, storeName, whatsapp string) error {
	p.merchantID = merchantID
	p.storeName = storeName
	p.whatsapp = whatsapp
	p.calls++
	return nil
}

// helper to build an app with a bootstrap middleware that injects a jwt.Token
// into locals when the X-Merchant-ID header is provided.
func makeApp(handler *Handler) *fiber.App {
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

func TestSignUpProvisionsStore(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	spy := &provisionerSpy{}
	handler := NewHandler(NewService(repo), spy)
	app := makeApp(handler)

	body := `{"email":"sri@example.com","password":"rahasia123","name":"Bu Sri","storeName":"Warung Bu Sri","whatsapp":"081234567890"}`
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, b)
	}

	if spy.calls != 1 {
		t.Fatalf("sign-up must provision exactly one store, got %d", spy.calls)
	}
	if spy.storeName != "Warung Bu Sri" || spy.whatsapp != "081234567890" {
		t.Fatalf("provisioner received wrong data: %+v", spy)
	}

	var payload struct {
		Token    string   `json:"token"`
		Merchant Merchant `json:"merchant"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token == "" {
		t.Fatalf("sign-up should return a token")
	}
	if payload.Merchant.Password != "" {
		t.Fatalf("response must not expose the password hash")
	}
	if spy.merchantID != payload.Merchant.ID {
		t.Fatalf("provisioned merchant id mismatch")
	}
}

func TestSignUpValidation(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository(nil)), &provisionerSpy{})
	app := makeApp(handler)

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"x","storeName":"Toko"}`},
		{"missing password", `{"email":"a@b.c","storeName":"Toko"}`},
		{"missing store name", `{"email":"a@b.c","password":"x"}`},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.name, err)
		}
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, res.StatusCode)
		}
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository(nil)), &provisionerSpy{})
	app := makeApp(handler)

	body := `{"email":"sri@example.com","password":"rahasia123","storeName":"Warung"}`
	for i, wantStatus := range []int{fiber.StatusCreated, fiber.StatusConflict} {
		req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("attempt %d failed: %v", i, err)
		}
		if res.StatusCode != wantStatus {
			t.Fatalf("attempt %d: expected %d, got %d", i, wantStatus, res.StatusCode)
		}
	}
}

func TestSignInVerifiesPassword(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)
	if _, err := svc.Register(Merchant{Email: "sri@example.com", Password: "rahasia123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	app := makeApp(NewHandler(svc, &provisionerSpy{}))

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"sri@example.com","password":"salah"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("wrong password should yield 401, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"sri@example.com","password":"rahasia123"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "token") {
		t.Fatalf("sign-in response missing token: %s", b)
	}
}

func TestProfileUpdate(t *testing.T) {
	repo := NewInMemoryRepository([]Merchant{{ID: 7, Email: "sri@example.com", Name: "Old"}})
	app := makeApp(NewHandler(NewService(repo), &provisionerSpy{}))

	req := httptest.NewRequest("PATCH", "/api/v1/profile", strings.NewReader(`{"name":"Bu Sri"}`))
	req.Header.Set("X-Merchant-ID", "7")
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	m, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if m.Name != "Bu Sri" {
		t.Fatalf("name not updated, got %q", m.Name)
	}
	if m.Email != "sri@example.com" {
		t.Fatalf("untouched fields must survive, got %q", m.Email)
	}
}
