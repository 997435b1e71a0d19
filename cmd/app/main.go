package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/fibidy/fibidy-backend/internal/cart"
	"github.com/fibidy/fibidy-backend/internal/checkout"
	"github.com/fibidy/fibidy-backend/internal/config"
	"github.com/fibidy/fibidy-backend/internal/discovery"
	"github.com/fibidy/fibidy-backend/internal/landing"
	"github.com/fibidy/fibidy-backend/internal/merchant"
	"github.com/fibidy/fibidy-backend/internal/order"
	"github.com/fibidy/fibidy-backend/internal/product"
	"github.com/fibidy/fibidy-backend/internal/search"
	"github.com/fibidy/fibidy-backend/internal/subscription"
	"github.com/fibidy/fibidy-backend/internal/tenant"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	bootstrapSchema(db)

	// repositories and services; the tenant service doubles as the slug and
	// merchant-id resolver for the other handlers
	merchantService := merchant.NewService(merchant.NewPostgresRepository(db))
	landingRepo := landing.NewPostgresRepository(db)
	tenantService := tenant.NewService(tenant.NewPostgresRepository(db), landingRepo)
	landingService := landing.NewService(landingRepo)
	productService := product.NewService(product.NewPostgresRepository(db))
	cartService := cart.NewService(cart.NewPostgresStore(db))
	orderService := order.NewService(order.NewPostgresRepository(db))
	checkoutService := checkout.NewService(orderService, cartService, cfg.BaseURL)
	discoveryService := discovery.NewService(discovery.NewPostgresRepository(db))
	searchService := search.NewService(search.NewPostgresRepository(db))
	subscriptionService := subscription.NewService(subscription.NewPostgresRepository(db))

	merchantHandler := merchant.NewHandler(merchantService, tenantService)
	tenantHandler := tenant.NewHandler(tenantService)
	landingHandler := landing.NewHandler(landingService, tenantService, tenantService)
	productHandler := product.NewHandler(productService, tenantService, tenantService)
	cartHandler := cart.NewHandler(cartService, tenantService, productService)
	checkoutHandler := checkout.NewHandler(checkoutService, tenantService, cartService)
	orderHandler := order.NewHandler(orderService, tenantService)
	discoveryHandler := discovery.NewHandler(discoveryService)
	searchHandler := search.NewHandler(searchService, tenantService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	app.Use(checkMiddleware)

	// public surface: sign-in/up, the storefront routes, and discovery
	merchantHandler.RegisterPublicRoutes(app)
	discoveryHandler.RegisterPublicRoutes(app)
	landingHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	searchHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	// merchant dashboard surface
	merchantHandler.RegisterProtectedRoutes(app)
	tenantHandler.RegisterProtectedRoutes(app)
	landingHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	subscriptionHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Cart-Key, X-Search-Key",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// bootstrapSchema creates the tables the repositories expect. Statements are
// idempotent so restarting against an existing database is safe.
func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS merchants (
			merchant_id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			name TEXT,
			phone TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS tenants (
			tenant_id SERIAL PRIMARY KEY,
			merchant_id INT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			name TEXT,
			description TEXT,
			category TEXT,
			whatsapp TEXT,
			logo TEXT,
			enabled BOOLEAN NOT NULL DEFAULT TRUE,
			settings JSONB NOT NULL DEFAULT '{}',
			landing JSONB NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			tenant_id INT NOT NULL,
			name TEXT,
			description TEXT,
			price INT NOT NULL DEFAULT 0,
			image TEXT,
			unit TEXT,
			stock INT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			tenant_id INT NOT NULL,
			cart_key TEXT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			updated_at TIMESTAMPTZ,
			PRIMARY KEY (tenant_id, cart_key)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			order_number TEXT UNIQUE NOT NULL,
			tenant_id INT NOT NULL,
			customer_name TEXT,
			customer_phone TEXT,
			address TEXT,
			notes TEXT,
			payment_method TEXT,
			courier TEXT,
			items JSONB NOT NULL DEFAULT '[]',
			subtotal INT NOT NULL DEFAULT 0,
			tax NUMERIC NOT NULL DEFAULT 0,
			shipping INT NOT NULL DEFAULT 0,
			total NUMERIC NOT NULL DEFAULT 0,
			status TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS store_categories (
			category_id SERIAL PRIMARY KEY,
			name TEXT,
			name_id TEXT,
			icon TEXT,
			ord INT
		)`,
		`CREATE TABLE IF NOT EXISTS recent_search (
			tenant_id INT NOT NULL,
			search_key TEXT NOT NULL,
			terms JSONB NOT NULL DEFAULT '[]',
			updated_at TIMESTAMPTZ,
			PRIMARY KEY (tenant_id, search_key)
		)`,
		`CREATE TABLE IF NOT EXISTS plans (
			id SERIAL PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			price INT NOT NULL DEFAULT 0,
			"interval" TEXT NOT NULL DEFAULT 'month',
			features TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS subscriptions (
			merchant_id INT PRIMARY KEY,
			plan_id INT NOT NULL,
			expires_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			merchant_id INT NOT NULL,
			plan_id INT NOT NULL,
			amount INT NOT NULL DEFAULT 0,
			method TEXT,
			reference TEXT,
			paid_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}

	// make sure the landing column exists in case tenants pre-dated it
	if _, err := db.Exec(`ALTER TABLE tenants ADD COLUMN IF NOT EXISTS landing JSONB NOT NULL DEFAULT '{}'`); err != nil {
		panic(err)
	}

	seedStoreCategories(db)
	seedPlans(db)
}

func seedStoreCategories(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM store_categories`).Scan(&count); err != nil || count > 0 {
		return
	}
	seed := []struct{ name, nameID, icon string }{
		{"Food & Beverage", "Makanan & Minuman", "utensils"},
		{"Fashion", "Fesyen", "shirt"},
		{"Handicraft", "Kerajinan Tangan", "scissors"},
		{"Groceries", "Sembako", "shopping-basket"},
		{"Health & Beauty", "Kesehatan & Kecantikan", "heart"},
		{"Services", "Jasa", "wrench"},
	}
	for i, s := range seed {
		if _, err := db.Exec(`INSERT INTO store_categories (name, name_id, icon, ord) VALUES ($1,$2,$3,$4)`, s.name, s.nameID, s.icon, len(seed)-i); err != nil {
			continue
		}
	}
}

func seedPlans(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM plans`).Scan(&count); err != nil || count > 0 {
		return
	}
	type plan struct {
		code, name, interval string
		price                int
		features             string
	}
	seed := []plan{
		{"free", "Free", "month", 0, `{"Toko online dengan link fibidy.com","Checkout WhatsApp","Maksimal 20 produk"}`},
		{"pro", "Pro", "month", 49000, `{"Semua fitur Free","Produk tanpa batas","Domain sendiri","Prioritas dukungan"}`},
	}
	for _, p := range seed {
		if _, err := db.Exec(`INSERT INTO plans (code, name, price, "interval", features) VALUES ($1,$2,$3,$4,$5)`, p.code, p.name, p.price, p.interval, p.features); err != nil {
			continue
		}
	}
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
