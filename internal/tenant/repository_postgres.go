package tenant

import (
	"database/sql"
	"encoding/json"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	tenantColumns = `tenant_id, merchant_id, slug, name, description, category, whatsapp, logo, enabled, settings, created_at, updated_at`

	getTenantByIDQuery       = `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1`
	getTenantBySlugQuery     = `SELECT ` + tenantColumns + ` FROM tenants WHERE slug = $1`
	getTenantByMerchantQuery = `SELECT ` + tenantColumns + ` FROM tenants WHERE merchant_id = $1`

	insertTenantQuery = `
		INSERT INTO tenants (merchant_id, slug, name, description, category, whatsapp, logo, enabled, settings, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING tenant_id
	`
	updateTenantQuery = `
		UPDATE tenants
		SET slug = $1,
			name = $2,
			description = $3,
			category = $4,
			whatsapp = $5,
			logo = $6,
			enabled = $7,
			settings = $8,
			updated_at = $9
		WHERE tenant_id = $10
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanTenant(row interface{ Scan(dest ...any) error }) (Tenant, error) {
	var (
		t                     Tenant
		description, category sql.NullString
		whatsapp, logo        sql.NullString
		settings              sql.NullString
		createdAt, updatedAt  sql.NullString
	)
	err := row.Scan(&t.ID, &t.MerchantID, &t.Slug, &t.Name, &description, &category,
		&whatsapp, &logo, &t.Enabled, &settings, &createdAt, &updatedAt)
	if err != nil {
		return Tenant{}, err
	}
	if description.Valid {
		t.Description = description.String
	}
	if category.Valid {
		t.Category = category.String
	}
	if whatsapp.Valid {
		t.WhatsApp = whatsapp.String
	}
	if logo.Valid {
		t.Logo = logo.String
	}
	if createdAt.Valid {
		t.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		t.UpdatedAt = updatedAt.String
	}
	if settings.Valid && settings.String != "" {
		if err := json.Unmarshal([]byte(settings.String), &t.Settings); err != nil {
			// a corrupt settings blob should not make the store unreadable
			t.Settings = DefaultSettings()
		}
	} else {
		t.Settings = DefaultSettings()
	}
	return t, nil
}

func (r *PostgresRepository) GetByID(id int) (Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(getTenantByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, err
	}
	return t, nil
}

func (r *PostgresRepository) GetBySlug(slug string) (Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(getTenantBySlugQuery, slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, err
	}
	return t, nil
}

func (r *PostgresRepository) GetByMerchantID(merchantID int) (Tenant, error) {
	t, err := scanTenant(r.db.QueryRow(getTenantByMerchantQuery, merchantID))
	if err != nil {
		if err == sql.ErrNoRows {
			return Tenant{}, ErrNotFound
		}
		return Tenant{}, err
	}
	return t, nil
}

func (r *PostgresRepository) Create(t Tenant) (Tenant, error) {
	settings, err := json.Marshal(t.Settings)
	if err != nil {
		return Tenant{}, err
	}
	err = r.db.QueryRow(insertTenantQuery, t.MerchantID, t.Slug, t.Name, t.Description,
		t.Category, t.WhatsApp, t.Logo, t.Enabled, string(settings), t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return Tenant{}, ErrSlugExists
		}
		return Tenant{}, err
	}
	return t, nil
}

func (r *PostgresRepository) Update(id int, t Tenant) (Tenant, error) {
	settings, err := json.Marshal(t.Settings)
	if err != nil {
		return Tenant{}, err
	}
	res, err := r.db.Exec(updateTenantQuery, t.Slug, t.Name, t.Description, t.Category,
		t.WhatsApp, t.Logo, t.Enabled, string(settings), t.UpdatedAt, id)
	if err != nil {
		return Tenant{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Tenant{}, ErrNotFound
	}
	t.ID = id
	return t, nil
}
