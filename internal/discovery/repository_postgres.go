package discovery

import "database/sql"

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListCategories returns the seeded store categories ordered by `ord`.
// If the table is not available the function returns an empty slice
// (caller-friendly).
func (r *PostgresRepository) ListCategories() ([]StoreCategory, error) {
	rows, err := r.db.Query(`SELECT category_id, name, name_id, icon FROM store_categories ORDER BY COALESCE(ord, 0) DESC, category_id`)
	if err != nil {
		return []StoreCategory{}, nil
	}
	defer rows.Close()

	out := make([]StoreCategory, 0)
	for rows.Next() {
		var (
			c      StoreCategory
			nameID sql.NullString
			icon   sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &nameID, &icon); err != nil {
			continue
		}
		if nameID.Valid {
			c.NameID = nameID.String
		}
		if icon.Valid {
			c.Icon = icon.String
		}
		out = append(out, c)
	}
	return out, nil
}

func scanStoreCard(rows *sql.Rows) (StoreCard, error) {
	var (
		s                     StoreCard
		description, category sql.NullString
		logo                  sql.NullString
	)
	if err := rows.Scan(&s.TenantID, &s.Slug, &s.Name, &description, &category, &logo); err != nil {
		return StoreCard{}, err
	}
	if description.Valid {
		s.Description = description.String
	}
	if category.Valid {
		s.Category = category.String
	}
	if logo.Valid {
		s.Logo = logo.String
	}
	return s, nil
}

const storeCardColumns = `tenant_id, slug, name, description, category, logo`

func (r *PostgresRepository) ListStores(limit int) ([]StoreCard, error) {
	rows, err := r.db.Query(`SELECT `+storeCardColumns+` FROM tenants WHERE enabled ORDER BY tenant_id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoreCard, 0)
	for rows.Next() {
		s, err := scanStoreCard(rows)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *PostgresRepository) SearchStores(query string, limit int) ([]StoreCard, error) {
	rows, err := r.db.Query(`SELECT `+storeCardColumns+` FROM tenants WHERE enabled AND name ILIKE '%' || $1 || '%' ORDER BY tenant_id DESC LIMIT $2`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoreCard, 0)
	for rows.Next() {
		s, err := scanStoreCard(rows)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
