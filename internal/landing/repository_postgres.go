package landing

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository stores the landing config as opaque JSON on the tenant
// row (`tenants.landing` jsonb column).
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(tenantID int) (Config, error) {
	var raw sql.NullString
	err := r.db.QueryRow(`SELECT landing FROM tenants WHERE tenant_id = $1`, tenantID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return Config{}, ErrNotFound
		}
		return Config{}, err
	}
	if !raw.Valid || raw.String == "" {
		cfg := DefaultConfig()
		return cfg, nil
	}
	var cfg Config
	if err := json.Unmarshal([]byte(raw.String), &cfg); err != nil {
		return Config{}, err
	}
	// stored configs may predate sections or reference retired variants
	cfg.Normalize()
	return cfg, nil
}

func (r *PostgresRepository) Save(tenantID int, cfg Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	res, err := r.db.Exec(`UPDATE tenants SET landing = $1 WHERE tenant_id = $2`, string(raw), tenantID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
