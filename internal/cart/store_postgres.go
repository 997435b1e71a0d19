package cart

import (
	"database/sql"
	"encoding/json"
)

// PostgresStore keeps one row per (tenant, cart key) with the items as a
// JSONB snapshot, written whole on every mutation. Last write wins; there is
// a single writer per cart key.
type PostgresStore struct {
	db *sql.DB
}

const (
	loadCartQuery = `SELECT items FROM carts WHERE tenant_id = $1 AND cart_key = $2`
	saveCartQuery = `
		INSERT INTO carts (tenant_id, cart_key, items, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (tenant_id, cart_key)
		DO UPDATE SET items = EXCLUDED.items, updated_at = now()
	`
	deleteCartQuery = `DELETE FROM carts WHERE tenant_id = $1 AND cart_key = $2`
)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(tenantID int, key string) (Cart, bool, error) {
	var raw sql.NullString
	err := s.db.QueryRow(loadCartQuery, tenantID, key).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, false, nil
		}
		return Cart{}, false, err
	}
	var c Cart
	if raw.Valid && raw.String != "" {
		if err := json.Unmarshal([]byte(raw.String), &c.Items); err != nil {
			return Cart{}, false, err
		}
	}
	return c, true, nil
}

func (s *PostgresStore) Save(tenantID int, key string, c Cart) error {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(saveCartQuery, tenantID, key, string(raw))
	return err
}

func (s *PostgresStore) Delete(tenantID int, key string) error {
	_, err := s.db.Exec(deleteCartQuery, tenantID, key)
	return err
}
