package search

import (
	"database/sql"
	"encoding/json"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getRecentQuery = `
		SELECT "terms"
		FROM recent_search
		WHERE "tenant_id" = $1 AND "search_key" = $2
	`
	saveRecentQuery = `
		INSERT INTO recent_search ("tenant_id", "search_key", "terms", "updated_at")
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ("tenant_id", "search_key")
		DO UPDATE SET "terms" = EXCLUDED."terms", "updated_at" = EXCLUDED."updated_at"
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(tenantID int, key string) (Recent, bool, error) {
	var raw []byte
	err := r.db.QueryRow(getRecentQuery, tenantID, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return Recent{}, false, nil
	}
	if err != nil {
		return Recent{}, false, err
	}
	var rec Recent
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &rec.Terms); err != nil {
			return Recent{}, false, err
		}
	}
	return rec, true, nil
}

func (r *PostgresRepository) Save(tenantID int, key string, recent Recent) error {
	raw, err := json.Marshal(recent.Terms)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(saveRecentQuery, tenantID, key, raw, time.Now().UTC())
	return err
}
