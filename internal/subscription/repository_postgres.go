package subscription

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listPlansQuery = `
		SELECT "id", "code", "name", "price", "interval", "features"
		FROM plans
		ORDER BY "price", "id"
	`
	statusQuery = `
		SELECT p."id", p."code", p."name", p."price", p."interval", p."features", s."expires_at"
		FROM subscriptions s
		JOIN plans p ON p."id" = s."plan_id"
		WHERE s."merchant_id" = $1
	`
	listPaymentsQuery = `
		SELECT pay."id", p."code", pay."amount", pay."method", pay."reference", pay."paid_at"
		FROM payments pay
		JOIN plans p ON p."id" = pay."plan_id"
		WHERE pay."merchant_id" = $1
		ORDER BY pay."paid_at" DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanPlan(scan func(dest ...interface{}) error) (Plan, error) {
	var (
		p        Plan
		features pq.StringArray
	)
	if err := scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.Interval, &features); err != nil {
		return Plan{}, err
	}
	p.Features = []string(features)
	return p, nil
}

func (r *PostgresRepository) ListPlans() ([]Plan, error) {
	rows, err := r.db.Query(listPlansQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) StatusForMerchant(merchantID int) (Status, error) {
	var (
		st        Status
		features  pq.StringArray
		expiresAt sql.NullTime
	)
	err := r.db.QueryRow(statusQuery, merchantID).Scan(
		&st.Plan.ID, &st.Plan.Code, &st.Plan.Name, &st.Plan.Price, &st.Plan.Interval, &features, &expiresAt,
	)
	if err == sql.ErrNoRows {
		return Status{}, ErrNoSubscription
	}
	if err != nil {
		return Status{}, err
	}
	st.Plan.Features = []string(features)
	if expiresAt.Valid {
		t := expiresAt.Time
		st.ExpiresAt = &t
	}
	return st, nil
}

func (r *PostgresRepository) ListPayments(merchantID int) ([]Payment, error) {
	rows, err := r.db.Query(listPaymentsQuery, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Payment, 0)
	for rows.Next() {
		var (
			p      Payment
			paidAt time.Time
		)
		if err := rows.Scan(&p.ID, &p.PlanCode, &p.Amount, &p.Method, &p.Reference, &paidAt); err != nil {
			return nil, err
		}
		p.PaidAt = paidAt
		out = append(out, p)
	}
	return out, rows.Err()
}
