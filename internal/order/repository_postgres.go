package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, order_number, tenant_id, customer_name, customer_phone, address, notes, payment_method, courier, items, subtotal, tax, shipping, total, status, created_at, updated_at`

	insertOrderQuery = `
		INSERT INTO orders (order_number, tenant_id, customer_name, customer_phone, address, notes, payment_method, courier, items, subtotal, tax, shipping, total, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING order_id
	`
	getOrderByNumberQuery = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	listOrdersQuery       = `SELECT ` + orderColumns + ` FROM orders WHERE tenant_id = $1 ORDER BY order_id DESC`
	updateStatusQuery     = `UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`
	getOrderByIDQuery     = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanOrder(row interface{ Scan(dest ...any) error }) (Order, error) {
	var (
		o                       Order
		notes, payment, courier sql.NullString
		items                   sql.NullString
		createdAt, updatedAt    sql.NullString
	)
	err := row.Scan(&o.ID, &o.OrderNumber, &o.TenantID, &o.CustomerName, &o.CustomerPhone,
		&o.Address, &notes, &payment, &courier, &items,
		&o.Subtotal, &o.Tax, &o.Shipping, &o.Total, &o.Status, &createdAt, &updatedAt)
	if err != nil {
		return Order{}, err
	}
	if notes.Valid {
		o.Notes = notes.String
	}
	if payment.Valid {
		o.PaymentMethod = payment.String
	}
	if courier.Valid {
		o.Courier = courier.String
	}
	if createdAt.Valid {
		o.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		o.UpdatedAt = updatedAt.String
	}
	if items.Valid && items.String != "" {
		if err := json.Unmarshal([]byte(items.String), &o.Items); err != nil {
			return Order{}, err
		}
	}
	return o, nil
}

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	items, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	err = r.db.QueryRow(insertOrderQuery, ord.OrderNumber, ord.TenantID, ord.CustomerName,
		ord.CustomerPhone, ord.Address, ord.Notes, ord.PaymentMethod, ord.Courier,
		string(items), ord.Subtotal, ord.Tax, ord.Shipping, ord.Total, ord.Status,
		ord.CreatedAt, ord.UpdatedAt).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByNumber(orderNumber string) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(getOrderByNumberQuery, orderNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByTenant(tenantID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	res, err := r.db.Exec(updateStatusQuery, status, updatedAt, id)
	if err != nil {
		return Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	o, err := scanOrder(r.db.QueryRow(getOrderByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}
