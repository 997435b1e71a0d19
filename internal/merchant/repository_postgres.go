package merchant

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	getMerchantByIDQuery = `
		SELECT merchant_id, email, password, name, phone, created_at, updated_at
		FROM merchants
		WHERE merchant_id = $1
	`
	getMerchantByEmailQuery = `
		SELECT merchant_id, email, password, name, phone, created_at, updated_at
		FROM merchants
		WHERE email = $1
	`
	insertMerchantQuery = `
		INSERT INTO merchants (email, password, name, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING merchant_id
	`
	updateMerchantQuery = `
		UPDATE merchants
		SET email = $1, password = $2, name = $3, phone = $4, updated_at = $5
		WHERE merchant_id = $6
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanMerchant(row interface{ Scan(dest ...any) error }) (Merchant, error) {
	var (
		m                    Merchant
		phone                sql.NullString
		createdAt, updatedAt sql.NullString
	)
	if err := row.Scan(&m.ID, &m.Email, &m.Password, &m.Name, &phone, &createdAt, &updatedAt); err != nil {
		return Merchant{}, err
	}
	if phone.Valid {
		m.Phone = phone.String
	}
	if createdAt.Valid {
		m.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		m.UpdatedAt = updatedAt.String
	}
	return m, nil
}

func (r *PostgresRepository) GetByID(id int) (Merchant, error) {
	m, err := scanMerchant(r.db.QueryRow(getMerchantByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Merchant{}, ErrNotFound
		}
		return Merchant{}, err
	}
	return m, nil
}

func (r *PostgresRepository) GetByEmail(email string) (Merchant, error) {
	m, err := scanMerchant(r.db.QueryRow(getMerchantByEmailQuery, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return Merchant{}, ErrNotFound
		}
		return Merchant{}, err
	}
	return m, nil
}

func (r *PostgresRepository) Create(m Merchant) (Merchant, error) {
	err := r.db.QueryRow(insertMerchantQuery, m.Email, m.Password, m.Name, m.Phone, m.CreatedAt, m.UpdatedAt).Scan(&m.ID)
	if err != nil {
		return Merchant{}, err
	}
	return m, nil
}

func (r *PostgresRepository) Update(id int, m Merchant) (Merchant, error) {
	res, err := r.db.Exec(updateMerchantQuery, m.Email, m.Password, m.Name, m.Phone, m.UpdatedAt, id)
	if err != nil {
		return Merchant{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Merchant{}, ErrNotFound
	}
	m.ID = id
	return m, nil
}
