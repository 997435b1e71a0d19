package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, tenant_id, name, description, price, image, unit, stock, active, created_at, updated_at`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1
		ORDER BY product_id
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (tenant_id, name, description, price, image, unit, stock, active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			price = $3,
			image = $4,
			unit = $5,
			stock = $6,
			active = $7,
			updated_at = $8
		WHERE product_id = $9
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProduct(row interface{ Scan(dest ...any) error }) (Product, error) {
	var (
		p                    Product
		description          sql.NullString
		image, unit          sql.NullString
		stock                sql.NullInt64
		createdAt, updatedAt sql.NullString
	)
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &description, &p.Price,
		&image, &unit, &stock, &p.Active, &createdAt, &updatedAt)
	if err != nil {
		return Product{}, err
	}
	if description.Valid {
		p.Description = description.String
	}
	if image.Valid {
		p.Image = image.String
	}
	if unit.Valid {
		p.Unit = unit.String
	}
	if stock.Valid {
		v := int(stock.Int64)
		p.Stock = &v
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.String
	}
	return p, nil
}

func (r *PostgresRepository) ListByTenant(tenantID int) ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var stock any
	if p.Stock != nil {
		stock = *p.Stock
	}
	err := r.db.QueryRow(insertProductQuery, p.TenantID, p.Name, p.Description, p.Price,
		p.Image, p.Unit, stock, p.Active, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	var stock any
	if p.Stock != nil {
		stock = *p.Stock
	}
	res, err := r.db.Exec(updateProductQuery, p.Name, p.Description, p.Price,
		p.Image, p.Unit, stock, p.Active, p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
