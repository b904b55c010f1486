package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Los SELECT hacen LEFT JOIN con companies para resolver company_name.
type ProductRepo struct {
	db DBTX
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db DBTX) *ProductRepo {
	return &ProductRepo{db: db}
}

const productSelect = `
	SELECT p.id, p.code, p.name, p.description, p.price, p.quantity,
	       p.company_nit, COALESCE(c.name, ''), p.created_at, p.updated_at
	FROM products p
	LEFT JOIN companies c ON c.nit = p.company_nit`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (code, name, description, price, quantity, company_nit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		product.Code, product.Name, product.Description, product.Price,
		product.Quantity, product.CompanyNIT, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con sus categorías. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, err := r.scanOne(productSelect+` WHERE p.id = $1`, id)
	if err != nil || p == nil {
		return nil, err
	}
	p.CategoryIDs, err = r.categoryIDs(p.ID)
	return p, err
}

// GetByCode obtiene un producto por su código único. (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.scanOne(productSelect+` WHERE p.code = $1`, code)
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.CompanyNIT, &p.CompanyName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetAll devuelve todos los productos.
func (r *ProductRepo) GetAll() ([]*entity.Product, error) {
	return r.list(productSelect + ` ORDER BY p.id`)
}

// ListByCompany devuelve los productos asociados a una empresa.
func (r *ProductRepo) ListByCompany(nit string) ([]*entity.Product, error) {
	return r.list(productSelect+` WHERE p.company_nit = $1 ORDER BY p.id`, nit)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.CompanyNIT, &p.CompanyName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET code = $2, name = $3, description = $4, price = $5,
		       quantity = $6, company_nit = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description,
		product.Price, product.Quantity, product.CompanyNIT, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto. Las filas de product_category y order_product
// caen por ON DELETE CASCADE; el otro lado de cada asociación queda intacto.
func (r *ProductRepo) Delete(id int64) (bool, error) {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ReplaceCategories sustituye el conjunto de filas de product_category del producto.
// Pensado para correr dentro de la transacción del TxRunner junto al insert/update.
func (r *ProductRepo) ReplaceCategories(productID int64, categoryIDs []int64) error {
	ctx := context.Background()
	if _, err := r.db.Exec(ctx, `DELETE FROM product_category WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	for _, catID := range categoryIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO product_category (product_id, category_id) VALUES ($1, $2)`,
			productID, catID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert product category: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) categoryIDs(productID int64) ([]int64, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT category_id FROM product_category WHERE product_id = $1 ORDER BY category_id`, productID)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan category id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
