package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// Asegura que OrderRepo implementa repository.OrderRepository.
var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db DBTX
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(db DBTX) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (order_date, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(context.Background(), query,
		order.OrderDate, order.ClientID, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID con sus productos. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `SELECT id, order_date, client_id, created_at, updated_at FROM orders WHERE id = $1`
	var o entity.Order
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderDate, &o.ClientID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.ProductIDs, err = r.productIDs(o.ID)
	return &o, err
}

// GetAll devuelve todas las órdenes.
func (r *OrderRepo) GetAll() ([]*entity.Order, error) {
	return r.list(`SELECT id, order_date, client_id, created_at, updated_at FROM orders ORDER BY id`)
}

// ListByCompany devuelve las órdenes que contienen productos de la empresa
// (join a través de order_product).
func (r *OrderRepo) ListByCompany(nit string) ([]*entity.Order, error) {
	query := `
		SELECT DISTINCT o.id, o.order_date, o.client_id, o.created_at, o.updated_at
		FROM orders o
		JOIN order_product op ON op.order_id = o.id
		JOIN products p ON p.id = op.product_id
		WHERE p.company_nit = $1
		ORDER BY o.id`
	return r.list(query, nit)
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.ClientID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una orden existente.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `UPDATE orders SET order_date = $2, client_id = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.ClientID, order.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientNotFound
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina una orden. Las filas de order_product caen por ON DELETE CASCADE;
// los productos asociados quedan intactos.
func (r *OrderRepo) Delete(id int64) (bool, error) {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AddProducts inserta las filas de order_product de la orden.
// Pensado para correr dentro de la transacción del TxRunner junto al insert.
func (r *OrderRepo) AddProducts(orderID int64, productIDs []int64) error {
	ctx := context.Background()
	for _, productID := range productIDs {
		_, err := r.db.Exec(ctx,
			`INSERT INTO order_product (order_id, product_id) VALUES ($1, $2)`,
			orderID, productID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert order product: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) productIDs(orderID int64) ([]int64, error) {
	rows, err := r.db.Query(context.Background(),
		`SELECT product_id FROM order_product WHERE order_id = $1 ORDER BY product_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order products: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
