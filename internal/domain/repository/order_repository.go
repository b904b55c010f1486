package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
//
// ListByCompany devuelve las órdenes que contienen productos de la empresa
// (join a través de order_product).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id int64) (*entity.Order, error)
	GetAll() ([]*entity.Order, error)
	ListByCompany(nit string) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id int64) (bool, error)
	AddProducts(orderID int64, productIDs []int64) error
}
