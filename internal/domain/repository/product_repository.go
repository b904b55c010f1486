package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// ReplaceCategories sustituye las filas de product_category del producto;
// al eliminar un producto las asociaciones caen en cascada sin tocar la
// categoría ni la orden del otro lado.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetAll() ([]*entity.Product, error)
	ListByCompany(nit string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) (bool, error)
	ReplaceCategories(productID int64, categoryIDs []int64) error
}
