package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetAll() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) (bool, error)
}
