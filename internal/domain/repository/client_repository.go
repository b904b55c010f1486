package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
// El borrado cascadea sobre orders a nivel de base de datos.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	GetAll() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id int64) (bool, error)
}
