package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// El borrado cascadea sobre products a nivel de base de datos.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByNIT(nit string) (*entity.Company, error)
	GetAll() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(nit string) (bool, error)
}
