package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas. El NIT actúa como llave
// primaria; al eliminar una empresa sus productos caen en cascada.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa. Devuelve domain.ErrDuplicate si el NIT ya está registrado.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByNIT(in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		NIT:       in.NIT,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByNIT obtiene una empresa por NIT. (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByNIT(nit string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByNIT(nit)
	if err != nil || company == nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetAll lista todas las empresas.
func (uc *CompanyUseCase) GetAll() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// Update actualiza parcialmente una empresa. Campos nil no se tocan.
func (uc *CompanyUseCase) Update(nit string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByNIT(nit)
	if err != nil || company == nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa por NIT. Sus productos se eliminan en cascada
// (FK con ON DELETE CASCADE). Devuelve false si el NIT no existe.
func (uc *CompanyUseCase) Delete(nit string) (bool, error) {
	return uc.repo.Delete(nit)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		NIT:     c.NIT,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}
