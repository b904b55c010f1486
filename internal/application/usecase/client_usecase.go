package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente. Devuelve domain.ErrEmailAlreadyExists si el email ya está en uso.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	client := &entity.Client{
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (uc *ClientUseCase) GetByID(id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil || client == nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetAll lista todos los clientes.
func (uc *ClientUseCase) GetAll() ([]dto.ClientResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Update actualiza parcialmente un cliente. Campos nil no se tocan.
func (uc *ClientUseCase) Update(id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil || client == nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != client.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		client.Email = *in.Email
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente por ID. Sus órdenes se eliminan en cascada
// (FK con ON DELETE CASCADE). Devuelve false si el ID no existe.
func (uc *ClientUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}
