package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes. El API las expone anidadas bajo
// /companies/{nit}/orders; la creación con product_ids corre en una transacción.
type OrderUseCase struct {
	repo        repository.OrderRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	tx          TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, companyRepo repository.CompanyRepository, clientRepo repository.ClientRepository, tx TxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, companyRepo: companyRepo, clientRepo: clientRepo, tx: tx}
}

// CreateForCompany crea una orden bajo una empresa. La orden y sus filas de
// order_product confirman o revierten juntas. Devuelve domain.ErrCompanyNotFound
// o domain.ErrClientNotFound según la referencia que falte.
func (uc *OrderUseCase) CreateForCompany(nit string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	company, err := uc.companyRepo.GetByNIT(nit)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	now := time.Now()
	order := &entity.Order{
		OrderDate:  in.OrderDate,
		ClientID:   in.ClientID,
		ProductIDs: in.ProductIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.tx.RunOrder(context.Background(), func(repo repository.OrderRepository) error {
		if err := repo.Create(order); err != nil {
			return err
		}
		if len(in.ProductIDs) > 0 {
			return repo.AddProducts(order.ID, in.ProductIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListByCompany lista las órdenes que contienen productos de la empresa.
// Devuelve domain.ErrCompanyNotFound si el NIT no existe.
func (uc *OrderUseCase) ListByCompany(nit string) ([]dto.OrderResponse, error) {
	company, err := uc.companyRepo.GetByNIT(nit)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	list, err := uc.repo.ListByCompany(nit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene una orden por ID. (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update actualiza parcialmente una orden. Campos nil no se tocan.
// Un client_id presente debe existir (domain.ErrClientNotFound si no).
func (uc *OrderUseCase) Update(id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil || order == nil {
		return nil, err
	}
	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrClientNotFound
		}
		order.ClientID = *in.ClientID
	}
	if in.OrderDate != nil {
		order.OrderDate = *in.OrderDate
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// DeleteForCompany elimina una orden bajo una empresa. Las filas de
// order_product caen en cascada; los productos no se tocan.
func (uc *OrderUseCase) DeleteForCompany(nit string, orderID int64) (bool, error) {
	company, err := uc.companyRepo.GetByNIT(nit)
	if err != nil {
		return false, err
	}
	if company == nil {
		return false, domain.ErrCompanyNotFound
	}
	return uc.repo.Delete(orderID)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		OrderDate:  o.OrderDate,
		ClientID:   o.ClientID,
		ProductIDs: o.ProductIDs,
	}
}
