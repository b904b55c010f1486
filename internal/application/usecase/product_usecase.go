package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Las mutaciones que tocan
// product_category corren dentro de una transacción vía TxRunner.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un producto y sus asociaciones de categoría en una sola transacción.
// Devuelve domain.ErrDuplicate si el código ya existe y domain.ErrInvalidInput
// si company_nit o alguna categoría no existen (violación de FK).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CompanyNIT:  in.CompanyNIT,
		CategoryIDs: in.CategoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.RunProduct(context.Background(), func(repo repository.ProductRepository) error {
		if err := repo.Create(product); err != nil {
			return err
		}
		if len(in.CategoryIDs) > 0 {
			return repo.ReplaceCategories(product.ID, in.CategoryIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Releer para resolver company_name vía JOIN.
	return uc.GetByID(product.ID)
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetAll lista todos los productos.
func (uc *ProductUseCase) GetAll() ([]dto.ProductResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListByCompany lista los productos asociados a una empresa.
// La existencia de la empresa la verifica el caso de uso de órdenes/empresas.
func (uc *ProductUseCase) ListByCompany(nit string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCompany(nit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualiza parcialmente un producto. Campos nil no se tocan;
// category_ids no-nil reemplaza el conjunto de asociaciones en la misma transacción.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Code != nil && *in.Code != product.Code {
		existing, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.CompanyNIT != nil {
		product.CompanyNIT = in.CompanyNIT
	}
	product.UpdatedAt = time.Now()
	err = uc.tx.RunProduct(context.Background(), func(repo repository.ProductRepository) error {
		if err := repo.Update(product); err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			return repo.ReplaceCategories(product.ID, in.CategoryIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(product.ID)
}

// Delete elimina un producto. Las filas de product_category y order_product
// caen en cascada; categorías y órdenes del otro lado no se tocan.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CompanyNIT:  p.CompanyNIT,
		CompanyName: p.CompanyName,
		CategoryIDs: p.CategoryIDs,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}
