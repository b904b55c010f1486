package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// category_ids es opcional; las asociaciones se insertan en la misma transacción.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required"`
	CompanyNIT  *string         `json:"company_nit"`
	CategoryIDs []int64         `json:"category_ids"`
}

// UpdateProductRequest entrada para actualización parcial.
// nil = no tocar; un puntero presente sobreescribe. category_ids no-nil reemplaza
// el conjunto completo de asociaciones.
type UpdateProductRequest struct {
	Code        *string          `json:"code"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	CompanyNIT  *string          `json:"company_nit"`
	CategoryIDs []int64          `json:"category_ids"`
}

// ProductResponse salida de un producto. company_name se deriva del JOIN con companies.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CompanyNIT  *string         `json:"company_nit"`
	CompanyName string          `json:"company_name"`
	CategoryIDs []int64         `json:"category_ids,omitempty"`
}
