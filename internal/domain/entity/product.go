package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
//
// Relaciones:
//   - N–1 con Company vía CompanyNIT (nullable; ON DELETE CASCADE).
//   - M–N con Category vía product_category.
//   - M–N con Order vía order_product.
type Product struct {
	ID          int64
	Code        string // único
	Name        string
	Description string // opcional
	Price       decimal.Decimal
	Quantity    int
	CompanyNIT  *string // nil = sin empresa asociada
	CompanyName string  // derivado del JOIN con companies; no es columna propia
	CategoryIDs []int64 // filas de product_category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
