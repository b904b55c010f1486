package entity

import "time"

// Category representa una categoría de productos (relación M–N vía product_category).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
