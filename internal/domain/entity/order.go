package entity

import "time"

// Order representa una orden de compra de un cliente.
//
// OrderDate se conserva como cadena libre: el dato llega así del cliente y
// ningún flujo lo interpreta como fecha.
type Order struct {
	ID         int64
	OrderDate  string
	ClientID   int64
	ProductIDs []int64 // filas de order_product
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
