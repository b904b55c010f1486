package dto

// CreateOrderRequest entrada para crear una orden (anidada bajo una empresa).
// product_ids es opcional; las asociaciones se insertan en la misma transacción.
type CreateOrderRequest struct {
	OrderDate  string  `json:"order_date" validate:"required"`
	ClientID   int64   `json:"client_id" validate:"required"`
	ProductIDs []int64 `json:"product_ids"`
}

// UpdateOrderRequest entrada para actualización parcial.
type UpdateOrderRequest struct {
	OrderDate *string `json:"order_date"`
	ClientID  *int64  `json:"client_id"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         int64   `json:"id"`
	OrderDate  string  `json:"order_date"`
	ClientID   int64   `json:"client_id"`
	ProductIDs []int64 `json:"product_ids,omitempty"`
}
