package dto

// CreateClientRequest entrada para crear un cliente.
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateClientRequest entrada para actualización parcial.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
