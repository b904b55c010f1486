package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el caso de uso).
// Si roles llega vacío el API asigna ["USER"].
type CreateUserRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Roles    []string `json:"roles"`
}

// UpdateUserRequest entrada para actualización parcial.
// nil = no tocar; un puntero presente sobreescribe, incluso con cadena vacía.
type UpdateUserRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"` // se re-hashea solo si viene presente
	Roles    []string `json:"roles"`    // nil = no tocar
}

// UserResponse salida de un usuario (nunca incluye el password ni su hash).
type UserResponse struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
