package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y su fecha de expiración (RFC 3339).
type LoginResponse struct {
	Token          string `json:"token"`
	ExpirationDate string `json:"expiration_date"`
}
