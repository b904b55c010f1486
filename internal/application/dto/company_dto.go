package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	NIT     string `json:"nit" validate:"required,min=1,max=50"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateCompanyRequest entrada para actualización parcial (el NIT no se modifica: es la llave).
type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	NIT     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
