package dto

// SendReportRequest entrada para generar y enviar el reporte de inventario.
type SendReportRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// EmailSentResponse salida de un envío de correo exitoso.
type EmailSentResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
}
