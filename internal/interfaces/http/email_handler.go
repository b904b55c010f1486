package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/pkg/logger"
)

// EmailHandler maneja el envío del reporte de inventario por correo.
type EmailHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewEmailHandler construye el handler.
func NewEmailHandler(uc *usecase.ReportUseCase, log *logger.Logger) *EmailHandler {
	return &EmailHandler{uc: uc, log: log}
}

// SendEmail godoc
// @Summary      Enviar un PDF por correo (multipart)
// @Tags         email
// @Accept       multipart/form-data
// @Produce      json
// @Param        email  formData  string  true  "Destinatario"
// @Param        file   formData  file    true  "PDF a adjuntar"
// @Success      200    {object}  dto.EmailSentResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/email/send-email [post]
func (h *EmailHandler) SendEmail(c *fiber.Ctx) error {
	to := c.FormValue("email")
	if to == "" || !strings.Contains(to, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "A valid email is required"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file could not be read"})
	}
	defer f.Close()
	pdf, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file could not be read"})
	}

	messageID, err := h.uc.SendPDF(to, fh.Filename, pdf)
	if err != nil {
		return h.providerError(c, err)
	}
	return c.JSON(dto.EmailSentResponse{Message: "Email sent", MessageID: messageID})
}

// SendReport godoc
// @Summary      Generar el reporte de inventario y enviarlo por correo
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendReportRequest  true  "Destinatario"
// @Success      200   {object}  dto.EmailSentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/email/send-report [post]
func (h *EmailHandler) SendReport(c *fiber.Ctx) error {
	var in dto.SendReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "A valid email is required"})
	}
	messageID, err := h.uc.SendInventoryReport(in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCollection) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No products to report"})
		}
		return h.providerError(c, err)
	}
	return c.JSON(dto.EmailSentResponse{Message: "Email sent", MessageID: messageID})
}

// providerError registra el detalle del fallo del proveedor y responde un
// 502 genérico. El error crudo nunca viaja al cliente.
func (h *EmailHandler) providerError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("handler", "email").Msg("email provider failure")
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PROVIDER_ERROR", Message: "Email could not be sent"})
}
