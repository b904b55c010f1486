package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para Order. Las órdenes viven
// anidadas bajo la empresa: /api/companies/{nit}/orders.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden para una empresa
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        nit   path  string  true  "NIT de la empresa"
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{nit}/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	nit := c.Params("nit")
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	if in.OrderDate == "" || in.ClientID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_date and client_id are required"})
	}
	out, err := h.uc.CreateForCompany(nit, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Company not found"})
		case errors.Is(err, domain.ErrClientNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Unknown client reference"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Unknown product reference"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar órdenes de una empresa
// @Tags         orders
// @Produce      json
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      200  {array}   dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{nit}/orders [get]
func (h *OrderHandler) ListByCompany(c *fiber.Ctx) error {
	nit := c.Params("nit")
	out, err := h.uc.ListByCompany(nit)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if len(out) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No orders found for this company"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden de una empresa
// @Tags         orders
// @Produce      json
// @Param        nit       path  string  true  "NIT de la empresa"
// @Param        order_id  path  int     true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{nit}/orders/{order_id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	nit := c.Params("nit")
	orderID, ok := parseID(c, "order_id")
	if !ok {
		return nil
	}
	deleted, err := h.uc.DeleteForCompany(nit, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Order not found"})
	}
	return c.JSON(dto.MessageResponse{Message: "Order deleted"})
}
