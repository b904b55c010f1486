package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/dto"
)

// parseID extrae un parámetro de ruta numérico. Si el valor no es un entero
// positivo responde 400 y devuelve ok=false para que el handler corte.
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
