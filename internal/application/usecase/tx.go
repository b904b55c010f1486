package usecase

import (
	"context"

	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción de base de datos.
// Cada operación mutante que toca más de una tabla (entidad + asociaciones)
// pasa por aquí: todo confirma o todo revierte.
type TxRunner interface {
	RunProduct(ctx context.Context, fn func(repo repository.ProductRepository) error) error
	RunOrder(ctx context.Context, fn func(repo repository.OrderRepository) error) error
}
