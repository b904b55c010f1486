// seed crea el usuario administrador inicial si no existe.
//
// Uso: go run ./cmd/seed
// Lee ADMIN_EMAIL y ADMIN_PASSWORD del entorno (defaults de desarrollo si faltan).
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventario-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@inventario.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migración del esquema: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El usuario %s ya existe, nada que hacer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear password: %v\n", err)
		os.Exit(1)
	}

	// NewUser con roles nil asigna ADMIN.
	admin := entity.NewUser("Administrador", email, string(hash), nil)
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario administrador creado: %s (id=%d)\n", admin.Email, admin.ID)
}
