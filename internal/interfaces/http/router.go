// Package http registra las rutas de la API y traduce errores de dominio a
// códigos HTTP. Convenciones del API:
//
//   - 201 creación, 200 lectura/actualización/borrado.
//   - 400 validación y conflictos de unicidad (email, nit, code).
//   - 404 llave desconocida y también listados vacíos.
//   - 401 credenciales inválidas.
//   - 502 fallo del proveedor de correo (detalle solo en logs).
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
	"github.com/tu-usuario/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CompanyUC  *usecase.CompanyUseCase
	CategoryUC *usecase.CategoryUseCase
	ClientUC   *usecase.ClientUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	ReportUC   *usecase.ReportUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/", authHandler.Login)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.GetAll)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Companies, con órdenes y productos anidados bajo el NIT
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	productHandler := NewProductHandler(deps.ProductUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.GetAll)
	companies.Get("/:nit", companyHandler.GetByNIT)
	companies.Put("/:nit", companyHandler.Update)
	companies.Delete("/:nit", companyHandler.Delete)
	companies.Post("/:nit/orders", orderHandler.Create)
	companies.Get("/:nit/orders", orderHandler.ListByCompany)
	companies.Delete("/:nit/orders/:order_id", orderHandler.Delete)
	companies.Get("/:nit/products", productHandler.ListByCompany)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.GetAll)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.GetAll)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Products
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.GetAll)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Email
	email := api.Group("/email")
	emailHandler := NewEmailHandler(deps.ReportUC, deps.Log)
	email.Post("/send-email", emailHandler.SendEmail)
	email.Post("/send-report", emailHandler.SendReport)
}
