package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/application/auth"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ClientUC      *usecase.ClientUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ProductUC     *usecase.ProductUseCase
	DriverUC      *usecase.DriverUseCase
	TruckUC       *usecase.TruckUseCase
	NoteUC        *usecase.NoteUseCase
	WarehouseRepo repository.WarehouseRepository
	JWTSecret     string
}

// Router registra las rutas de la API. Cada grupo protegido lleva el conjunto
// de roles que la página correspondiente admite; el scoping fino por fila lo
// aplican los casos de uso vía access.CanSee.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	provider := NewActorProvider(deps.WarehouseRepo)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Catálogo público: productos activos de un galpón, sin token
	productHandler := NewProductHandler(deps.ProductUC, provider)
	api.Get("/catalogue/:id", productHandler.Catalogue)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminsOnly := RequireRole(entity.RoleAppAdmin)
	userAdmins := RequireRole(entity.RoleAppAdmin, entity.RoleClientAdmin)
	warehouseAdmins := RequireRole(entity.RoleAppAdmin, entity.RoleWarehouseAdmin)
	fleetRoles := RequireRole(entity.RoleAppAdmin, entity.RoleClientAdmin)
	logisticsRoles := RequireRole(entity.RoleAppAdmin, entity.RoleClientAdmin, entity.RoleDriver)

	// Users
	users := protected.Group("/users", userAdmins)
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC, provider)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Get("/:id/check-dependencies", adminsOnly, userHandler.CheckDependencies)
	users.Delete("/:id", adminsOnly, userHandler.Delete)

	// Clients
	clients := protected.Group("/clients", userAdmins)
	clientHandler := NewClientHandler(deps.ClientUC, provider)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/search", clientHandler.Search)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Warehouses
	warehouses := protected.Group("/warehouses", warehouseAdmins)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, provider)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Patch("/:id/status", warehouseHandler.SetStatus)
	warehouses.Delete("/:id", adminsOnly, warehouseHandler.Delete)
	warehouses.Get("/:id/products", productHandler.ListByWarehouse)

	// Products
	products := protected.Group("/products", warehouseAdmins)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Drivers y asignaciones: la página de contratación es de administradores;
	// los motoristas no consultan la disponibilidad de otros motoristas.
	driverHandler := NewDriverHandler(deps.DriverUC, provider)
	drivers := protected.Group("/drivers", fleetRoles)
	drivers.Get("/:userId/availability", driverHandler.Availability)
	drivers.Post("/hire", driverHandler.Hire)

	assignments := protected.Group("/assignments", logisticsRoles)
	assignments.Get("/", driverHandler.ListAssignments)
	assignments.Post("/:id/dismiss", driverHandler.Dismiss)
	assignments.Delete("/:id", driverHandler.DeleteAssignment)

	// Trucks
	trucks := protected.Group("/trucks", fleetRoles)
	truckHandler := NewTruckHandler(deps.TruckUC, provider)
	trucks.Post("/", truckHandler.Create)
	trucks.Get("/", truckHandler.List)
	trucks.Get("/:id", truckHandler.GetByID)
	trucks.Put("/:id", truckHandler.Update)
	trucks.Put("/:id/driver", truckHandler.AssignDriver)
	trucks.Delete("/:id", truckHandler.Delete)

	// Notes (romaneos)
	notes := protected.Group("/notes", logisticsRoles)
	noteHandler := NewNoteHandler(deps.NoteUC, provider)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Patch("/:id/status", noteHandler.SetStatus)
	notes.Get("/:id/export/xml", noteHandler.ExportXML)
	notes.Get("/:id/export/pdf", noteHandler.ExportPDF)
	notes.Delete("/:id", noteHandler.Delete)
}
