package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafe-pos-api/internal/application/auth"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	AIUC       *usecase.AIUseCase

	CreateOrderUC *orders.CreateOrderUseCase
	ReceiptUC     *orders.ReceiptUseCase
	SyncUC        *orders.SyncUseCase
	Signal        orders.ConnectivitySignal
}

// Router registra las rutas de la API. El terminal es mono-usuario y corre en
// la red local del café: el login por PIN identifica al operador pero no hay
// sesiones ni tokens.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Customers (fidelidad)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Users (operadores)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Orders (cobro + historial + recibos)
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrderUC, deps.ReceiptUC, deps.Signal)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/max-redeemable", orderHandler.MaxRedeemable)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)

	// Sync (reconciliador offline)
	syncHandler := NewSyncHandler(deps.SyncUC, deps.Signal)
	api.Post("/sync", syncHandler.Sync)
	api.Get("/sync/status", syncHandler.Status)

	// AI
	aiHandler := NewAIHandler(deps.AIUC)
	api.Post("/ai/suggest-description", aiHandler.SuggestDescription)
	api.Get("/ai/sales-insights", aiHandler.SalesInsights)
}
