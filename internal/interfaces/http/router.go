package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/barra-pro/internal/application/auth"
	"github.com/tu-usuario/barra-pro/internal/application/usecase"
	"github.com/tu-usuario/barra-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC      *usecase.StockUseCase
	EscandalloUC *usecase.EscandalloUseCase
	AlertsUC     *usecase.AlertsUseCase
	ComparisonUC *usecase.ComparisonUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Compras y stock valorado
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Post("/purchases", stockHandler.RegisterPurchase)
	protected.Get("/stock", stockHandler.GetStock)

	// Escandallos
	escandalloHandler := NewEscandalloHandler(deps.EscandalloUC)
	recipes := protected.Group("/recipes")
	recipes.Get("/:id/escandallo", escandalloHandler.GetEscandallo)
	recipes.Get("/:id/escandallo/pdf", escandalloHandler.GetEscandalloPDF)

	// Alertas y pedido combinado
	alertsHandler := NewAlertsHandler(deps.AlertsUC)
	alertsGroup := protected.Group("/alerts")
	alertsGroup.Get("/", alertsHandler.GetAlerts)
	alertsGroup.Get("/bulk-order", alertsHandler.GetBulkOrder)

	// Reglas de reposición (solo admin y encargado editan)
	rules := protected.Group("/rules")
	rules.Get("/", alertsHandler.ListRules)
	rules.Post("/", RequireRole(entity.RoleAdmin, entity.RoleEncargado), alertsHandler.CreateRule)
	rules.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleEncargado), alertsHandler.UpdateRule)

	// Comparador de precios
	comparisonHandler := NewComparisonHandler(deps.ComparisonUC)
	protected.Get("/ingredients/:id/comparison", comparisonHandler.GetComparison)
}
