package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-ledger/internal/application/auth"
	"github.com/jhoicas/pos-ledger/internal/application/pos"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *pos.ProductUseCase
	POSUC      *pos.POSUseCase
	PurchaseUC *pos.PurchaseUseCase
	RepairUC   *pos.RepairUseCase
	ExpenseUC  *pos.ExpenseUseCase
	ReportUC   *pos.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.ReportUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/expenses", reportHandler.Expenses)
	reports.Get("/export", reportHandler.Export)
	reports.Get("/print", reportHandler.Print)

	inventory := protected.Group("/inventory")
	inventory.Get("/value", reportHandler.InventoryValue)
	inventory.Get("/low-stock", reportHandler.LowStock)

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Punto de venta
	posHandler := NewPOSHandler(deps.POSUC)
	cart := protected.Group("/pos")
	cart.Get("/cart", posHandler.Cart)
	cart.Delete("/cart", posHandler.Clear)
	cart.Post("/cart/lines", posHandler.AddLine)
	cart.Patch("/cart/lines/:productId", posHandler.UpdateLine)
	cart.Delete("/cart/lines/:productId", posHandler.RemoveLine)
	cart.Post("/checkout", posHandler.Checkout)

	sales := protected.Group("/sales")
	sales.Get("/", posHandler.ListSales)
	sales.Get("/:id/receipt", posHandler.Receipt)

	// Compras (solo admin)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases := protected.Group("/purchases", adminOnly)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/cart", purchaseHandler.Cart)
	purchases.Delete("/cart", purchaseHandler.Clear)
	purchases.Post("/cart/lines", purchaseHandler.AddLine)
	purchases.Post("/cart/new-lines", purchaseHandler.AddNewLine)
	purchases.Patch("/cart/lines/:productId", purchaseHandler.UpdateLine)
	purchases.Delete("/cart/lines/:productId", purchaseHandler.RemoveLine)
	purchases.Post("/checkout", purchaseHandler.Checkout)

	// Servicio técnico
	repairHandler := NewRepairHandler(deps.RepairUC)
	repairs := protected.Group("/repairs")
	repairs.Get("/", repairHandler.List)
	repairs.Get("/:id", repairHandler.GetByID)
	repairs.Get("/:id/receipt", repairHandler.Receipt)
	repairs.Post("/", repairHandler.Create)
	repairs.Put("/:id", repairHandler.Update)

	// Gastos
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses")
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
}
