package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zuberiservices/hawker-ledger/internal/application/auth"
	"github.com/zuberiservices/hawker-ledger/internal/application/export"
	"github.com/zuberiservices/hawker-ledger/internal/application/ledger"
	"github.com/zuberiservices/hawker-ledger/internal/application/usecase"
	"github.com/zuberiservices/hawker-ledger/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *usecase.CatalogUseCase
	SubmitSheet *ledger.SubmitSheetUseCase
	ReportUC    *ledger.ReportUseCase
	ExportUC    *export.ExportUseCase
	JWTSecret   string
}

// Router registers the API routes. Fine-grained authorization (admin vs the
// hawker themself) lives in the use cases; the middleware only gates by role
// where a whole route is admin-only.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Hawker management (admin)
	hawkers := protected.Group("/hawkers", RequireRole(entity.RoleAdmin))
	hawkers.Post("/", authHandler.RegisterHawker)
	hawkers.Get("/", authHandler.ListHawkers)

	// Catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products := protected.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Post("/", RequireRole(entity.RoleAdmin), catalogHandler.Add)
	products.Put("/", RequireRole(entity.RoleAdmin), catalogHandler.Replace)

	// Ledger
	ledgerHandler := NewLedgerHandler(deps.SubmitSheet, deps.ReportUC)
	ledgerGroup := protected.Group("/ledger")
	ledgerGroup.Post("/sheets", ledgerHandler.SubmitSheet)
	ledgerGroup.Get("/recent", RequireRole(entity.RoleAdmin), ledgerHandler.Recent)
	ledgerGroup.Get("/hawkers/:id", ledgerHandler.History)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExportUC)
	reports := protected.Group("/reports")
	reports.Get("/summary", RequireRole(entity.RoleAdmin), reportHandler.Summary)
	reports.Get("/export", RequireRole(entity.RoleAdmin), reportHandler.ExportAll)
	reports.Get("/hawkers/:id", reportHandler.HawkerTotals)
	reports.Get("/hawkers/:id/export", reportHandler.ExportHawker)
}
