package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/ipda-secretaria/secretaria-api/internal/application/analytics"
	"github.com/ipda-secretaria/secretaria-api/internal/application/document"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ledger"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/application/report"
	"github.com/ipda-secretaria/secretaria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	ChurchUC    *usecase.ChurchUseCase
	MemberUC    *usecase.MemberUseCase
	Ledger      *ledger.Ledger
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.UseCase
	DocumentUC  *document.UseCase
	CEP         ports.CEPLookup
	JWTSecret   string
	JWTIssuer   string
}

// Router registra las rutas de la API. Todo /api exige Bearer Token; /metrics queda público.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())
	app.Get("/metrics", MetricsHandler())

	protected := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Depósito: catálogo de ítems
	itemHandler := NewItemHandler(deps.ItemUC)
	items := protected.Group("/inventory/items")
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Depósito: libro de stock
	invHandler := NewInventoryHandler(deps.Ledger)
	inv := protected.Group("/inventory")
	inv.Patch("/items/:id/stock", invHandler.AdjustStock)
	inv.Post("/entries", invHandler.RecordEntry)
	inv.Post("/exits", invHandler.RecordExit)
	inv.Post("/transfers", invHandler.RecordTransfer)
	inv.Get("/transfers", invHandler.ListTransfers)
	inv.Patch("/transfers/:id/status", invHandler.UpdateTransferStatus)
	inv.Get("/movements", invHandler.ListMovements)
	inv.Get("/stats", invHandler.GetStats)

	churchHandler := NewChurchHandler(deps.ChurchUC)
	churches := protected.Group("/churches")
	churches.Post("/", churchHandler.Create)
	churches.Get("/", churchHandler.List)
	churches.Get("/:id", churchHandler.GetByID)
	churches.Put("/:id", churchHandler.Update)
	churches.Delete("/:id", churchHandler.Delete)

	memberHandler := NewMemberHandler(deps.MemberUC)
	members := protected.Group("/members")
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/:id", memberHandler.GetByID)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports", reportHandler.Catalog)
	protected.Get("/reports/:category/:kind", reportHandler.Generate)

	docHandler := NewDocumentHandler(deps.DocumentUC)
	docs := protected.Group("/documents")
	docs.Get("/preaching-letter/template", docHandler.LetterTemplate)
	docs.Post("/preaching-letter", docHandler.PreachingLetter)
	docs.Post("/reassignment", docHandler.Reassignment)
	docs.Get("/members/:id/card", docHandler.MemberCard)
	docs.Get("/members/:id/record", docHandler.MemberRecord)

	if deps.CEP != nil {
		cepHandler := NewCEPHandler(deps.CEP)
		protected.Get("/cep/:cep", cepHandler.Lookup)
	}
}
