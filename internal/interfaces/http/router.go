package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/hotel-stock/internal/application/exporting"
	"github.com/tu-usuario/hotel-stock/internal/application/inventory"
	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	View         *ledger.Service
	ItemUC       *inventory.ItemUseCase
	WarehouseUC  *inventory.WarehouseUseCase
	MovementUC   *inventory.MovementUseCase
	TransferUC   *inventory.TransferUseCase
	AssignmentUC *inventory.AssignmentUseCase
	PicklistUC   *inventory.PicklistUseCase
	AdminUC      *inventory.AdminUseCase
	ReportUC     *exporting.ReportUseCase
	CSVUC        *exporting.CSVUseCase
	PDFGen       *pdf.CountSheetGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/managers", itemHandler.Managers)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Movements + transfers + stock derivado
	movementHandler := NewMovementHandler(deps.MovementUC, deps.TransferUC, deps.View)
	movements := api.Group("/movements")
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	api.Post("/transfers", movementHandler.Transfer)
	api.Get("/stock", movementHandler.Stock)

	// Reglas de asignación de responsables
	assignments := api.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/stats", assignmentHandler.Stats)
	assignments.Delete("/:id", assignmentHandler.Delete)

	// Listas de sugerencias
	picklists := api.Group("/picklists")
	picklistHandler := NewPicklistHandler(deps.PicklistUC)
	picklists.Get("/:list", picklistHandler.Values)
	picklists.Post("/:list", picklistHandler.Add)

	// Reportes e intercambio CSV
	reportHandler := NewReportHandler(deps.ReportUC, deps.CSVUC, deps.PDFGen)
	api.Get("/reports/count-sheet", reportHandler.CountSheet)
	api.Get("/exports/csv", reportHandler.ExportCSV)
	api.Post("/imports/csv", reportHandler.ImportCSV)

	// Administración
	adminHandler := NewAdminHandler(deps.AdminUC)
	api.Post("/admin/clear-all", adminHandler.ClearAll)
}
