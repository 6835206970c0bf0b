package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/hotel-stock/internal/application/exporting"
	"github.com/tu-usuario/hotel-stock/internal/application/inventory"
	"github.com/tu-usuario/hotel-stock/internal/application/ledger"
	"github.com/tu-usuario/hotel-stock/internal/infrastructure/docstore"
	infrapdf "github.com/tu-usuario/hotel-stock/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/hotel-stock/internal/interfaces/http"
	"github.com/tu-usuario/hotel-stock/internal/scheduler"
	"github.com/tu-usuario/hotel-stock/pkg/config"
	"github.com/tu-usuario/hotel-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store docstore.Store
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		store, err = docstore.NewPostgresStore(ctx, cfg.Store, log)
	case config.StoreDriverMongo:
		store, err = docstore.NewMongoStore(ctx, cfg.Store, log)
	default:
		store = docstore.NewMemoryStore()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén de documentos")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("cerrar almacén")
		}
	}()

	// Snapshot vivo: carga inicial + suscripciones por colección.
	view := ledger.NewService(store, log)
	if err := view.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot inicial")
	}
	defer view.Stop()

	picklistUC := inventory.NewPicklistUseCase(store, view)
	itemUC := inventory.NewItemUseCase(store, view, picklistUC)
	warehouseUC := inventory.NewWarehouseUseCase(store, view)
	movementUC := inventory.NewMovementUseCase(store, view, picklistUC)
	transferUC := inventory.NewTransferUseCase(store, view, picklistUC)
	assignmentUC := inventory.NewAssignmentUseCase(store, view, picklistUC)
	adminUC := inventory.NewAdminUseCase(store)
	reportUC := exporting.NewReportUseCase(view)
	csvUC := exporting.NewCSVUseCase(store, view)
	pdfGenerator := infrapdf.NewCountSheetGenerator()

	if cfg.Report.SchedulerEnabled {
		sched := scheduler.NewScheduler(reportUC, pdfGenerator, cfg.Report.OutputDir, log)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("arrancar scheduler")
		}
		defer sched.Stop()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "version": view.Version()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		View:         view,
		ItemUC:       itemUC,
		WarehouseUC:  warehouseUC,
		MovementUC:   movementUC,
		TransferUC:   transferUC,
		AssignmentUC: assignmentUC,
		PicklistUC:   picklistUC,
		AdminUC:      adminUC,
		ReportUC:     reportUC,
		CSVUC:        csvUC,
		PDFGen:       pdfGenerator,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
