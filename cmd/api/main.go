package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/andescloud/inventario-service/docs"
	"github.com/andescloud/inventario-service/internal/application/auth"
	"github.com/andescloud/inventario-service/internal/application/inventario"
	"github.com/andescloud/inventario-service/internal/infrastructure/export"
	infrapdf "github.com/andescloud/inventario-service/internal/infrastructure/pdf"
	"github.com/andescloud/inventario-service/internal/infrastructure/postgres"
	httpRouter "github.com/andescloud/inventario-service/internal/interfaces/http"
	"github.com/andescloud/inventario-service/pkg/config"
	"github.com/andescloud/inventario-service/pkg/logger"
)

// @title        Inventario Service API
// @version      1.0.0
// @description  Inventario multiempresa por almacén y sucursal.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	warehouseInvRepo := postgres.NewWarehouseInventoryRepository(pool)
	branchInvRepo := postgres.NewBranchInventoryRepository(pool)

	authUC := auth.NewUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	warehouseInvUC := inventario.NewUseCase(
		postgres.NewWarehouseTxRunner(pool), warehouseInvRepo, warehouseRepo, productRepo,
	)
	branchInvUC := inventario.NewUseCase(
		postgres.NewBranchTxRunner(pool), branchInvRepo, branchRepo, productRepo,
	)

	pdfGenerator := infrapdf.NewStockReportGenerator()
	xmlExporter := export.NewXMLExporter()
	warehouseReports := inventario.NewReportUseCase(warehouseInvRepo, warehouseRepo, companyRepo, pdfGenerator, xmlExporter)
	branchReports := inventario.NewReportUseCase(branchInvRepo, branchRepo, companyRepo, pdfGenerator, xmlExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": cfg.App.Name, "version": cfg.App.Version})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		WarehouseInvUC:   warehouseInvUC,
		BranchInvUC:      branchInvUC,
		WarehouseReports: warehouseReports,
		BranchReports:    branchReports,
		JWTSecret:        cfg.JWT.Secret,
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
