package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/zuberiservices/hawker-ledger/internal/application/auth"
	"github.com/zuberiservices/hawker-ledger/internal/application/export"
	"github.com/zuberiservices/hawker-ledger/internal/application/ledger"
	"github.com/zuberiservices/hawker-ledger/internal/application/usecase"
	infrapdf "github.com/zuberiservices/hawker-ledger/internal/infrastructure/pdf"
	"github.com/zuberiservices/hawker-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/zuberiservices/hawker-ledger/internal/interfaces/http"
	"github.com/zuberiservices/hawker-ledger/pkg/config"
	"github.com/zuberiservices/hawker-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(productRepo, txRunner)
	submitSheetUC := ledger.NewSubmitSheetUseCase(txRunner)
	reportUC := ledger.NewReportUseCase(ledgerRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	exportUC := export.NewExportUseCase(ledgerRepo, userRepo, pdfGenerator)

	// First-run bootstrap: without at least one admin the system is unreachable.
	created, err := authUC.EnsureDefaultAdmin(cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword, cfg.Bootstrap.AdminName)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap default admin")
	}
	if created {
		log.Warn().
			Str("username", cfg.Bootstrap.AdminUsername).
			Msg("default admin created; change the bootstrap password")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		SubmitSheet: submitSheetUC,
		ReportUC:    reportUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
