package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kombaos/taller-api/internal/application/inventory"
	"github.com/kombaos/taller-api/internal/application/usecase"
	"github.com/kombaos/taller-api/internal/infrastructure/storage"
	httpRouter "github.com/kombaos/taller-api/internal/interfaces/http"
	"github.com/kombaos/taller-api/pkg/config"
	"github.com/kombaos/taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer stores.Close()

	materialUC := usecase.NewMaterialUseCase(stores.Materials)
	productUC := usecase.NewProductUseCase(stores.Products)
	movementUC := inventory.NewMovementUseCase(stores.Movements, materialUC)
	thresholdUC := inventory.NewThresholdUseCase(stores.Thresholds, materialUC)
	alertsUC := inventory.NewAlertsUseCase(materialUC, movementUC, stores.Thresholds)

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
		MaterialUC:  materialUC,
		ProductUC:   productUC,
		MovementUC:  movementUC,
		ThresholdUC: thresholdUC,
		AlertsUC:    alertsUC,
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
}
