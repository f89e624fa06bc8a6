package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	articleRepo := postgres.NewArticleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	brandModelRepo := postgres.NewBrandModelRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	articleUC := usecase.NewArticleUseCase(articleRepo, brandRepo, brandModelRepo, cfg.Page.DefaultLimit)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, cfg.Page.DefaultLimit)
	productUC := usecase.NewProductUseCase(productRepo, brandRepo, brandModelRepo, articleRepo, cfg.Page.DefaultLimit)
	brandUC := usecase.NewBrandUseCase(brandRepo, brandModelRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, cfg.Page.DefaultLimit)
	storeUC := usecase.NewStoreUseCase(storeRepo, cfg.Page.DefaultLimit)
	profileUC := usecase.NewProfileUseCase(profileRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if docs := httpRouter.Swagger("./docs/swagger.json"); docs != nil {
		app.Use(docs)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticleUC:   articleUC,
		InventoryUC: inventoryUC,
		ProductUC:   productUC,
		BrandUC:     brandUC,
		WarehouseUC: warehouseUC,
		StoreUC:     storeUC,
		ProfileUC:   profileUC,
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
