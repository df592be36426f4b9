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
	"github.com/jhoicas/quincaillerie-api/internal/application/auth"
	"github.com/jhoicas/quincaillerie-api/internal/application/catalog"
	"github.com/jhoicas/quincaillerie-api/internal/application/order"
	"github.com/jhoicas/quincaillerie-api/internal/application/supplier"
	"github.com/jhoicas/quincaillerie-api/internal/infrastructure/cloudinary"
	"github.com/jhoicas/quincaillerie-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/quincaillerie-api/internal/interfaces/http"
	"github.com/jhoicas/quincaillerie-api/pkg/config"
	"github.com/jhoicas/quincaillerie-api/pkg/jwt"
	"github.com/jhoicas/quincaillerie-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	jwtCfg := jwt.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		ExpHours: cfg.JWT.ExpHours,
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subCategoryRepo := postgres.NewSubCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	identity := auth.NewIdentityService(userRepo, jwtCfg)
	authUC := auth.NewAuthUseCase(userRepo, jwtCfg)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, subCategoryRepo, productRepo, txRunner)
	subCategoryUC := catalog.NewSubCategoryUseCase(subCategoryRepo, categoryRepo, txRunner)
	productUC := catalog.NewProductUseCase(productRepo, subCategoryRepo, orderRepo)
	supplierUC := supplier.NewSupplierUseCase(supplierRepo, orderRepo)
	orderUC := order.NewOrderUseCase(orderRepo, supplierRepo, productRepo)

	if !cfg.Cloudinary.Enabled() {
		log.Warn().Msg("credenciales de Cloudinary ausentes: la subida de imágenes fallará")
	}
	cdn := cloudinary.New(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	imageUC := catalog.NewImageUseCase(productRepo, cdn, cfg.Cloudinary.Folder, log)

	errs := httpRouter.NewErrorWriter(log, cfg.App.IsProduction())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    10 << 20,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Quincaillerie Barro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Identity:      identity,
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		SubCategoryUC: subCategoryUC,
		ProductUC:     productUC,
		ImageUC:       imageUC,
		SupplierUC:    supplierUC,
		OrderUC:       orderUC,
		Errors:        errs,
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
