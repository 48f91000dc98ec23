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
	"github.com/rifapro/rifapro-api/internal/application/auth"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	infrapdf "github.com/rifapro/rifapro-api/internal/infrastructure/pdf"
	"github.com/rifapro/rifapro-api/internal/infrastructure/postgres"
	"github.com/rifapro/rifapro-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/rifapro/rifapro-api/internal/interfaces/http"
	"github.com/rifapro/rifapro-api/pkg/config"
	"github.com/rifapro/rifapro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
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

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	assignmentRepo := postgres.NewDriverAssignmentRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	truckRepo := postgres.NewTruckRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	checker := usecase.NewIntegrityChecker(assignmentRepo, driverRepo, truckRepo, warehouseRepo, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, clientRepo, checker)
	clientUC := usecase.NewClientUseCase(clientRepo, userRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, userRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, warehouseRepo)
	driverUC := usecase.NewDriverUseCase(userRepo, assignmentRepo, clientRepo)
	truckUC := usecase.NewTruckUseCase(truckRepo, driverRepo)
	noteUC := usecase.NewNoteUseCase(
		noteRepo, truckRepo, driverRepo, clientRepo,
		xmlexport.NewManifestBuilder(), infrapdf.NewMarotoPDFGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RifaPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ClientUC:      clientUC,
		WarehouseUC:   warehouseUC,
		ProductUC:     productUC,
		DriverUC:      driverUC,
		TruckUC:       truckUC,
		NoteUC:        noteUC,
		WarehouseRepo: warehouseRepo,
		JWTSecret:     cfg.JWT.Secret,
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
