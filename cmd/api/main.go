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
	"github.com/jhoicas/cafe-pos-api/internal/application/auth"
	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/application/seed"
	"github.com/jhoicas/cafe-pos-api/internal/application/usecase"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	infraai "github.com/jhoicas/cafe-pos-api/internal/infrastructure/ai"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/connectivity"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/cafe-pos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cafe-pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cafe-pos-api/internal/interfaces/http"
	"github.com/jhoicas/cafe-pos-api/pkg/config"
	"github.com/jhoicas/cafe-pos-api/pkg/logger"
)

// repos agrupa los puertos de persistencia ya atados a un backend.
type repos struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	customers  repository.CustomerRepository
	users      repository.UserRepository
	orders     repository.OrderRepository
	pending    repository.PendingOrderRepository
	flags      repository.FlagRepository
	txRunner   orders.TxRunner
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando terminal POS")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var r repos
	if cfg.Store.Driver == "memory" {
		st := memory.NewStore()
		r = repos{
			products:   memory.NewProductRepo(st),
			categories: memory.NewCategoryRepo(st),
			customers:  memory.NewCustomerRepo(st),
			users:      memory.NewUserRepo(st),
			orders:     memory.NewOrderRepo(st),
			pending:    memory.NewPendingOrderRepo(st),
			flags:      memory.NewFlagRepo(st),
			txRunner:   memory.NewTxRunner(st),
		}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			products:   postgres.NewProductRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			customers:  postgres.NewCustomerRepository(pool),
			users:      postgres.NewUserRepository(pool),
			orders:     postgres.NewOrderRepository(pool),
			pending:    postgres.NewPendingOrderRepository(pool),
			flags:      postgres.NewFlagRepository(pool),
			txRunner:   postgres.NewTxRunner(pool),
		}
	}

	// Datos iniciales (una sola vez, marcados con el flag "seeded").
	seedUC := seed.New(r.users, r.categories, r.products, r.customers, r.flags)
	if seeded, err := seedUC.Run(); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	} else if seeded {
		log.Info().Msg("datos iniciales sembrados")
	}

	// Señal de conectividad: sondeo HTTP periódico.
	monitor := connectivity.NewMonitor(cfg.Connectivity.ProbeURL, cfg.Connectivity.ProbeInterval, log)
	go monitor.Start(ctx)

	loyaltyCfg := orders.LoyaltyConfig{
		RedemptionRate: cfg.Loyalty.RedemptionRate,
		EarnRate:       cfg.Loyalty.EarnRate,
	}
	createOrderUC := orders.NewCreateOrderUseCase(r.txRunner, r.orders, r.users, r.customers, loyaltyCfg)
	syncUC := orders.NewSyncUseCase(r.txRunner, r.pending, monitor, log)
	receiptUC := orders.NewReceiptUseCase(r.orders, r.customers, r.users, infrapdf.NewMarotoPDFGenerator())

	// Reconciliador automático en cada vuelta a online.
	go syncUC.Watch(ctx)

	productUC := usecase.NewProductUseCase(r.products, r.categories)
	categoryUC := usecase.NewCategoryUseCase(r.categories, r.products)
	customerUC := usecase.NewCustomerUseCase(r.customers)
	userUC := usecase.NewUserUseCase(r.users)
	authUC := auth.NewAuthUseCase(r.users)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, r.orders, r.products)

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
		Title:    "Café POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "online": monitor.Online()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		CustomerUC:    customerUC,
		UserUC:        userUC,
		AIUC:          aiUC,
		CreateOrderUC: createOrderUC,
		ReceiptUC:     receiptUC,
		SyncUC:        syncUC,
		Signal:        monitor,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("terminal detenido")
}
