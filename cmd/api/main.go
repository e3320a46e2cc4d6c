package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/kilatwash/washpos-api/internal/application/service"
	"github.com/kilatwash/washpos-api/internal/config"
	"github.com/kilatwash/washpos-api/internal/infrastructure/cache"
	"github.com/kilatwash/washpos-api/internal/infrastructure/database"
	"github.com/kilatwash/washpos-api/internal/infrastructure/repository"
	"github.com/kilatwash/washpos-api/internal/presentation/http/handler"
	"github.com/kilatwash/washpos-api/internal/presentation/http/routes"
	"github.com/kilatwash/washpos-api/pkg/notify"
	"github.com/kilatwash/washpos-api/pkg/payment"
	"github.com/kilatwash/washpos-api/pkg/printer"
	"github.com/kilatwash/washpos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewCustomerVehicleRepository(db)
	membershipRepo := repository.NewMembershipTypeRepository(db)
	serviceItemRepo := repository.NewServiceItemRepository(db)
	priceMatrixRepo := repository.NewPriceMatrixRepository(db)
	fdItemRepo := repository.NewFdItemRepository(db)
	dimensionRepo := repository.NewDimensionRepository(db)
	productRepo := repository.NewProductRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	washTxRepo := repository.NewWashTransactionRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	posTxRepo := repository.NewPOSTransactionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Price cache: Redis when configured, no-op otherwise
	var priceCache cache.PriceCache = cache.NewNoopPriceCache()
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisPriceCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Warning: Redis unreachable, price cache disabled: %v", err)
		} else {
			priceCache = redisCache
		}
	}

	// QRIS gateway: Midtrans when a server key is configured, mock otherwise
	var gateway payment.Gateway = payment.NewMockGateway()
	if cfg.Midtrans.ServerKey != "" {
		gateway = payment.NewMidtransGateway(cfg.Midtrans.ServerKey, cfg.Midtrans.Production)
	}

	// Push notification sender
	notifier := notify.NewLogSender()

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.DevicePath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo, vehicleRepo, membershipRepo, washTxRepo, posTxRepo)
	catalogService := service.NewCatalogService(serviceItemRepo, priceMatrixRepo, fdItemRepo, dimensionRepo, priceCache)
	productService := service.NewProductService(productRepo)
	workOrderService := service.NewWorkOrderService(workOrderRepo, customerRepo, vehicleRepo, fdItemRepo, posTxRepo, catalogService, txManager)
	washService := service.NewWashTransactionService(washTxRepo, customerRepo, vehicleRepo, productRepo, shiftRepo, txManager)
	shiftService := service.NewShiftService(shiftRepo, washTxRepo, txManager)
	printerService := service.NewPrinterService(thermalPrinter, posTxRepo, &cfg.Printer, cfg.Store)
	posService := service.NewPOSService(
		posTxRepo, washTxRepo, workOrderRepo, productRepo, customerRepo, shiftRepo,
		customerService, printerService, notifier, gateway, txManager,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:            handler.NewAuthHandler(authService),
		Customer:        handler.NewCustomerHandler(customerService),
		Catalog:         handler.NewCatalogHandler(catalogService),
		Product:         handler.NewProductHandler(productService),
		WorkOrder:       handler.NewWorkOrderHandler(workOrderService),
		WashTransaction: handler.NewWashTransactionHandler(washService, posService),
		Shift:           handler.NewShiftHandler(shiftService),
		POS:             handler.NewPOSHandler(posService),
		Printer:         handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
