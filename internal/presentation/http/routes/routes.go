package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kilatwash/washpos-api/internal/config"
	domainRepo "github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/internal/presentation/http/handler"
	"github.com/kilatwash/washpos-api/internal/presentation/http/middleware"
	"github.com/kilatwash/washpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth            *handler.AuthHandler
	Customer        *handler.CustomerHandler
	Catalog         *handler.CatalogHandler
	Product         *handler.ProductHandler
	WorkOrder       *handler.WorkOrderHandler
	WashTransaction *handler.WashTransactionHandler
	Shift           *handler.ShiftHandler
	POS             *handler.POSHandler
	Printer         *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	registerCustomerRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerWorkOrderRoutes(protected, h)
	registerWashTransactionRoutes(protected, h)
	registerShiftRoutes(protected, h)
	registerPOSRoutes(protected, h, deps)
	registerPrinterRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)

		customers.POST("/:id/membership", h.Customer.AssignMembership)
		customers.DELETE("/:id/membership", h.Customer.RevokeMembership)

		customers.GET("/:id/vehicles", h.Customer.ListVehicles)
		customers.POST("/:id/vehicles", h.Customer.CreateVehicle)
	}

	vehicles := protected.Group("/vehicles")
	{
		vehicles.PUT("/:vehicleId", h.Customer.UpdateVehicle)
		vehicles.DELETE("/:vehicleId", h.Customer.DeleteVehicle)
	}

	membershipTypes := protected.Group("/membership-types")
	{
		membershipTypes.GET("", h.Customer.ListMembershipTypes)
		membershipTypes.POST("", middleware.RequireRole("admin"), h.Customer.CreateMembershipType)
		membershipTypes.PUT("/:id", middleware.RequireRole("admin"), h.Customer.UpdateMembershipType)
		membershipTypes.DELETE("/:id", middleware.RequireRole("admin"), h.Customer.DeleteMembershipType)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	serviceItems := protected.Group("/service-items")
	{
		serviceItems.GET("", h.Catalog.ListServiceItems)
		serviceItems.POST("", middleware.RequireRole("admin"), h.Catalog.CreateServiceItem)
		serviceItems.GET("/:id", h.Catalog.GetServiceItem)
		serviceItems.PUT("/:id", middleware.RequireRole("admin"), h.Catalog.UpdateServiceItem)
		serviceItems.DELETE("/:id", middleware.RequireRole("admin"), h.Catalog.DeleteServiceItem)
	}

	priceMatrix := protected.Group("/price-matrix")
	{
		priceMatrix.GET("", h.Catalog.ListPriceMatrix)
		priceMatrix.POST("", middleware.RequireRole("admin"), h.Catalog.CreatePriceMatrixRow)
		priceMatrix.PUT("/:id", middleware.RequireRole("admin"), h.Catalog.UpdatePriceMatrixRow)
		priceMatrix.DELETE("/:id", middleware.RequireRole("admin"), h.Catalog.DeletePriceMatrixRow)
		priceMatrix.POST("/resolve", h.Catalog.ResolvePrice)
	}

	fdItems := protected.Group("/fd-items")
	{
		fdItems.GET("", h.Catalog.ListFdItems)
		fdItems.POST("", middleware.RequireRole("admin"), h.Catalog.CreateFdItem)
		fdItems.PUT("/:id", middleware.RequireRole("admin"), h.Catalog.UpdateFdItem)
		fdItems.DELETE("/:id", middleware.RequireRole("admin"), h.Catalog.DeleteFdItem)
	}

	protected.GET("/dimensions", h.Catalog.ListDimensions)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerWorkOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	workOrders := protected.Group("/work-orders")
	{
		workOrders.GET("", h.WorkOrder.List)
		workOrders.POST("", h.WorkOrder.Create)
		workOrders.GET("/:id", h.WorkOrder.Get)
		workOrders.PUT("/:id/status", h.WorkOrder.UpdateStatus)
		workOrders.POST("/:id/confirm", h.WorkOrder.Confirm)
		workOrders.POST("/:id/cancel", h.WorkOrder.Cancel)
	}
}

func registerWashTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	washTransactions := protected.Group("/wash-transactions")
	{
		washTransactions.GET("", h.WashTransaction.List)
		washTransactions.POST("", h.WashTransaction.Create)
		washTransactions.GET("/:id", h.WashTransaction.Get)
		washTransactions.PUT("/:id/status", h.WashTransaction.UpdateStatus)
		washTransactions.POST("/:id/payment", h.WashTransaction.Pay)
	}
}

func registerShiftRoutes(protected *gin.RouterGroup, h *Handlers) {
	shifts := protected.Group("/shifts")
	{
		shifts.GET("", h.Shift.List)
		shifts.POST("/start", h.Shift.Start)
		shifts.GET("/current", h.Shift.Current)
		shifts.POST("/end", h.Shift.Close)
		shifts.POST("/:id/cancel", h.Shift.Cancel)
		shifts.GET("/:id/transactions", h.Shift.Transactions)
	}
}

func registerPOSRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	posTransactions := protected.Group("/pos-transactions")
	{
		posTransactions.GET("", h.POS.List)
		// Checkout uses idempotency middleware so a retried request replays
		// the original settlement instead of charging twice.
		posTransactions.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.POS.Checkout)
		posTransactions.GET("/daily-report", h.POS.DailyReport)
		posTransactions.GET("/:id", h.POS.Get)
		posTransactions.DELETE("/:id", h.POS.Delete)
		posTransactions.POST("/:id/qris", h.POS.CreateQRISCharge)
		posTransactions.GET("/:id/qris", h.POS.CheckQRISStatus)
		posTransactions.POST("/:id/print", h.Printer.PrintReceipt)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
