package routes

import (
	"shopadmin/internal/adapters/http/handlers"
	"shopadmin/internal/adapters/http/middleware"
	"shopadmin/internal/adapters/persistence/repositories"
	"shopadmin/internal/config"
	"shopadmin/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo, cfg)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, userHandler,
		productHandler, orderHandler, dashboardHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
	dashboardHandler *handlers.DashboardHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Product routes (authenticated; mutations require staff or admin)
	productRoutes := router.Group("/products")
	productRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProductRoutes(productRoutes, productHandler)

	// Order routes (authenticated; mutations require staff or admin)
	orderRoutes := router.Group("/orders")
	orderRoutes.Use(middleware.AuthMiddleware(cfg))
	setupOrderRoutes(orderRoutes, orderHandler)

	// User management routes (Admin only)
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	setupUserRoutes(userRoutes, userHandler)

	// Dashboard routes
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDashboardRoutes(dashboardRoutes, dashboardHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/sync-admin", middleware.AuthRateLimiter(), handler.SyncAdmin)
	router.Post("/refresh", handler.Refresh)
	router.Post("/logout", handler.Logout)
	router.Post("/forgot-password", middleware.AuthRateLimiter(), handler.ForgotPassword)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Get("/sessions", middleware.AuthMiddleware(cfg), handler.Sessions)
	router.Post("/reset-password", middleware.AuthMiddleware(cfg), handler.ResetPassword)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
	router.Post("/make-staff", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.MakeStaff)
}

// setupProductRoutes configures product routes
func setupProductRoutes(router fiber.Router, handler *handlers.ProductHandler) {
	router.Get("/", handler.List)
	router.Get("/low-stock", handler.LowStock)
	router.Get("/:id", handler.Get)
	router.Post("/", middleware.StaffOrAdmin(), handler.Create)
	router.Put("/:id", middleware.StaffOrAdmin(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupOrderRoutes configures order routes
func setupOrderRoutes(router fiber.Router, handler *handlers.OrderHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/", middleware.StaffOrAdmin(), handler.Create)
	router.Patch("/:id/status", middleware.StaffOrAdmin(), handler.UpdateStatus)
	router.Post("/:id/cancel", middleware.StaffOrAdmin(), handler.Cancel)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/:id/activate", handler.Activate)
	router.Post("/:id/deactivate", handler.Deactivate)
}

// setupDashboardRoutes configures dashboard routes
func setupDashboardRoutes(router fiber.Router, handler *handlers.DashboardHandler) {
	router.Get("/summary", handler.Summary)
}
