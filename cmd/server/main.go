package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	diningapp "github.com/menuboard/backend/internal/application/dining"
	"github.com/menuboard/backend/internal/application/importer"
	"github.com/menuboard/backend/internal/infrastructure/config"
	"github.com/menuboard/backend/internal/infrastructure/logger"
	"github.com/menuboard/backend/internal/infrastructure/persistence"
	"github.com/menuboard/backend/internal/infrastructure/reporter"
	"github.com/menuboard/backend/internal/interfaces/http/handler"
	"github.com/menuboard/backend/internal/interfaces/http/middleware"
	"github.com/menuboard/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Menuboard Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	restaurantRepo := persistence.NewGormRestaurantRepository(db.DB)
	menuRepo := persistence.NewGormMenuRepository(db.DB)
	menuItemRepo := persistence.NewGormMenuItemRepository(db.DB)
	placementRepo := persistence.NewGormPlacementRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Initialize application services
	restaurantService := diningapp.NewRestaurantService(restaurantRepo)
	menuService := diningapp.NewMenuService(menuRepo, restaurantRepo, placementRepo)
	menuItemService := diningapp.NewMenuItemService(menuItemRepo, restaurantRepo)
	importService := importer.NewRestaurantImportService(txManager, log)

	// Unexpected-error reporter for failure paths outside the request cycle.
	// Runs log-only until an external adapter is plugged in.
	errReporter := reporter.New(log)

	// Initialize HTTP handlers
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	menuHandler := handler.NewMenuHandler(menuService)
	menuItemHandler := handler.NewMenuItemHandler(menuItemService)
	importHandler := handler.NewImportHandler(importService, errReporter)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Restaurant routes, with menus and placements nested beneath them
	restaurantRoutes := router.NewDomainGroup("restaurants", "/restaurants")
	restaurantRoutes.POST("", restaurantHandler.Create)
	restaurantRoutes.GET("", restaurantHandler.List)
	restaurantRoutes.GET("/:id", restaurantHandler.GetByID)
	restaurantRoutes.PUT("/:id", restaurantHandler.Update)
	restaurantRoutes.DELETE("/:id", restaurantHandler.Delete)

	// Menu routes scoped to a restaurant
	restaurantRoutes.POST("/:id/menus", menuHandler.Create)
	restaurantRoutes.GET("/:id/menus", menuHandler.List)
	restaurantRoutes.GET("/:id/menus/:menu_id", menuHandler.GetByID)
	restaurantRoutes.PUT("/:id/menus/:menu_id", menuHandler.Update)
	restaurantRoutes.DELETE("/:id/menus/:menu_id", menuHandler.Delete)

	// Placement routes on a menu
	restaurantRoutes.GET("/:id/menus/:menu_id/items", menuHandler.ListPlacements)
	restaurantRoutes.PUT("/:id/menus/:menu_id/items/:item_id", menuHandler.UpdatePlacementPrice)

	// Distinct items placed anywhere on the restaurant's menus
	restaurantRoutes.GET("/:id/menu_items", menuItemHandler.ListForRestaurant)

	// Globally shared menu item routes
	menuItemRoutes := router.NewDomainGroup("menu_items", "/menu_items")
	menuItemRoutes.POST("", menuItemHandler.Create)
	menuItemRoutes.GET("", menuItemHandler.List)
	menuItemRoutes.GET("/:id", menuItemHandler.GetByID)
	menuItemRoutes.PUT("/:id", menuItemHandler.Update)
	menuItemRoutes.DELETE("/:id", menuItemHandler.Delete)

	// Bulk import routes
	importRoutes := router.NewDomainGroup("imports", "/imports")
	importRoutes.POST("/restaurants_json", importHandler.ImportRestaurants)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(restaurantRoutes).
		Register(menuItemRoutes).
		Register(importRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
