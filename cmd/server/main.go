// @title           Custom Product Designer API
// @version         1.0.0
// @description     Storefront and admin API for custom apparel ordering with design-asset placement. This API handles catalog lookups, order submission with asset uploads, operator email notifications and admin dashboard aggregation.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/devteamsyntacticsinc/custom-product-designer/docs"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/config"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/database"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/handlers"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/logger"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/mailer"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/middleware"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/services"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments inject environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize Supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		zlog.Fatal("Failed to initialize storage client", zap.Error(err))
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("Failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Warn("Failed to initialize migrator", zap.Error(err))
	} else {
		defer migrator.Close()
		if err := migrator.Run(); err != nil {
			zlog.Warn("Migration failed", zap.Error(err))
		} else {
			zlog.Info("Migrations completed successfully")
		}
	}

	orderMailer, err := mailer.New(cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize mailer", zap.Error(err))
	}

	orderService := services.NewOrderService(dbClient, storageClient, orderMailer, realtimeClient, zlog)

	catalogHandler := handlers.NewCatalogHandler(dbClient, zlog)
	ordersHandler := handlers.NewOrdersHandler(orderService, zlog)
	dashboardHandler := handlers.NewDashboardHandler(dbClient, zlog)
	authHandler := handlers.NewAuthHandler(dbClient, zlog)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")

	// Catalog lookups
	api.GET("/product-types", catalogHandler.GetProductTypes)
	api.GET("/brands", catalogHandler.GetBrands)
	api.GET("/colors", catalogHandler.GetColors)
	api.GET("/sizes", catalogHandler.GetSizes)
	api.GET("/sizes-by-type", catalogHandler.GetSizesByType)
	api.GET("/products", catalogHandler.GetProducts)

	// Order submission
	api.POST("/orders", ordersHandler.SubmitOrder)

	// Auth
	api.POST("/login", authHandler.Login)

	// Admin dashboard (role cookie required)
	api.GET("/dashboard", middleware.AdminRequired(), dashboardHandler.GetDashboard)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
