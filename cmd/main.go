package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"bodegamart/internal/caching"
	"bodegamart/internal/config"
	"bodegamart/internal/handlers"
	"bodegamart/internal/jobs"
	"bodegamart/internal/jobs/background"
	"bodegamart/internal/middleware"
	"bodegamart/internal/repositories"
	"bodegamart/internal/services"
	"bodegamart/pkg/database"
)

const version = "1.0.0"

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Token validation: either a JWKS URL from the hosted auth platform or a
	// shared HMAC secret
	jwtSecret := os.Getenv("JWT_SECRET")
	jwksURL := os.Getenv("AUTH_JWKS_URL")
	if jwtSecret == "" && jwksURL == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret: %s", jwtSecret)
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	minioSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	// Automation configuration: TOML file with env overrides
	automationCfg := config.DefaultAutomationConfig()
	if cfgPath := os.Getenv("AUTOMATION_CONFIG"); cfgPath != "" {
		automationCfg, err = config.LoadAutomationConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load automation config: %v", err)
		}
	}
	if webhookURL := os.Getenv("WEBHOOK_URL"); webhookURL != "" {
		automationCfg.Webhook.URL = webhookURL
	}
	if webhookSecret := os.Getenv("WEBHOOK_SECRET"); webhookSecret != "" {
		automationCfg.Webhook.Secret = webhookSecret
	}

	// Create repositories
	profileRepo := repositories.NewProfileRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	saleRepo := repositories.NewSaleRepository(pool)
	closingRepo := repositories.NewDayClosingRepository(pool)
	replenishmentRepo := repositories.NewReplenishmentRepository(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create services
	webhookSvc := services.NewWebhookService(automationCfg.Webhook)
	supplierSvc := services.NewSupplierService(supplierRepo, profileRepo)
	productSvc := services.NewProductService(productRepo, cacheSvc)
	saleSvc := services.NewSaleService(saleRepo, productRepo, cacheSvc)
	closingSvc := services.NewClosingService(closingRepo, saleRepo, minioSvc, automationCfg.Export)
	replenishmentSvc := services.NewReplenishmentService(replenishmentRepo, productRepo, supplierRepo, profileRepo, cacheSvc, webhookSvc)
	alertSvc := services.NewAlertService(productRepo)

	// Create handlers
	profileHandlers := handlers.NewProfileHandlers(profileRepo)
	supplierHandlers := handlers.NewSupplierHandlers(supplierSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	saleHandlers := handlers.NewSaleHandlers(saleSvc)
	closingHandlers := handlers.NewClosingHandlers(closingSvc)
	replenishmentHandlers := handlers.NewReplenishmentHandlers(replenishmentSvc)
	alertHandlers := handlers.NewAlertHandlers(alertSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, minioSvc)

	// JWT middleware configuration
	tokenKeyfunc, err := middleware.NewTokenKeyfunc(jwtSecret, jwksURL)
	if err != nil {
		log.Fatalf("Failed to configure token validation: %v", err)
	}
	jwtConfig := echojwt.Config{
		KeyFunc: tokenKeyfunc,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(401, "Invalid token")
		},
	}

	profileMiddleware := middleware.NewProfileMiddleware(profileRepo)

	// Background jobs
	stockAlertSvc := jobs.NewStockAlertService(productRepo)
	scheduler := background.NewJobScheduler(stockAlertSvc, cacheSvc, profileRepo)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	// API routes (require JWT)
	v1 := e.Group("/v1")
	v1.Use(echojwt.WithConfig(jwtConfig))
	v1.Use(middleware.Identity())

	// Profile routes operate on the account, not a single profile
	v1.GET("/profiles", profileHandlers.ListProfiles)
	v1.POST("/profiles", profileHandlers.CreateProfile)
	v1.GET("/profiles/:id", profileHandlers.GetProfile)
	v1.DELETE("/profiles/:id", profileHandlers.DeleteProfile)

	// Profile-scoped routes (require X-Profile-ID)
	scoped := v1.Group("")
	scoped.Use(profileMiddleware.Require())

	scoped.GET("/suppliers", supplierHandlers.ListSuppliers)
	scoped.POST("/suppliers", supplierHandlers.CreateSupplier)
	scoped.GET("/suppliers/:id", supplierHandlers.GetSupplier)
	scoped.PUT("/suppliers/:id", supplierHandlers.UpdateSupplier)
	scoped.DELETE("/suppliers/:id", supplierHandlers.DeleteSupplier)

	scoped.GET("/products", productHandlers.ListProducts)
	scoped.POST("/products", productHandlers.CreateProduct)
	scoped.GET("/products/:id", productHandlers.GetProduct)
	scoped.PUT("/products/:id", productHandlers.UpdateProduct)
	scoped.DELETE("/products/:id", productHandlers.DeleteProduct)

	scoped.GET("/sales", saleHandlers.ListSales)
	scoped.POST("/sales", saleHandlers.RecordSales)

	scoped.GET("/closings", closingHandlers.ListClosings)
	scoped.POST("/closings", closingHandlers.RecordClosing)
	scoped.POST("/closings/:id/export", closingHandlers.ExportClosing)

	scoped.GET("/replenishments", replenishmentHandlers.ListReplenishments)
	scoped.POST("/replenishments", replenishmentHandlers.CreateReplenishment)
	scoped.POST("/replenishments/batch", replenishmentHandlers.CreateBatchReplenishment)
	scoped.POST("/replenishments/:id/approve", replenishmentHandlers.ApproveReplenishment)
	scoped.POST("/replenishments/:id/reject", replenishmentHandlers.RejectReplenishment)
	scoped.POST("/replenishments/:id/complete", replenishmentHandlers.CompleteReplenishment)
	scoped.DELETE("/replenishments/:id", replenishmentHandlers.DeleteReplenishment)

	scoped.GET("/alerts", alertHandlers.ListAlerts)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Bodegamart server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
