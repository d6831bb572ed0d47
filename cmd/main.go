package main

import (
	"github.com/catalogico/storefront/internal/handler"
	mid "github.com/catalogico/storefront/internal/middleware"
	"github.com/catalogico/storefront/internal/model"
	"github.com/catalogico/storefront/pkg/config"
	"github.com/catalogico/storefront/pkg/database"
	"github.com/catalogico/storefront/pkg/jwtutil"
	"github.com/catalogico/storefront/pkg/logger"
	"github.com/catalogico/storefront/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("storefront")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	})
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      appConfig.JWT.SigningKey,
		ExpirationHours: appConfig.JWT.ExpirationHours,
	})

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.Owner{},
		&model.Store{},
		&model.StoreConfig{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.ProductLink{},
		&model.Branch{},
		&model.FAQ{},
		&model.StoreFeedback{},
		&model.Tutorial{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Wire handlers to configuration
	handler.Init(appConfig, jwtUtil)

	// Session store for shopper carts
	sessionStore := mid.NewSessionStore(&appConfig.Session)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(mid.TenantMiddleware(appConfig.Tenant.RootDomain))
	e.Use(mid.SessionMiddleware(sessionStore))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Owner authentication
	e.POST("/auth/register", handler.Register)
	e.POST("/auth/login", handler.Login)

	// Public storefront routes, scoped to the resolved store
	e.GET("/", handler.Catalog, mid.RequireStore)
	e.GET("/producto/:slug", handler.ProductDetail, mid.RequireStore)
	e.GET("/sucursales", handler.PublicBranches, mid.RequireStore)
	e.GET("/faqs", handler.PublicFAQs, mid.RequireStore)
	e.POST("/feedback", handler.SubmitFeedback, mid.RequireStore)
	e.GET("/tutoriales", handler.ListTutorials)

	// Cart routes
	cartGroup := e.Group("/cart", mid.RequireStore)
	cartGroup.GET("", handler.ViewCart)
	cartGroup.GET("/count", handler.CartCount)
	cartGroup.POST("/add", handler.AddToCart)
	cartGroup.POST("/update", handler.UpdateCartItem)
	cartGroup.POST("/remove", handler.RemoveFromCart)

	// Owner API routes - JWT auth, store scoped by the token's claims
	api := e.Group("/api", mid.JWTAuthMiddleware(jwtUtil))

	api.GET("/products", handler.ListProducts)
	api.GET("/products/:id", handler.GetProduct)
	api.POST("/products", handler.CreateProduct)
	api.PUT("/products/:id", handler.UpdateProduct)
	api.DELETE("/products/:id", handler.DeleteProduct)
	api.POST("/products/:id/media", handler.UploadProductMedia)
	api.DELETE("/media/:id", handler.DeleteProductMedia)

	api.GET("/categories", handler.ListCategories)
	api.GET("/categories/:id", handler.GetCategory)
	api.POST("/categories", handler.CreateCategory)
	api.PUT("/categories/:id", handler.UpdateCategory)
	api.DELETE("/categories/:id", handler.DeleteCategory)

	api.GET("/links", handler.ListProductLinks)
	api.POST("/links", handler.CreateProductLink)
	api.PUT("/links/:id", handler.UpdateProductLink)
	api.DELETE("/links/:id", handler.DeleteProductLink)

	api.GET("/branches", handler.ListBranches)
	api.POST("/branches", handler.CreateBranch)
	api.PUT("/branches/:id", handler.UpdateBranch)
	api.DELETE("/branches/:id", handler.DeleteBranch)

	api.GET("/faqs", handler.ListFAQs)
	api.POST("/faqs", handler.CreateFAQ)
	api.PUT("/faqs/:id", handler.UpdateFAQ)
	api.DELETE("/faqs/:id", handler.DeleteFAQ)

	api.GET("/config", handler.GetStoreConfig)
	api.PUT("/config", handler.UpdateStoreConfig)

	api.GET("/feedback", handler.ListFeedback)
	api.POST("/feedback/:id/read", handler.MarkFeedbackRead)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
