package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecom-admin-backend/internal/cache"
	"ecom-admin-backend/internal/config"
	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/handlers"
	"ecom-admin-backend/internal/media"
	"ecom-admin-backend/internal/middleware"
	"ecom-admin-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	mediaClient, err := media.NewClient(cfg.CloudinaryURL, cfg.MediaRootFolder)
	if err != nil {
		log.Fatalf("Failed to initialize media client: %v", err)
	}

	productCache := cache.New(cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword), cfg.ProductCacheTTL)

	imageService := services.NewImageService(mediaClient, media.UploadConfig{
		MaxSizeMB:      cfg.MaxImageSizeMB,
		AllowedFormats: media.DefaultFormats,
	})
	storeService := services.NewStoreService(dbClient)
	billboardService := services.NewBillboardService(dbClient, imageService)
	catalogService := services.NewCatalogService(dbClient)
	productService := services.NewProductService(dbClient, imageService)
	fulfillmentService := services.NewFulfillmentService(dbClient)

	storesHandler := handlers.NewStoresHandler(storeService)
	billboardsHandler := handlers.NewBillboardsHandler(billboardService)
	categoriesHandler := handlers.NewCategoriesHandler(catalogService)
	sizesHandler := handlers.NewSizesHandler(catalogService)
	colorsHandler := handlers.NewColorsHandler(catalogService)
	productsHandler := handlers.NewProductsHandler(productService, productCache)
	ordersHandler := handlers.NewOrdersHandler(fulfillmentService)
	webhookHandler := handlers.NewWebhookHandler(fulfillmentService, cfg.PaymentWebhookSecret)

	router := gin.Default()

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api/v1")
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))

	// Store management
	authed.POST("/stores", storesHandler.CreateStore)
	authed.GET("/stores", storesHandler.ListStores)
	api.GET("/stores/:store_id", storesHandler.GetStore)
	authed.PATCH("/stores/:store_id", storesHandler.UpdateStore)
	authed.DELETE("/stores/:store_id", storesHandler.DeleteStore)

	// Billboards
	authed.POST("/stores/:store_id/billboards", billboardsHandler.CreateBillboard)
	api.GET("/stores/:store_id/billboards", billboardsHandler.ListBillboards)
	api.GET("/stores/:store_id/billboards/:billboard_id", billboardsHandler.GetBillboard)
	authed.PATCH("/stores/:store_id/billboards/:billboard_id", billboardsHandler.UpdateBillboard)
	authed.DELETE("/stores/:store_id/billboards/:billboard_id", billboardsHandler.DeleteBillboard)

	// Categories
	authed.POST("/stores/:store_id/categories", categoriesHandler.CreateCategory)
	api.GET("/stores/:store_id/categories", categoriesHandler.ListCategories)
	api.GET("/stores/:store_id/categories/:category_id", categoriesHandler.GetCategory)
	authed.PATCH("/stores/:store_id/categories/:category_id", categoriesHandler.UpdateCategory)
	authed.DELETE("/stores/:store_id/categories/:category_id", categoriesHandler.DeleteCategory)

	// Sizes
	authed.POST("/stores/:store_id/sizes", sizesHandler.CreateSize)
	api.GET("/stores/:store_id/sizes", sizesHandler.ListSizes)
	api.GET("/stores/:store_id/sizes/:size_id", sizesHandler.GetSize)
	authed.PATCH("/stores/:store_id/sizes/:size_id", sizesHandler.UpdateSize)
	authed.DELETE("/stores/:store_id/sizes/:size_id", sizesHandler.DeleteSize)

	// Colors
	authed.POST("/stores/:store_id/colors", colorsHandler.CreateColor)
	api.GET("/stores/:store_id/colors", colorsHandler.ListColors)
	api.GET("/stores/:store_id/colors/:color_id", colorsHandler.GetColor)
	authed.PATCH("/stores/:store_id/colors/:color_id", colorsHandler.UpdateColor)
	authed.DELETE("/stores/:store_id/colors/:color_id", colorsHandler.DeleteColor)

	// Products
	authed.POST("/stores/:store_id/products", productsHandler.CreateProduct)
	api.GET("/stores/:store_id/products", productsHandler.ListProducts)
	api.GET("/stores/:store_id/products/:product_id", productsHandler.GetProduct)
	authed.PATCH("/stores/:store_id/products/:product_id", productsHandler.UpdateProduct)
	authed.DELETE("/stores/:store_id/products/:product_id", productsHandler.DeleteProduct)

	// Orders (read-only)
	api.GET("/stores/:store_id/orders", ordersHandler.ListOrders)
	api.GET("/stores/:store_id/orders/:order_id", ordersHandler.GetOrder)

	// Payment webhook (no auth, uses HMAC)
	router.POST("/api/v1/webhooks/payment", webhookHandler.HandlePaymentWebhook)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
