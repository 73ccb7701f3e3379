package main

import (
	"log"
	"time"

	"github.com/BackspaceAditya/JustEat/internal/config"
	"github.com/BackspaceAditya/JustEat/internal/database"
	"github.com/BackspaceAditya/JustEat/internal/handlers"
	"github.com/BackspaceAditya/JustEat/internal/middleware"
	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/redis"
	"github.com/BackspaceAditya/JustEat/internal/repository"
	"github.com/BackspaceAditya/JustEat/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories and services
	store := repository.NewStore(db)
	userService := services.NewUserService(store)
	catalogService := services.NewCatalogService(store)
	cartService := services.NewCartService(store, redisClient, cacheTTL)
	orderService := services.NewOrderService(store, redisClient)
	analyticsService := services.NewAnalyticsService(store, redisClient, cfg.MostlyOrderedThreshold, cacheTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret, time.Duration(cfg.SessionTimeout)*time.Second)
	menuHandler := handlers.NewMenuHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/restaurants/:id/menu", menuHandler.PublicMenu)
		api.GET("/restaurants/:id/mostly-ordered", analyticsHandler.MostlyOrdered)

		api.PUT("/profile", middleware.Authenticate(cfg.JWTSecret), authHandler.UpdateProfile)
	}

	customer := api.Group("")
	customer.Use(middleware.Authenticate(cfg.JWTSecret), middleware.RequireRole(string(models.RoleCustomer)))
	{
		customer.POST("/cart/items", cartHandler.AddItem)
		customer.GET("/cart", cartHandler.GetCart)
		customer.GET("/cart/count", cartHandler.GetCount)
		customer.PUT("/cart/items/:menu_item_id", cartHandler.UpdateLine)
		customer.DELETE("/cart/items/:menu_item_id", cartHandler.RemoveLine)
		customer.DELETE("/cart", cartHandler.Clear)

		customer.POST("/orders", orderHandler.PlaceOrder)
		customer.GET("/orders", orderHandler.ListOrders)
		customer.GET("/orders/:id", orderHandler.GetOrder)
		customer.POST("/orders/:id/reorder", orderHandler.Reorder)
	}

	owner := api.Group("/restaurant")
	owner.Use(middleware.Authenticate(cfg.JWTSecret), middleware.RequireRole(string(models.RoleRestaurantOwner)))
	{
		owner.GET("", menuHandler.MyRestaurants)

		owner.POST("/menu", menuHandler.CreateItem)
		owner.PUT("/menu/:id", menuHandler.UpdateItem)
		owner.DELETE("/menu/:id", menuHandler.DeleteItem)
		owner.PATCH("/menu/:id/availability", menuHandler.SetAvailability)
		owner.PATCH("/menu/:id/special", menuHandler.SetSpecial)
		owner.PATCH("/menu/:id/deal-of-day", menuHandler.SetDealOfDay)

		owner.GET("/:id/menu", menuHandler.ListForOwner)
		owner.GET("/:id/orders", orderHandler.ListRestaurantOrders)
		owner.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		owner.GET("/:id/analytics", analyticsHandler.RestaurantStats)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
