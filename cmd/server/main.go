package main

import (
	"log"
	"net/http"

	_ "swipeshop/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"swipeshop/internal/auth"
	"swipeshop/internal/cache"
	"swipeshop/internal/config"
	"swipeshop/internal/db"
	"swipeshop/internal/handler"
	"swipeshop/internal/model"
	"swipeshop/internal/repository"
	"swipeshop/internal/router"
	"swipeshop/internal/service"
)

// @title SwipeShop API
// @version 1.0
// @description Swipe-to-shop API: card-swipe shopping feed, cart and saved items, seller dashboard, JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Profile{},
		&model.Product{},
		&model.CartItem{},
		&model.SavedItem{},
		&model.SwipeInteraction{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	savedRepo := repository.NewSavedRepository(gormDB)
	interactionRepo := repository.NewInteractionRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(profileRepo, jwtService, tokenStore)
	decisionService := service.NewDecisionService(interactionRepo, cartRepo, savedRepo)
	feedService := service.NewFeedService(productRepo, decisionService, cacheClient)
	cartService := service.NewCartService(cartRepo, savedRepo, interactionRepo)
	sellerService := service.NewSellerService(profileRepo, productRepo, interactionRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	feedHandler := handler.NewFeedHandler(feedService)
	cartHandler := handler.NewCartHandler(cartService)
	sellerHandler := handler.NewSellerHandler(sellerService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		feedHandler,
		cartHandler,
		sellerHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
