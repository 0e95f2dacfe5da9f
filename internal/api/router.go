package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickshop/store-api/internal/api/handler"
	"github.com/quickshop/store-api/internal/api/middleware"
	"github.com/quickshop/store-api/internal/core/domain"
	"github.com/quickshop/store-api/internal/core/service"
	mongodb "github.com/quickshop/store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quickshop/store-api/internal/infrastructure/db/redis"
	"github.com/quickshop/store-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, limiter, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, cfg.BcryptCost, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)

	auth := middleware.Auth(tokenService)

	// --- Auth routes (no token required) ---
	e.POST("/token", authHandler.Token)
	e.POST("/users", authHandler.Register)

	// --- User routes ---
	e.GET("/users", userHandler.List, auth, middleware.RequireScope(domain.ScopeUsersAdmin))
	e.GET("/users/me", userHandler.GetMe, auth, middleware.RequireScope(domain.ScopeUsersSelf))
	e.DELETE("/users/me", userHandler.DeleteMe, auth, middleware.RequireScope(domain.ScopeUsersSelf))
	e.GET("/users/:username", userHandler.Get, auth, middleware.RequireScope(domain.ScopeUsersAdmin))
	e.PATCH("/users/:username", userHandler.Patch, auth, middleware.RequireScope(domain.ScopeUsersSelf))
	e.DELETE("/users/:username", userHandler.Delete, auth, middleware.RequireScope(domain.ScopeUsersAdmin))

	// --- Product routes (reads public, writes admin) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, auth, middleware.RequireScope(domain.ScopeProductsAdmin))
	e.PATCH("/products/:id", productHandler.Patch, auth, middleware.RequireScope(domain.ScopeProductsAdmin))
	e.PUT("/products/:id", productHandler.Put, auth, middleware.RequireScope(domain.ScopeProductsAdmin))
	e.DELETE("/products/:id", productHandler.Delete, auth, middleware.RequireScope(domain.ScopeProductsAdmin))

	// --- Cart routes (owner-only; ownership enforced in the service) ---
	carts := e.Group("/carts/:owner", auth, middleware.RequireScope(domain.ScopeCartsSelf))
	carts.POST("", cartHandler.Create)
	carts.GET("/:cart_id", cartHandler.Get)
	carts.POST("/:cart_id/items", cartHandler.AddItem)
	carts.DELETE("/:cart_id/items/:product_id", cartHandler.RemoveItem)
	carts.DELETE("/:cart_id/items", cartHandler.ClearItems)
	carts.DELETE("/:cart_id", cartHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
