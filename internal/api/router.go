package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/shoplane/commerce-api/internal/api/handler"
	"github.com/shoplane/commerce-api/internal/api/middleware"
	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/service"
	"github.com/shoplane/commerce-api/internal/infrastructure/config"
	"github.com/shoplane/commerce-api/internal/infrastructure/crypto"
	"github.com/shoplane/commerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/shoplane/commerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Preflight requests get a 204 before authentication ever runs.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("commerce"))
	e.Use(middleware.Session(codec))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	priceCache := redisdb.NewPriceCache(rdb, log)
	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)

	authService := service.NewAuthService(userRepo, hasher, codec)
	userService := service.NewUserService(userRepo, hasher, log)
	productService := service.NewProductService(productRepo, categoryRepo, priceCache, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, priceCache, log)
	orderService := service.NewOrderService(orderRepo, cartRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Create)
	e.GET("/users/me", userHandler.Me)
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.UpdateProfile)
	e.PUT("/users/:id/password", userHandler.UpdatePassword)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Catalog ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.GET("/products/reference/:reference", productHandler.GetByReference)
	e.POST("/products", productHandler.Create)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)

	e.GET("/categories", categoryHandler.List)
	e.POST("/categories", categoryHandler.Create)
	e.PUT("/categories/:id", categoryHandler.Update)
	e.DELETE("/categories/:id", categoryHandler.Delete)

	// --- Cart ---
	e.GET("/cart", cartHandler.Get)
	e.POST("/cart/items", cartHandler.AddItem)
	e.PATCH("/cart/items", cartHandler.UpdateItem)
	e.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)
	e.DELETE("/cart", cartHandler.Clear)

	// --- Orders ---
	e.GET("/orders", orderHandler.List)
	e.POST("/orders/checkout", orderHandler.Checkout)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
