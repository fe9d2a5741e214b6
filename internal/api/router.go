package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/catalog-api/internal/api/handler"
	"github.com/storefront/catalog-api/internal/api/middleware"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// Deps carries everything the router needs to wire routes.
type Deps struct {
	Customers ports.CustomerService
	Products  ports.ProductService
	Tokens    ports.TokenService

	Mongo  *mongo.Database
	Redis  *redis.Client
	Blobs  *minio.Client
	Bucket string

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	authGate := middleware.Auth(deps.Tokens)
	adminGate := middleware.AdminOnly()

	// --- Customer routes ---
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	customers := e.Group("/api/customers")
	customers.POST("/register", customerHandler.Register)
	customers.POST("/login", customerHandler.Login)
	customers.GET("/profile", customerHandler.GetProfile, authGate)
	customers.PUT("/profile/:id", customerHandler.Update, authGate)
	customers.DELETE("/profile/:id", customerHandler.Delete, authGate)
	customers.GET("/customer", customerHandler.ListAll, authGate, adminGate)

	// --- Product routes ---
	productHandler := handler.NewProductHandler(deps.Products)
	products := e.Group("/api/products")
	products.GET("", productHandler.GetAll)
	products.GET("/:id", productHandler.GetByID)
	products.POST("", productHandler.Create, authGate)
	products.PUT("/:id", productHandler.Update, authGate)
	products.DELETE("/:id", productHandler.Remove, authGate)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis, deps.Blobs, deps.Bucket)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
