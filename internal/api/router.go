package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/craftfolio/portfolio-system/docs"
	"github.com/craftfolio/portfolio-system/internal/api/handler"
	"github.com/craftfolio/portfolio-system/internal/api/middleware"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

// Deps carries the collaborators the router wires into handlers. Mongo and
// Redis are nil in memory mode; the readiness probe reports them as skipped.
type Deps struct {
	AuthService      ports.AuthService
	PortfolioService ports.PortfolioService
	ExportQueue      handler.ExportQueue
	Mongo            *mongo.Database
	Redis            *redis.Client
	JWTSecret        string
	Log              zerolog.Logger
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
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	portfolioHandler := handler.NewPortfolioHandler(deps.PortfolioService)
	sectionHandler := handler.NewSectionHandler(deps.PortfolioService)
	exportHandler := handler.NewExportHandler(deps.PortfolioService, deps.ExportQueue)
	templateHandler := handler.NewTemplateHandler()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public routes ---
	// The slug view accepts a token but never requires one: owners get their
	// private portfolios, anonymous viewers only public ones.
	e.GET("/v1/p/:slug", portfolioHandler.GetBySlug, middleware.OptionalAuth(deps.JWTSecret))
	e.GET("/v1/templates", templateHandler.List)

	// --- Protected portfolio routes ---
	g := e.Group("/v1/portfolios", middleware.Auth(deps.JWTSecret))
	g.GET("", portfolioHandler.List)
	g.POST("", portfolioHandler.Create)
	g.GET("/:id", portfolioHandler.Get)
	g.PUT("/:id", portfolioHandler.Update)
	g.DELETE("/:id", portfolioHandler.Delete)
	g.POST("/:id/sections", sectionHandler.Add)
	g.PUT("/:id/sections/order", sectionHandler.Reorder)
	g.PUT("/:id/sections/:section_id", sectionHandler.Update)
	g.DELETE("/:id/sections/:section_id", sectionHandler.Remove)
	g.POST("/:id/export", exportHandler.Export)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
