package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/marketsquare/vendor-portal/internal/api/handler"
	"github.com/marketsquare/vendor-portal/internal/api/middleware"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Sessions   handler.SessionStore
	AuthAPI    ports.AuthAPI
	Vendors    ports.VendorService
	Dispatcher handler.InquiryDispatcher
	Mongo      *mongo.Database
	Redis      *redis.Client
	Log        zerolog.Logger
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

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.AuthAPI)
	dashboardHandler := handler.NewDashboardHandler(deps.Sessions, deps.AuthAPI)
	vendorHandler := handler.NewVendorHandler(deps.Vendors, deps.Dispatcher)

	// --- Public discovery routes ---
	e.GET("/vendors", vendorHandler.List)
	e.GET("/vendors/:id", vendorHandler.Get)
	e.POST("/vendors/:id/inquiries", vendorHandler.CreateInquiry)

	// --- Session routes ---
	e.POST("/signin", sessionHandler.SignIn)
	e.POST("/signout", sessionHandler.SignOut)
	e.GET("/session", sessionHandler.Current)

	// --- Guarded dashboard area ---
	dashboard := e.Group("/dashboard", middleware.Guard(deps.Sessions))
	dashboard.GET("", dashboardHandler.Me)
	dashboard.PATCH("/profile", dashboardHandler.UpdateProfile)

	vendorArea := e.Group("/dashboard/listings", middleware.Guard(deps.Sessions, domain.RoleVendor))
	vendorArea.GET("", dashboardHandler.VendorArea)

	customerArea := e.Group("/dashboard/saved", middleware.Guard(deps.Sessions, domain.RoleCustomer))
	customerArea.GET("", dashboardHandler.CustomerArea)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
