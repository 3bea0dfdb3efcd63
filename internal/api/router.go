package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodcourier/marketplace/internal/api/handler"
	"github.com/foodcourier/marketplace/internal/api/middleware"
	"github.com/foodcourier/marketplace/internal/core/domain"
	"github.com/foodcourier/marketplace/internal/core/ports"
	"github.com/foodcourier/marketplace/internal/infrastructure/http/handlers"
)

// Dependencies are constructed once in main and injected here.
type Dependencies struct {
	Authenticator ports.Authenticator
	Issuer        ports.TokenIssuer
	Places        ports.PlaceService
	Orders        ports.OrderService

	// Mongo and Redis are only used by the readiness probe; nil means the
	// dependency is not configured.
	Mongo *mongo.Database
	Redis *redis.Client

	// Registry receives the HTTP metrics. Nil means the default Prometheus
	// registry, which also holds the metrics package collectors.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(requestLoggerConfig(log)))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(deps.Registry)))

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", metricsHandler(deps.Registry))

	customerHandler := handler.NewCustomerHandler(deps.Authenticator, deps.Issuer)
	placeHandler := handler.NewPlaceHandler(deps.Places)
	orderHandler := handler.NewOrderHandler(deps.Orders)

	// --- Public customer routes ---
	customer := e.Group("/customer")
	customer.POST("/login", customerHandler.Login)
	customer.POST("/register", customerHandler.Register)

	// --- Customer-scoped routes ---
	authed := customer.Group("",
		middleware.Auth(deps.Authenticator),
		middleware.RequirePrincipalKind(domain.PrincipalCustomer),
	)
	authed.GET("/me", customerHandler.Me)

	places := authed.Group("/places")
	places.POST("/all", placeHandler.All)
	places.POST("/radius", placeHandler.Radius)
	places.POST("/info/:merchant_id", placeHandler.Info)
	places.POST("/menu/:merchant_id", placeHandler.Menu)

	authed.GET("/orders", orderHandler.List)
	authed.POST("/orders", orderHandler.Create)

	return e
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "marketplace"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

func requestLoggerConfig(log zerolog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}
}
