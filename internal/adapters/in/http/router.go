// Package http is the REST adapter: an echo server exposing parcels, their history
// and the actor, product and zone catalogs. Requests are authenticated with bearer
// JWTs, routed through a casbin role policy and checked against the embedded
// OpenAPI contract before they reach a handler.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Server        ServerInterface
	Authenticator *Authenticator
	Policy        *RoutePolicy
	Observer      HTTPObserver
	Gatherer      prometheus.Gatherer
	Logger        *zap.Logger
}

// NewRouter builds the echo instance with the API routes and the public
// /health, /metrics and /swagger endpoints.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadContract(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc()

	logger := cfg.Logger.Named("http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Validator = NewBodyValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	if cfg.Observer != nil {
		e.Use(RequestMetrics(cfg.Observer))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, cfg.Server,
		cfg.Authenticator.Middleware(),
		cfg.Policy.Middleware(),
		validate,
	)

	return e, nil
}
