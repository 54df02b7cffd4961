package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// HTTPObserver records request metrics. *metrics.Metrics satisfies it.
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, code int, elapsed time.Duration)
}

// RequestLogger writes one zap line per request.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// RequestMetrics counts requests per route. A failed request is recorded with the
// status the error handler will write for it.
func RequestMetrics(observer HTTPObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = StatusCode(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}

// BodyValidator adapts validator/v10 to echo.Validator.
type BodyValidator struct {
	validate *validator.Validate
}

func NewBodyValidator() *BodyValidator {
	return &BodyValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *BodyValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
