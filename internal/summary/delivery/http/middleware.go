package http

import (
	"net/http"

	"golang-stock-summary/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORS allows any origin and method. Requested headers are echoed back, so any header is allowed.
func CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
	})
}

// RequestLogger logs every request with its status and latency.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			if v.Error != nil {
				log.ErrorContext(ctx, "HTTP request failed",
					logger.StringField("method", v.Method),
					logger.StringField("uri", v.URI),
					logger.IntField("status", v.Status),
					logger.DurationField("latency", v.Latency),
					logger.StringField("remote_ip", v.RemoteIP),
					logger.ErrorField(v.Error),
				)
				return nil
			}
			log.InfoContext(ctx, "HTTP request",
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.DurationField("latency", v.Latency),
				logger.StringField("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}

// Setup applies the shared middleware stack to e.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLogger(log))
	e.Use(CORS())
}
