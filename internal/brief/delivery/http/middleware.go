package http

import (
	"net/http"

	"golang-daily-brief/internal/brief/service"
	"golang-daily-brief/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// CronAuth rejects requests that carry neither the bearer token nor the secret query parameter.
// The response does not say which check failed.
func CronAuth(auth service.Authenticator, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !auth.Authorize(req.Header.Get(echo.HeaderAuthorization), c.QueryParam("secret")) {
				log.WarnContext(req.Context(), "Unauthorized cron request",
					logger.StringField("path", req.URL.Path),
					logger.StringField("remote_ip", c.RealIP()),
				)
				return c.String(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}

// RequestContext copies the echo request id into the request context so the *Context log
// methods attach it. It must run after the RequestID middleware.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
			}
			return next(c)
		}
	}
}

// RequestLogger logs every finished request through the application logger.
// Only the path is logged; the query may carry the cron secret.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURIPath:   true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				logger.StringField("request_id", v.RequestID),
				logger.StringField("method", v.Method),
				logger.StringField("path", v.URIPath),
				logger.IntField("status", v.Status),
				logger.Field("latency", v.Latency),
			}
			if v.Error != nil {
				log.Error("Request failed", append(fields, logger.ErrorField(v.Error))...)
				return nil
			}
			log.Info("Request handled", fields...)
			return nil
		},
	})
}
