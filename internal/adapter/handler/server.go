package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

const uploadPath = "/api/upload"

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization}
)

// NewEcho builds the echo instance with the API middleware chain and error handler
func NewEcho(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Error("http.request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("http.request", fields...)
			return nil
		},
	}))

	// Recover from panics
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("http.panic",
				zap.String("request_id", getRequestID(c)),
				zap.String("path", c.Path()),
				zap.ByteString("stack", stack),
				zap.Error(err),
			)
			return err
		},
	}))

	// CORS middleware. The upload preflight is answered by its own route.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodOptions && c.Path() == uploadPath
		},
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     corsMethods,
		AllowHeaders:     corsHeaders,
		AllowCredentials: true,
	}))

	if cfg.Server.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	}

	return e
}

// errorHandler renders every error that reaches echo through HandleError
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			err = errors.ErrRequestRejected(he.Code, fmt.Sprint(he.Message), he.Internal)
		}

		if herr := HandleError(logger, c, err); herr != nil {
			logger.Error("http.response.write_failed", zap.Error(herr))
		}
	}
}

// corsPreflight writes the CORS headers for an allowed origin and lets the route answer
func corsPreflight(allowed []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Add(echo.HeaderVary, echo.HeaderOrigin)

			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin != "" && (slices.Contains(allowed, "*") || slices.Contains(allowed, origin)) {
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				h.Set(echo.HeaderAccessControlAllowCredentials, "true")
				h.Set(echo.HeaderAccessControlAllowMethods, strings.Join(corsMethods, ","))
				h.Set(echo.HeaderAccessControlAllowHeaders, strings.Join(corsHeaders, ","))
			}
			return next(c)
		}
	}
}
