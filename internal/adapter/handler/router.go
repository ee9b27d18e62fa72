package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	gatherer       prometheus.Gatherer
}

// NewRouter creates a new router with all handlers. A nil gatherer disables /metrics.
func NewRouter(cfg *config.Config, meetingHandler *Meeting, gatherer prometheus.Gatherer) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		gatherer:       gatherer,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	api := e.Group("/api")
	rt.setupMeetingRoutes(api)

	if rt.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// setupMeetingRoutes configures upload and health routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	if rt.meetingHandler == nil {
		g.POST("/upload", rt.notImplemented)
		g.GET("/health", rt.notImplemented)
		return
	}

	g.POST("/upload", rt.meetingHandler.Upload)
	g.OPTIONS("/upload", rt.meetingHandler.UploadOptions, corsPreflight(rt.allowedOrigins()))
	g.GET("/health", rt.meetingHandler.Health)
}

func (rt *Router) allowedOrigins() []string {
	if rt.cfg == nil {
		return nil
	}
	return rt.cfg.Server.AllowedOrigins
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}
