// Package router adapts an echo instance to the net/http handler contract
// used by controllers. Path parameters captured by echo are copied onto the
// request so handlers read them with http.Request.PathValue.
package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/JaimeStill/scaffold/pkg/middleware"
)

// Config controls request handling shared by every route.
type Config struct {
	// BodyLimit caps request bodies in bytes. Zero disables the limit.
	BodyLimit int64
	// MethodField is the form field carrying an override verb for POST requests.
	MethodField string
	CORS        middleware.CORSConfig
}

// Router is an echo-backed implementation of routes.Router.
type Router struct {
	echo   *echo.Echo
	logger *slog.Logger
}

// New creates a Router with body limiting, method override, request IDs,
// panic recovery, request logging, and optional CORS installed.
func New(cfg Config, logger *slog.Logger) *Router {
	logger = logger.With("system", "router")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(echomw.RemoveTrailingSlash())
	if cfg.BodyLimit > 0 {
		e.Pre(echomw.BodyLimit(fmt.Sprintf("%dB", cfg.BodyLimit)))
	}
	if cfg.MethodField != "" {
		e.Pre(echomw.MethodOverrideWithConfig(echomw.MethodOverrideConfig{
			Getter: echomw.MethodFromForm(cfg.MethodField),
		}))
	}

	e.Use(echomw.RequestID())
	e.Use(echo.WrapMiddleware(middleware.Logger(logger)))
	e.Use(echomw.Recover())

	if cfg.CORS.Enabled {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.CORS.Origins,
			AllowMethods:     cfg.CORS.AllowedMethods,
			AllowHeaders:     cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		}))
	}

	return &Router{echo: e, logger: logger}
}

// Handle registers h for method and pattern. Patterns use ":name" segments.
// A trailing slash is dropped because requests are normalized the same way.
// Echo resolves duplicate registrations by keeping the latest.
func (r *Router) Handle(method, pattern string, h http.Handler) {
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	r.echo.Add(method, pattern, func(c echo.Context) error {
		req := c.Request()
		names := c.ParamNames()
		values := c.ParamValues()
		for i, name := range names {
			if i < len(values) {
				req.SetPathValue(name, values[i])
			}
		}
		h.ServeHTTP(c.Response(), req)
		return nil
	})

	r.logger.Debug("route registered", "method", method, "pattern", pattern)
}

// ServeHTTP dispatches to echo.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.echo.ServeHTTP(w, req)
}
