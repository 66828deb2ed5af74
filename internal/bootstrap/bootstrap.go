// Package bootstrap assembles the application in order: infrastructure,
// models, controller discovery, and finally route binding and listening.
package bootstrap

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/JaimeStill/scaffold/internal/config"
	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/internal/database"
	"github.com/JaimeStill/scaffold/internal/infrastructure"
	"github.com/JaimeStill/scaffold/internal/models"
	"github.com/JaimeStill/scaffold/internal/pages"
	"github.com/JaimeStill/scaffold/internal/router"
	"github.com/JaimeStill/scaffold/internal/routes"
	"github.com/JaimeStill/scaffold/internal/server"
	"github.com/JaimeStill/scaffold/pkg/openapi"
	pkgroutes "github.com/JaimeStill/scaffold/pkg/routes"
	"github.com/JaimeStill/scaffold/pkg/web"
	"github.com/JaimeStill/scaffold/web/app"
)

// Option customizes construction of an Application.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	models      *models.Models
	controllers fs.FS
	views       fs.FS
}

// WithLogger replaces the logger built from configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithModels injects models instead of building them over the database.
func WithModels(m *models.Models) Option {
	return func(o *options) { o.models = m }
}

// WithControllersFS replaces the controller manifest tree.
func WithControllersFS(fsys fs.FS) Option {
	return func(o *options) { o.controllers = fsys }
}

// WithViewsFS replaces the layout and view templates.
func WithViewsFS(fsys fs.FS) Option {
	return func(o *options) { o.views = fsys }
}

// Application is a constructed service. Construction discovers controllers
// but opens no connections and binds no routes.
type Application struct {
	cfg      *config.Config
	infra    *infrastructure.Infrastructure
	models   *models.Models
	registry *controllers.Registry
	views    *web.Views
	viewsFS  fs.FS
	router   *router.Router
	bindings []routes.Binding
	routes   []routes.Binding
	server   server.System
}

// New builds infrastructure, then models, then discovers controllers with
// the models injected.
func New(cfg *config.Config, opts ...Option) (*Application, error) {
	o := options{
		controllers: app.Controllers(),
		views:       app.Views(),
	}
	if cfg.App.ControllersDir != "" {
		o.controllers = os.DirFS(cfg.App.ControllersDir)
	}
	if cfg.App.ViewsDir != "" {
		o.views = os.DirFS(cfg.App.ViewsDir)
	}
	for _, opt := range opts {
		opt(&o)
	}

	infra, err := infrastructure.New(cfg, o.logger)
	if err != nil {
		return nil, err
	}

	m := o.models
	if m == nil {
		m = models.New(infra.Database.Connection(), infra.Logger, cfg.Pagination)
	}

	views := web.NewViews()

	registry, err := controllers.Discover(o.controllers, Catalog(cfg, views, infra.Logger), m, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("discover controllers: %w", err)
	}

	infra.Logger.Info(
		"application initialized",
		"controllers", registry.Names(),
		"version", cfg.Version,
	)

	return &Application{
		cfg:      cfg,
		infra:    infra,
		models:   m,
		registry: registry,
		views:    views,
		viewsFS:  o.views,
	}, nil
}

// Controllers returns the discovered controller registry.
func (a *Application) Controllers() *controllers.Registry {
	return a.registry
}

// Models returns the models handle injected into controllers.
func (a *Application) Models() *models.Models {
	return a.models
}

// Logger returns the application logger.
func (a *Application) Logger() *slog.Logger {
	return a.infra.Logger
}

// Bindings returns the controller routes bound by Prepare in registration order.
func (a *Application) Bindings() []routes.Binding {
	return a.bindings
}

// Routes returns the full route table Prepare installed: the controller
// bindings followed by the health, readiness and OpenAPI routes.
func (a *Application) Routes() []routes.Binding {
	return a.routes
}

// Prepare configures views, builds the router with request parsing
// installed, and binds every route. It runs at most once.
func (a *Application) Prepare() error {
	if a.router != nil {
		return nil
	}

	if err := a.views.Configure(a.viewsFS, app.ViewsConfig(a.cfg.App.BasePath, pages.Views...)); err != nil {
		return fmt.Errorf("configure views: %w", err)
	}

	r := router.New(router.Config{
		BodyLimit:   a.cfg.App.MaxBodySizeBytes(),
		MethodField: a.cfg.App.MethodField,
		CORS:        a.cfg.CORS,
	}, a.infra.Logger)

	a.bindings = routes.NewBinder(a.infra.Logger).Bind(r, a.registry)

	sys := systemRoutes(a.infra.Lifecycle)
	pkgroutes.Register(r, sys)

	table := slices.Clone(a.bindings)
	spec := routes.Document(openapi.NewSpec(&a.cfg.OpenAPI, a.cfg.Version), a.bindings)
	sys.Walk(func(pattern string, route pkgroutes.Route, _ []pkgroutes.Middleware) {
		spec.AddOperation(pattern, route.Method, route.OpenAPI)
		table = append(table, routes.Binding{
			Method:     route.Method,
			Path:       pattern,
			Handler:    route.Handler,
			Controller: systemController,
			Operation:  route.OpenAPI,
		})
	})

	doc, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi: %w", err)
	}
	serveSpec := openapi.ServeSpec(doc)
	r.Handle(http.MethodGet, OpenAPIPath, serveSpec)
	a.routes = append(table, routes.Binding{
		Method:     http.MethodGet,
		Path:       OpenAPIPath,
		Handler:    serveSpec,
		Controller: systemController,
	})

	a.router = r
	return nil
}

// Handler returns the bound router, preparing it if needed.
func (a *Application) Handler() (http.Handler, error) {
	if err := a.Prepare(); err != nil {
		return nil, err
	}
	return a.router, nil
}

// Boot prepares routes, migrates the schema when configured, starts
// listening, and returns once every startup hook has succeeded. /readyz
// reports 503 until then. A failed startup shuts the started systems down.
func (a *Application) Boot() error {
	logger := a.infra.Logger
	logger.Info("starting service")

	if err := a.Prepare(); err != nil {
		return err
	}

	if a.cfg.Database.AutoMigrate {
		if err := database.Migrate(&a.cfg.Database, database.Up, logger); err != nil {
			return err
		}
	}

	a.infra.Start()

	a.server = server.New(a.cfg, a.router, logger)
	if err := a.server.Start(a.infra.Lifecycle); err != nil {
		return err
	}

	if err := a.infra.Lifecycle.WaitForStartup(); err != nil {
		if serr := a.Shutdown(a.cfg.ShutdownTimeoutDuration()); serr != nil {
			logger.Error("shutdown after failed startup", "error", serr)
		}
		return fmt.Errorf("startup: %w", err)
	}

	logger.Info("all subsystems ready", "addr", a.server.Addr())
	return nil
}

// Addr returns the listening address once Boot succeeds.
func (a *Application) Addr() string {
	if a.server == nil {
		return a.cfg.Server.Addr()
	}
	return a.server.Addr()
}

// Shutdown stops every subsystem within timeout.
func (a *Application) Shutdown(timeout time.Duration) error {
	a.infra.Logger.Info("initiating shutdown")
	return a.infra.Lifecycle.Shutdown(timeout)
}
