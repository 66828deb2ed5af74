package routes

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/scaffold/internal/controllers"
	pkgroutes "github.com/JaimeStill/scaffold/pkg/routes"
)

// Binder registers controller routes against a router.
type Binder struct {
	logger *slog.Logger
}

// NewBinder creates a Binder that logs under the routes system.
func NewBinder(logger *slog.Logger) *Binder {
	return &Binder{logger: logger.With("system", "routes")}
}

// Bind registers every route derived from reg and returns the bindings in
// registration order.
//
// Resource-tier entries are bound first by convention. The first default
// entry with an index is also bound at RootPath, ahead of its own routes;
// later defaults are logged and left off the root. Basic-tier entries are
// bound second through their explicit route groups. Identical verb and path
// pairs are passed through to the router unchanged.
func (b *Binder) Bind(router pkgroutes.Router, reg *controllers.Registry) []Binding {
	var bound []Binding
	rootOwner := ""

	handle := func(binding Binding) {
		router.Handle(binding.Method, binding.Path, binding.Handler)
		bound = append(bound, binding)
	}

	for _, entry := range reg.Entries() {
		if !entry.Resource {
			continue
		}

		resolved := Resolve(entry)
		if len(resolved) == 0 {
			b.logger.Debug("controller has no conventional actions", "controller", entry.Name)
		}

		if entry.Default {
			switch {
			case !entry.Has(controllers.Index):
				b.logger.Warn("default controller has no index, root not bound", "controller", entry.Name)
			case rootOwner != "":
				b.logger.Warn("root already bound, ignoring default controller",
					"controller", entry.Name,
					"root", rootOwner,
				)
			default:
				rootOwner = entry.Name
				handle(Binding{
					Method:     http.MethodGet,
					Path:       RootPath,
					Handler:    entry.Controller.Actions.Index,
					Action:     controllers.Index,
					Controller: entry.Name,
				})
				b.logger.Info("default controller bound at root", "controller", entry.Name)
			}
		}

		for _, binding := range resolved {
			handle(binding)
		}
	}

	for _, entry := range reg.Entries() {
		if entry.Resource || entry.Controller.Routes == nil {
			continue
		}

		entry.Controller.Routes.Walk(func(pattern string, route pkgroutes.Route, mw []pkgroutes.Middleware) {
			handle(Binding{
				Method:     route.Method,
				Path:       pattern,
				Handler:    pkgroutes.Chain(route.Handler, mw...),
				Controller: entry.Name,
				Operation:  route.OpenAPI,
			})
		})
	}

	b.logger.Info("routes bound", "count", len(bound), "controllers", reg.Len())
	return bound
}
