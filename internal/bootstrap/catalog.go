package bootstrap

import (
	"log/slog"

	"github.com/JaimeStill/scaffold/internal/admin"
	"github.com/JaimeStill/scaffold/internal/config"
	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/internal/models"
	"github.com/JaimeStill/scaffold/internal/pages"
	"github.com/JaimeStill/scaffold/internal/users"
	"github.com/JaimeStill/scaffold/pkg/middleware"
	"github.com/JaimeStill/scaffold/pkg/routes"
	"github.com/JaimeStill/scaffold/pkg/web"
)

// Catalog returns the controller factories manifests may reference.
func Catalog(cfg *config.Config, views web.Renderer, logger *slog.Logger) *controllers.Catalog[*models.Models] {
	return controllers.NewCatalog[*models.Models]().
		Add("pages", func(m *models.Models) (*controllers.Controller, error) {
			return pages.NewHandler(m.Pages, views, logger).Controller(), nil
		}).
		Add("users", func(m *models.Models) (*controllers.Controller, error) {
			return users.NewHandler(m.Users, logger, cfg.Pagination).Controller(), nil
		}).
		Add("admin", func(m *models.Models) (*controllers.Controller, error) {
			var mw []routes.Middleware
			if cfg.Admin.Enabled() {
				mw = append(mw, middleware.BasicAuth(cfg.Admin.Realm, cfg.Admin.User, cfg.Admin.Password))
			}
			return admin.NewHandler(m.Entities, logger, cfg.Pagination).Controller(mw...), nil
		})
}
