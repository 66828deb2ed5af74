// Package app embeds the controller manifests and view templates the
// server is built from.
package app

import (
	"embed"
	"io/fs"

	"github.com/JaimeStill/scaffold/pkg/web"
)

//go:embed controllers
var controllerFS embed.FS

//go:embed layouts/* views
var viewFS embed.FS

// Controllers returns the manifest tree rooted at the tier directories.
func Controllers() fs.FS {
	sub, err := fs.Sub(controllerFS, "controllers")
	if err != nil {
		panic(err)
	}
	return sub
}

// Views returns the layout and view templates.
func Views() fs.FS {
	return viewFS
}

// ViewsConfig locates the layout and views within Views for defs.
func ViewsConfig(basePath string, defs ...web.ViewDef) web.ViewsConfig {
	return web.ViewsConfig{
		Layout:     "app",
		LayoutGlob: "layouts/*.html",
		PageSubdir: "views",
		BasePath:   basePath,
		Views:      defs,
	}
}
