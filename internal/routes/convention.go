// Package routes binds discovered controllers onto a router.
//
// Resource-tier controllers are bound through a fixed convention table that
// maps each present action to a verb and path. Basic-tier controllers
// contribute explicit route groups.
package routes

import (
	"net/http"

	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/pkg/openapi"
)

// RootPath is where the default controller's index is additionally bound.
const RootPath = "/"

// Convention maps an action to its verb and path shape.
type Convention struct {
	Action controllers.Action
	Method string
	path   func(name, singular string) string
}

// Path renders the convention path for a controller.
func (c Convention) Path(name, singular string) string {
	return c.path(name, singular)
}

// Conventions lists the convention table in binding order.
var Conventions = []Convention{
	{controllers.Index, http.MethodGet, func(n, _ string) string { return "/" + n + "/" }},
	{controllers.Create, http.MethodGet, func(n, _ string) string { return "/" + n + "/create" }},
	{controllers.Store, http.MethodPost, func(n, _ string) string { return "/" + n }},
	{controllers.Show, http.MethodGet, func(n, s string) string { return "/" + n + "/:" + s }},
	{controllers.Edit, http.MethodGet, func(n, s string) string { return "/" + n + "/:" + s + "/edit" }},
	{controllers.Update, http.MethodPut, func(n, s string) string { return "/" + n + "/:" + s }},
	{controllers.Destroy, http.MethodDelete, func(n, s string) string { return "/" + n + "/:" + s }},
}

// Binding is one registered route and the controller action it came from.
// Explicit routes carry an empty Action and their declared operation, if any.
type Binding struct {
	Method     string
	Path       string
	Handler    http.Handler
	Action     controllers.Action
	Controller string
	Operation  *openapi.Operation
}

// Resolve returns one binding per action the entry implements, in table order.
// Absent actions produce nothing.
func Resolve(entry *controllers.Entry) []Binding {
	bindings := make([]Binding, 0, len(Conventions))
	for _, c := range Conventions {
		h := entry.Controller.Actions.Handler(c.Action)
		if h == nil {
			continue
		}
		bindings = append(bindings, Binding{
			Method:     c.Method,
			Path:       c.Path(entry.Name, entry.SingularName),
			Handler:    h,
			Action:     c.Action,
			Controller: entry.Name,
		})
	}
	return bindings
}
