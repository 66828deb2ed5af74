// Package controllers discovers controller manifests, constructs controllers
// through a factory catalog, and records a descriptor for each one.
//
// A controller declares the conventional actions it implements through the
// typed Actions struct. A non-nil field means the action is present; there is
// no runtime introspection. Handlers are usually method values, which fix
// the receiver when the controller is constructed.
package controllers

import (
	"net/http"

	"github.com/JaimeStill/scaffold/pkg/routes"
)

// Action names one of the seven conventional controller actions.
type Action string

const (
	Index   Action = "index"
	Create  Action = "create"
	Store   Action = "store"
	Show    Action = "show"
	Edit    Action = "edit"
	Update  Action = "update"
	Destroy Action = "destroy"
)

// Conventions lists every action in binding order.
var Conventions = []Action{Index, Create, Store, Show, Edit, Update, Destroy}

// Actions holds the handler for each conventional action a controller implements.
type Actions struct {
	Index   http.HandlerFunc
	Create  http.HandlerFunc
	Store   http.HandlerFunc
	Show    http.HandlerFunc
	Edit    http.HandlerFunc
	Update  http.HandlerFunc
	Destroy http.HandlerFunc
}

// Handler returns the handler for action, or nil when absent.
func (a Actions) Handler(action Action) http.HandlerFunc {
	switch action {
	case Index:
		return a.Index
	case Create:
		return a.Create
	case Store:
		return a.Store
	case Show:
		return a.Show
	case Edit:
		return a.Edit
	case Update:
		return a.Update
	case Destroy:
		return a.Destroy
	default:
		return nil
	}
}

// Present returns the implemented actions in convention order.
func (a Actions) Present() []Action {
	present := make([]Action, 0, len(Conventions))
	for _, action := range Conventions {
		if a.Handler(action) != nil {
			present = append(present, action)
		}
	}
	return present
}

// Controller is the value a factory produces.
// Name, SingularName, and Default are optional; manifests override them
// and discovery derives whatever remains empty.
type Controller struct {
	Name         string
	SingularName string
	Default      bool
	Actions      Actions

	// Routes declares explicit routes for basic-tier controllers.
	Routes *routes.Group
}
