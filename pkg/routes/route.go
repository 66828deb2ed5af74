// Package routes defines route and group declarations and the Router
// contract that live HTTP routers satisfy.
package routes

import (
	"net/http"

	"github.com/JaimeStill/scaffold/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
// Patterns use ":name" segments for path parameters, readable through
// http.Request.PathValue.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Router registers handlers for a method and pattern.
// Duplicate registrations are resolved by the implementation.
type Router interface {
	Handle(method, pattern string, handler http.Handler)
}

// Register adds every route of group to r with group middleware applied.
func Register(r Router, group Group) {
	group.Walk(func(pattern string, route Route, mw []Middleware) {
		r.Handle(route.Method, pattern, Chain(route.Handler, mw...))
	})
}
