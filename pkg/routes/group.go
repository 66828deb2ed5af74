package routes

import "net/http"

// Middleware wraps a handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
// Middleware applies to every route in the group and its children,
// outermost first.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Middleware  []Middleware
	Routes      []Route
	Children    []Group
}

// Walk visits every route in the group tree with its fully joined pattern
// and the middleware chain accumulated from the root.
func (g Group) Walk(fn func(pattern string, route Route, mw []Middleware)) {
	g.walk("", nil, fn)
}

func (g Group) walk(parent string, inherited []Middleware, fn func(string, Route, []Middleware)) {
	prefix := parent + g.Prefix

	mw := make([]Middleware, 0, len(inherited)+len(g.Middleware))
	mw = append(mw, inherited...)
	mw = append(mw, g.Middleware...)

	for _, route := range g.Routes {
		fn(prefix+route.Pattern, route, mw)
	}
	for _, child := range g.Children {
		child.walk(prefix, mw, fn)
	}
}

// Chain wraps h so that mw[0] runs first.
func Chain(h http.Handler, mw ...Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}
