package controllers

import (
	"maps"
	"slices"
)

// Factory constructs a controller from the injected models handle.
type Factory[M any] func(models M) (*Controller, error)

// Static returns a factory that ignores models and yields c.
func Static[M any](c *Controller) Factory[M] {
	return func(M) (*Controller, error) {
		return c, nil
	}
}

// Catalog maps factory names to factories.
type Catalog[M any] struct {
	factories map[string]Factory[M]
}

// NewCatalog creates an empty catalog.
func NewCatalog[M any]() *Catalog[M] {
	return &Catalog[M]{factories: make(map[string]Factory[M])}
}

// Add registers f under name, replacing any previous factory.
func (c *Catalog[M]) Add(name string, f Factory[M]) *Catalog[M] {
	c.factories[name] = f
	return c
}

// Lookup returns the factory registered under name.
func (c *Catalog[M]) Lookup(name string) (Factory[M], bool) {
	f, ok := c.factories[name]
	return f, ok
}

// Names returns the registered factory names in sorted order.
func (c *Catalog[M]) Names() []string {
	return slices.Sorted(maps.Keys(c.factories))
}
