package controllers

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
)

// Registry holds discovered controllers keyed by name.
// It is assembled once by Discover and read-only afterward.
type Registry struct {
	entries map[string]*Entry
	order   []string
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns entries in discovery order.
// A name registered twice appears at the position of its last registration.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.order))
	for i, name := range r.order {
		out[i] = r.entries[name]
	}
	return out
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := slices.Clone(r.order)
	slices.Sort(names)
	return names
}

// Len returns the number of registered controllers.
func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) add(e *Entry) (previous *Entry) {
	if prev, ok := r.entries[e.Name]; ok {
		previous = prev
		r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == e.Name })
	}
	r.entries[e.Name] = e
	r.order = append(r.order, e.Name)
	return previous
}

// Discover reads controller manifests from fsys and constructs each controller
// through catalog with models injected.
//
// Manifests are read from the resource tier and then the basic tier, each in
// lexical file order, so repeated runs over the same tree produce the same
// registry. A manifest that cannot be parsed, names an unknown factory, or
// whose factory returns no controller is logged and skipped. A factory error
// aborts discovery.
func Discover[M any](fsys fs.FS, catalog *Catalog[M], models M, logger *slog.Logger) (*Registry, error) {
	logger = logger.With("system", "controllers")
	reg := newRegistry()

	for _, tier := range Tiers {
		files, err := fs.Glob(fsys, path.Join(string(tier), "*"+ManifestSuffix))
		if err != nil {
			return nil, fmt.Errorf("glob %s controllers: %w", tier, err)
		}
		slices.Sort(files)

		logger.Debug("loading controllers", "tier", tier, "count", len(files))

		for _, file := range files {
			entry, err := load(fsys, file, tier, catalog, models, logger)
			if err != nil {
				return nil, err
			}
			if entry == nil {
				continue
			}

			if prev := reg.add(entry); prev != nil {
				logger.Warn("controller name collision, last loaded wins",
					"name", entry.Name,
					"previous", prev.Source,
					"source", entry.Source,
				)
			}

			logger.Info("controller loaded",
				"name", entry.Name,
				"singular", entry.SingularName,
				"tier", entry.Tier,
				"actions", entry.Methods,
				"default", entry.Default,
			)
		}
	}

	return reg, nil
}

func load[M any](fsys fs.FS, file string, tier Tier, catalog *Catalog[M], models M, logger *slog.Logger) (*Entry, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		logger.Warn("skipping controller: invalid manifest", "source", file, "error", err)
		return nil, nil
	}

	factoryName := manifest.FactoryName(file)
	factory, ok := catalog.Lookup(factoryName)
	if !ok {
		logger.Warn("skipping controller: unknown factory", "source", file, "factory", factoryName)
		return nil, nil
	}

	ctrl, err := factory(models)
	if err != nil {
		return nil, fmt.Errorf("construct controller %s: %w", file, err)
	}
	if ctrl == nil {
		logger.Warn("skipping controller: factory returned nil", "source", file, "factory", factoryName)
		return nil, nil
	}

	return &Entry{
		Descriptor: describe(file, tier, manifest, ctrl),
		Controller: ctrl,
	}, nil
}

func describe(file string, tier Tier, m Manifest, ctrl *Controller) Descriptor {
	name := Stem(file)
	if ctrl.Name != "" {
		name = ctrl.Name
	}
	if m.Name != nil && *m.Name != "" {
		name = *m.Name
	}

	singular := Singular(name)
	if ctrl.SingularName != "" {
		singular = ctrl.SingularName
	}
	if m.SingularName != nil && *m.SingularName != "" {
		singular = *m.SingularName
	}

	def := ctrl.Default
	if m.Default != nil {
		def = *m.Default
	}

	return Descriptor{
		Name:         name,
		SingularName: singular,
		Methods:      ctrl.Actions.Present(),
		Resource:     tier == TierResource,
		Default:      def,
		Tier:         tier,
		Source:       file,
	}
}
