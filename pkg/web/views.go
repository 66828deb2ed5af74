// Package web provides infrastructure for rendering HTML views with Go templates.
// Templates are parsed once when views are configured, avoiding per-request
// overhead, and each view is a clone of the shared layouts.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync/atomic"
)

// ErrNotConfigured is returned by Render before Configure succeeds.
var ErrNotConfigured = errors.New("views not configured")

// ErrViewNotFound is returned when rendering an unknown view.
var ErrViewNotFound = errors.New("view not found")

// Renderer renders a named view with the given status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data PageData) error
}

// ViewDef names a view and its template file relative to the pages directory.
type ViewDef struct {
	Name     string
	Template string
}

// PageData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// ViewsConfig locates layouts and views within a filesystem.
type ViewsConfig struct {
	Layout     string
	LayoutGlob string
	PageSubdir string
	BasePath   string
	Views      []ViewDef
}

// TemplateSet holds pre-parsed view templates keyed by view name.
type TemplateSet struct {
	views    map[string]*template.Template
	layout   string
	basePath string
}

// NewTemplateSet parses the layout templates once and clones them for each view.
// A parse failure in any view fails the whole set.
func NewTemplateSet(fsys fs.FS, cfg ViewsConfig) (*TemplateSet, error) {
	layouts, err := template.ParseFS(fsys, cfg.LayoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageSub, err := fs.Sub(fsys, cfg.PageSubdir)
	if err != nil {
		return nil, err
	}

	views := make(map[string]*template.Template, len(cfg.Views))
	for _, v := range cfg.Views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Name, err)
		}
		if _, err := t.ParseFS(pageSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		views[v.Name] = t
	}

	return &TemplateSet{
		views:    views,
		layout:   cfg.Layout,
		basePath: cfg.BasePath,
	}, nil
}

// Render executes the named view into a buffer and writes it with status.
// Nothing is written when execution fails.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, name string, data PageData) error {
	t, ok := ts.views[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}

	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, ts.layout, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Views is a Renderer whose templates are supplied after construction.
// Controllers capture Views at discovery time; Configure runs at boot.
type Views struct {
	set atomic.Pointer[TemplateSet]
}

// NewViews creates an unconfigured Views.
func NewViews() *Views {
	return &Views{}
}

// Configure parses the templates described by cfg from fsys.
func (v *Views) Configure(fsys fs.FS, cfg ViewsConfig) error {
	set, err := NewTemplateSet(fsys, cfg)
	if err != nil {
		return err
	}
	v.set.Store(set)
	return nil
}

// Configured reports whether Configure has succeeded.
func (v *Views) Configured() bool {
	return v.set.Load() != nil
}

// Render delegates to the configured TemplateSet.
func (v *Views) Render(w http.ResponseWriter, status int, name string, data PageData) error {
	set := v.set.Load()
	if set == nil {
		return ErrNotConfigured
	}
	return set.Render(w, status, name, data)
}
