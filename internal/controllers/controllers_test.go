package controllers_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/scaffold/internal/controllers"
)

type models struct {
	calls *int
}

func noop(w http.ResponseWriter, r *http.Request) {}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func pagesFactory(m models) (*controllers.Controller, error) {
	if m.calls != nil {
		*m.calls++
	}
	return &controllers.Controller{
		Default: true,
		Actions: controllers.Actions{
			Index: noop, Create: noop, Store: noop, Show: noop,
			Edit: noop, Update: noop, Destroy: noop,
		},
	}, nil
}

func usersFactory(models) (*controllers.Controller, error) {
	return &controllers.Controller{
		Actions: controllers.Actions{Index: noop, Show: noop, Update: noop},
	}, nil
}

func newCatalog() *controllers.Catalog[models] {
	return controllers.NewCatalog[models]().
		Add("pages", pagesFactory).
		Add("users", usersFactory).
		Add("admin", controllers.Static[models](&controllers.Controller{}))
}

func tree() fstest.MapFS {
	return fstest.MapFS{
		"resource/users.controller.toml": {Data: []byte("")},
		"resource/pages.controller.toml": {Data: []byte("default = true\n")},
		"basic/admin.controller.toml":    {Data: []byte("")},
		"resource/README.md":             {Data: []byte("ignored")},
	}
}

func TestSingular(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"pages", "page"},
		{"users", "user"},
		{"admin", "admin"},
		{"s", "s"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := controllers.Singular(tt.name)
			if got != tt.want {
				t.Errorf("Singular(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if again := controllers.Singular(got); again != got {
				t.Errorf("Singular(Singular(%q)) = %q, want %q", tt.name, again, got)
			}
		})
	}
}

func TestActions_Present(t *testing.T) {
	a := controllers.Actions{Destroy: noop, Index: noop, Show: noop}

	got := a.Present()
	want := []controllers.Action{controllers.Index, controllers.Show, controllers.Destroy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Present() = %v, want %v", got, want)
	}

	if a.Handler(controllers.Store) != nil {
		t.Error("Handler(Store) != nil for absent action")
	}
	if a.Handler(controllers.Action("nope")) != nil {
		t.Error("Handler(nope) != nil for unknown action")
	}
}

func TestDiscover(t *testing.T) {
	calls := 0
	reg, err := controllers.Discover(tree(), newCatalog(), models{calls: &calls}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if reg.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", reg.Len())
	}
	if calls != 1 {
		t.Errorf("pages factory called %d times, want 1", calls)
	}

	wantOrder := []string{"pages", "users", "admin"}
	var gotOrder []string
	for _, e := range reg.Entries() {
		gotOrder = append(gotOrder, e.Name)
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("Entries() order = %v, want %v", gotOrder, wantOrder)
	}

	if names := reg.Names(); !reflect.DeepEqual(names, []string{"admin", "pages", "users"}) {
		t.Errorf("Names() = %v, want sorted names", names)
	}

	pages, ok := reg.Get("pages")
	if !ok {
		t.Fatal("Get(pages) not found")
	}
	if pages.SingularName != "page" || !pages.Resource || !pages.Default {
		t.Errorf("pages descriptor = %+v, want singular page, resource, default", pages.Descriptor)
	}
	if pages.Tier != controllers.TierResource || pages.Source != "resource/pages.controller.toml" {
		t.Errorf("pages tier/source = %s %s", pages.Tier, pages.Source)
	}
	if len(pages.Methods) != 7 {
		t.Errorf("pages methods = %v, want all seven", pages.Methods)
	}

	users, _ := reg.Get("users")
	if users.Has(controllers.Store) || !users.Has(controllers.Update) {
		t.Errorf("users methods = %v, want index, show, update", users.Methods)
	}

	admin, _ := reg.Get("admin")
	if admin.Resource || admin.Tier != controllers.TierBasic {
		t.Errorf("admin descriptor = %+v, want basic tier", admin.Descriptor)
	}
}

func TestDiscover_Deterministic(t *testing.T) {
	first, err := controllers.Discover(tree(), newCatalog(), models{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	second, err := controllers.Discover(tree(), newCatalog(), models{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	a, b := first.Entries(), second.Entries()
	if len(a) != len(b) {
		t.Fatalf("entry counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !reflect.DeepEqual(a[i].Descriptor, b[i].Descriptor) {
			t.Errorf("entry %d differs: %+v vs %+v", i, a[i].Descriptor, b[i].Descriptor)
		}
	}
}

func TestDiscover_ManifestOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"resource/people.controller.toml": {Data: []byte(`
name = "people"
singular_name = "person"
factory = "users"
default = false
`)},
	}

	reg, err := controllers.Discover(fsys, newCatalog(), models{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	people, ok := reg.Get("people")
	if !ok {
		t.Fatal("Get(people) not found")
	}
	if people.SingularName != "person" {
		t.Errorf("SingularName = %q, want person", people.SingularName)
	}
	if people.Default {
		t.Error("Default = true, want false")
	}
}

func TestDiscover_ControllerNames(t *testing.T) {
	catalog := controllers.NewCatalog[models]().
		Add("misc", controllers.Static[models](&controllers.Controller{Name: "articles"})).
		Add("geese", controllers.Static[models](&controllers.Controller{SingularName: "goose"}))

	fsys := fstest.MapFS{
		"resource/misc.controller.toml":  {Data: []byte("")},
		"resource/geese.controller.toml": {Data: []byte("")},
	}

	reg, err := controllers.Discover(fsys, catalog, models{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	articles, ok := reg.Get("articles")
	if !ok || articles.SingularName != "article" {
		t.Errorf("Get(articles) = %+v, %v; want singular article", articles, ok)
	}
	geese, ok := reg.Get("geese")
	if !ok || geese.SingularName != "goose" {
		t.Errorf("Get(geese) = %+v, %v; want singular goose", geese, ok)
	}
}

func TestDiscover_Collision(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	fsys := fstest.MapFS{
		"resource/pages.controller.toml": {Data: []byte("")},
		"basic/pages.controller.toml":    {Data: []byte(`factory = "admin"`)},
		"resource/users.controller.toml": {Data: []byte("")},
	}

	reg, err := controllers.Discover(fsys, newCatalog(), models{}, logger)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	pages, _ := reg.Get("pages")
	if pages.Tier != controllers.TierBasic {
		t.Errorf("pages tier = %s, want basic (last loaded wins)", pages.Tier)
	}

	entries := reg.Entries()
	if entries[len(entries)-1].Name != "pages" {
		t.Errorf("last entry = %s, want pages", entries[len(entries)-1].Name)
	}

	if !strings.Contains(buf.String(), "collision") {
		t.Errorf("log = %q, want collision warning", buf.String())
	}
}

func TestDiscover_ShapeErrorsSkipped(t *testing.T) {
	catalog := newCatalog().
		Add("nil", func(models) (*controllers.Controller, error) { return nil, nil })

	fsys := fstest.MapFS{
		"resource/broken.controller.toml":  {Data: []byte("name = ")},
		"resource/unknown.controller.toml": {Data: []byte("extra = 1")},
		"resource/orphan.controller.toml":  {Data: []byte("")},
		"resource/nil.controller.toml":     {Data: []byte("")},
		"resource/users.controller.toml":   {Data: []byte("")},
	}

	reg, err := controllers.Discover(fsys, catalog, models{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if names := reg.Names(); !reflect.DeepEqual(names, []string{"users"}) {
		t.Errorf("Names() = %v, want [users]", names)
	}
}

func TestDiscover_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	catalog := controllers.NewCatalog[models]().
		Add("pages", func(models) (*controllers.Controller, error) { return nil, boom })

	fsys := fstest.MapFS{
		"resource/pages.controller.toml": {Data: []byte("")},
	}

	_, err := controllers.Discover(fsys, catalog, models{}, discard())
	if !errors.Is(err, boom) {
		t.Errorf("Discover() error = %v, want boom", err)
	}
}

func TestDiscover_Empty(t *testing.T) {
	reg, err := controllers.Discover(fstest.MapFS{}, newCatalog(), models{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestCatalog(t *testing.T) {
	c := newCatalog()

	if _, ok := c.Lookup("pages"); !ok {
		t.Error("Lookup(pages) not found")
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Error("Lookup(missing) found")
	}
	if names := c.Names(); !reflect.DeepEqual(names, []string{"admin", "pages", "users"}) {
		t.Errorf("Names() = %v, want sorted", names)
	}
}

func TestParseManifest(t *testing.T) {
	m, err := controllers.ParseManifest([]byte("name = \"pages\"\ndefault = true\n"))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if m.Name == nil || *m.Name != "pages" {
		t.Errorf("Name = %v, want pages", m.Name)
	}
	if m.SingularName != nil {
		t.Errorf("SingularName = %v, want nil", *m.SingularName)
	}
	if got := m.FactoryName("resource/site.controller.toml"); got != "site" {
		t.Errorf("FactoryName() = %q, want site", got)
	}

	if _, err := controllers.ParseManifest([]byte("bogus = 1")); err == nil {
		t.Error("ParseManifest() with unknown key returned nil error")
	}
}
