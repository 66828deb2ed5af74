package routes_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/internal/routes"
	"github.com/JaimeStill/scaffold/pkg/openapi"
	pkgroutes "github.com/JaimeStill/scaffold/pkg/routes"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writes(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func all(prefix string) controllers.Actions {
	return controllers.Actions{
		Index:   writes(prefix + ".index"),
		Create:  writes(prefix + ".create"),
		Store:   writes(prefix + ".store"),
		Show:    writes(prefix + ".show"),
		Edit:    writes(prefix + ".edit"),
		Update:  writes(prefix + ".update"),
		Destroy: writes(prefix + ".destroy"),
	}
}

func discover(t *testing.T, fsys fstest.MapFS, catalog *controllers.Catalog[struct{}]) *controllers.Registry {
	t.Helper()
	reg, err := controllers.Discover(fsys, catalog, struct{}{}, discard())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	return reg
}

func static(c *controllers.Controller) controllers.Factory[struct{}] {
	return controllers.Static[struct{}](c)
}

func serve(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec.Body.String()
}

type route struct {
	method string
	path   string
}

func paths(bindings []routes.Binding) []route {
	out := make([]route, len(bindings))
	for i, b := range bindings {
		out[i] = route{b.Method, b.Path}
	}
	return out
}

func equalRoutes(t *testing.T, got, want []route) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d bindings %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("binding %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResolve_AllActions(t *testing.T) {
	entry := &controllers.Entry{
		Descriptor: controllers.Descriptor{Name: "pages", SingularName: "page"},
		Controller: &controllers.Controller{Actions: all("pages")},
	}

	equalRoutes(t, paths(routes.Resolve(entry)), []route{
		{"GET", "/pages/"},
		{"GET", "/pages/create"},
		{"POST", "/pages"},
		{"GET", "/pages/:page"},
		{"GET", "/pages/:page/edit"},
		{"PUT", "/pages/:page"},
		{"DELETE", "/pages/:page"},
	})
}

func TestResolve_Subset(t *testing.T) {
	tests := []struct {
		name    string
		actions controllers.Actions
		want    []route
	}{
		{
			name:    "none",
			actions: controllers.Actions{},
			want:    []route{},
		},
		{
			name:    "index only",
			actions: controllers.Actions{Index: writes("i")},
			want:    []route{{"GET", "/users/"}},
		},
		{
			name: "index show update destroy",
			actions: controllers.Actions{
				Index: writes("i"), Show: writes("s"), Update: writes("u"), Destroy: writes("d"),
			},
			want: []route{
				{"GET", "/users/"},
				{"GET", "/users/:user"},
				{"PUT", "/users/:user"},
				{"DELETE", "/users/:user"},
			},
		},
		{
			name:    "store edit",
			actions: controllers.Actions{Store: writes("s"), Edit: writes("e")},
			want:    []route{{"POST", "/users"}, {"GET", "/users/:user/edit"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &controllers.Entry{
				Descriptor: controllers.Descriptor{Name: "users", SingularName: "user"},
				Controller: &controllers.Controller{Actions: tt.actions},
			}

			got := routes.Resolve(entry)
			equalRoutes(t, paths(got), tt.want)

			if len(got) != len(tt.actions.Present()) {
				t.Errorf("len(Resolve()) = %d, want %d present actions", len(got), len(tt.actions.Present()))
			}
			for _, b := range got {
				if b.Controller != "users" || b.Action == "" {
					t.Errorf("binding %v missing controller or action", b)
				}
			}
		})
	}
}

func TestBind_ResourceAndDefault(t *testing.T) {
	catalog := controllers.NewCatalog[struct{}]().
		Add("pages", static(&controllers.Controller{Default: true, Actions: all("pages")})).
		Add("users", static(&controllers.Controller{Actions: controllers.Actions{Index: writes("users.index")}}))

	reg := discover(t, fstest.MapFS{
		"resource/pages.controller.toml": {Data: []byte("")},
		"resource/users.controller.toml": {Data: []byte("")},
	}, catalog)

	rec := routes.NewRecorder()
	bound := routes.NewBinder(discard()).Bind(rec, reg)

	equalRoutes(t, paths(bound), []route{
		{"GET", "/"},
		{"GET", "/pages/"},
		{"GET", "/pages/create"},
		{"POST", "/pages"},
		{"GET", "/pages/:page"},
		{"GET", "/pages/:page/edit"},
		{"PUT", "/pages/:page"},
		{"DELETE", "/pages/:page"},
		{"GET", "/users/"},
	})

	if len(rec.Registrations()) != len(bound) {
		t.Errorf("router saw %d registrations, want %d", len(rec.Registrations()), len(bound))
	}

	if got := serve(t, bound[0].Handler); got != "pages.index" {
		t.Errorf("root handler wrote %q, want pages.index", got)
	}
}

func TestBind_DefaultTieBreak(t *testing.T) {
	catalog := controllers.NewCatalog[struct{}]().
		Add("alpha", static(&controllers.Controller{Default: true, Actions: controllers.Actions{Index: writes("alpha")}})).
		Add("beta", static(&controllers.Controller{Default: true, Actions: controllers.Actions{Index: writes("beta")}}))

	fsys := fstest.MapFS{
		"resource/beta.controller.toml":  {Data: []byte("")},
		"resource/alpha.controller.toml": {Data: []byte("")},
	}

	for run := 0; run < 3; run++ {
		reg := discover(t, fsys, catalog)
		bound := routes.NewBinder(discard()).Bind(routes.NewRecorder(), reg)

		var roots []routes.Binding
		for _, b := range bound {
			if b.Path == routes.RootPath {
				roots = append(roots, b)
			}
		}

		if len(roots) != 1 {
			t.Fatalf("run %d: %d root bindings, want 1", run, len(roots))
		}
		if roots[0].Controller != "alpha" {
			t.Errorf("run %d: root bound to %s, want alpha (first discovered)", run, roots[0].Controller)
		}
		if got := serve(t, roots[0].Handler); got != "alpha" {
			t.Errorf("run %d: root handler wrote %q, want alpha", run, got)
		}
	}
}

func TestBind_DefaultWithoutIndex(t *testing.T) {
	catalog := controllers.NewCatalog[struct{}]().
		Add("alpha", static(&controllers.Controller{Default: true, Actions: controllers.Actions{Show: writes("alpha")}})).
		Add("beta", static(&controllers.Controller{Default: true, Actions: controllers.Actions{Index: writes("beta")}}))

	reg := discover(t, fstest.MapFS{
		"resource/alpha.controller.toml": {Data: []byte("")},
		"resource/beta.controller.toml":  {Data: []byte("")},
	}, catalog)

	bound := routes.NewBinder(discard()).Bind(routes.NewRecorder(), reg)

	for _, b := range bound {
		if b.Path == routes.RootPath && b.Controller != "beta" {
			t.Errorf("root bound to %s, want beta", b.Controller)
		}
	}
}

func TestBind_BasicTierGroups(t *testing.T) {
	guard := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("guarded:"))
			next.ServeHTTP(w, r)
		})
	}

	admin := &controllers.Controller{
		Actions: controllers.Actions{Index: writes("ignored")},
		Routes: &pkgroutes.Group{
			Prefix:     "/admin",
			Middleware: []pkgroutes.Middleware{guard},
			Routes: []pkgroutes.Route{
				{Method: "GET", Pattern: "/:type", Handler: writes("list")},
				{Method: "GET", Pattern: "/:type/create", Handler: writes("form")},
				{Method: "POST", Pattern: "/:type", Handler: writes("store"), OpenAPI: &openapi.Operation{Summary: "create entity"}},
			},
		},
	}

	resourceWithRoutes := &controllers.Controller{
		Routes: &pkgroutes.Group{
			Prefix: "/hidden",
			Routes: []pkgroutes.Route{{Method: "GET", Pattern: "", Handler: writes("hidden")}},
		},
	}

	catalog := controllers.NewCatalog[struct{}]().
		Add("admin", static(admin)).
		Add("things", static(resourceWithRoutes))

	reg := discover(t, fstest.MapFS{
		"basic/admin.controller.toml":     {Data: []byte("")},
		"resource/things.controller.toml": {Data: []byte("")},
	}, catalog)

	bound := routes.NewBinder(discard()).Bind(routes.NewRecorder(), reg)

	equalRoutes(t, paths(bound), []route{
		{"GET", "/admin/:type"},
		{"GET", "/admin/:type/create"},
		{"POST", "/admin/:type"},
	})

	if got := serve(t, bound[1].Handler); got != "guarded:form" {
		t.Errorf("group handler wrote %q, want guarded:form", got)
	}
	if bound[2].Operation == nil || bound[2].Operation.Summary != "create entity" {
		t.Errorf("explicit operation = %v, want create entity", bound[2].Operation)
	}
	if bound[0].Action != "" || bound[0].Controller != "admin" {
		t.Errorf("explicit binding = %+v, want no action and controller admin", bound[0])
	}
}

func TestBind_DuplicatesPassThrough(t *testing.T) {
	catalog := controllers.NewCatalog[struct{}]().
		Add("pages", static(&controllers.Controller{Actions: controllers.Actions{Index: writes("a")}})).
		Add("other", static(&controllers.Controller{Name: "pages", Actions: controllers.Actions{Index: writes("b")}}))

	reg := discover(t, fstest.MapFS{
		"resource/pages.controller.toml": {Data: []byte("")},
		"basic/other.controller.toml":    {Data: []byte("")},
	}, catalog)

	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after collision", reg.Len())
	}

	explicit := &controllers.Controller{
		Routes: &pkgroutes.Group{
			Routes: []pkgroutes.Route{
				{Method: "GET", Pattern: "/dup", Handler: writes("first")},
				{Method: "GET", Pattern: "/dup", Handler: writes("second")},
			},
		},
	}
	reg = discover(t, fstest.MapFS{
		"basic/dup.controller.toml": {Data: []byte("")},
	}, controllers.NewCatalog[struct{}]().Add("dup", static(explicit)))

	rec := routes.NewRecorder()
	routes.NewBinder(discard()).Bind(rec, reg)

	if len(rec.Registrations()) != 2 {
		t.Errorf("router saw %d registrations, want 2 identical routes passed through", len(rec.Registrations()))
	}
}

type counter struct {
	prefix string
	hits   int
}

func (c *counter) Index(w http.ResponseWriter, r *http.Request) {
	c.hits++
	w.Write([]byte(c.prefix))
}

func TestBind_MethodValuesKeepReceiver(t *testing.T) {
	c := &counter{prefix: "stateful"}
	catalog := controllers.NewCatalog[struct{}]().
		Add("counters", static(&controllers.Controller{Actions: controllers.Actions{Index: c.Index}}))

	reg := discover(t, fstest.MapFS{"resource/counters.controller.toml": {Data: []byte("")}}, catalog)
	bound := routes.NewBinder(discard()).Bind(routes.NewRecorder(), reg)

	if got := serve(t, bound[0].Handler); got != "stateful" {
		t.Errorf("handler wrote %q, want stateful", got)
	}
	if c.hits != 1 {
		t.Errorf("hits = %d, want 1", c.hits)
	}
}

func TestDocument(t *testing.T) {
	bindings := []routes.Binding{
		{Method: "GET", Path: "/pages/:page", Action: controllers.Show, Controller: "pages"},
		{Method: "POST", Path: "/admin/:type", Controller: "admin", Operation: &openapi.Operation{Summary: "declared"}},
	}

	spec := routes.Document(openapi.NewSpec(&openapi.Config{Title: "t"}, "1"), bindings)

	show := spec.Paths["/pages/{page}"]
	if show == nil || show.Get == nil {
		t.Fatal("show operation missing")
	}
	if show.Get.Summary != "pages.show" {
		t.Errorf("Summary = %q, want pages.show", show.Get.Summary)
	}
	if len(show.Get.Parameters) != 1 || show.Get.Parameters[0].Name != "page" {
		t.Errorf("Parameters = %v, want page", show.Get.Parameters)
	}
	if show.Get.Responses[404] == nil {
		t.Error("show operation missing 404 response")
	}
	if spec.Components == nil || spec.Components.Schemas[routes.ErrorSchema] == nil {
		t.Error("error schema not registered")
	}

	admin := spec.Paths["/admin/{type}"]
	if admin == nil || admin.Post == nil || admin.Post.Summary != "declared" {
		t.Errorf("admin operation = %v, want declared", admin)
	}
}
