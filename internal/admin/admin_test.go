package admin_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/scaffold/internal/admin"
	"github.com/JaimeStill/scaffold/internal/entities"
	"github.com/JaimeStill/scaffold/pkg/middleware"
	"github.com/JaimeStill/scaffold/pkg/pagination"
	"github.com/JaimeStill/scaffold/pkg/routes"
)

var pageCfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

type widgets struct {
	records []entities.Record
	fields  []entities.Field
}

func (w *widgets) Name() string { return "Widgets" }

func (w *widgets) Fields(context.Context) ([]entities.Field, error) {
	return w.fields, nil
}

func (w *widgets) List(_ context.Context, page pagination.PageRequest) (*pagination.PageResult[entities.Record], error) {
	start := min(page.Offset(), len(w.records))
	end := min(start+page.PageSize, len(w.records))
	result := pagination.NewPageResult(w.records[start:end], len(w.records), page.Page, page.PageSize)
	return &result, nil
}

func (w *widgets) Create(_ context.Context, rec entities.Record) (entities.Record, error) {
	label, _ := rec["label"].(string)
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", entities.ErrInvalidRecord)
	}
	for _, existing := range w.records {
		if existing["label"] == label {
			return nil, entities.ErrConflict
		}
	}
	w.records = append(w.records, rec)
	return rec, nil
}

func setup() (*admin.Handler, *widgets) {
	w := &widgets{
		fields: []entities.Field{
			{Name: "id", Type: "uuid", HasDefault: true},
			{Name: "label", Type: "text"},
			{Name: "weight", Type: "integer", Nullable: true},
			{Name: "created_at", Type: "timestamp with time zone", HasDefault: true},
		},
		records: []entities.Record{{"id": "w-1", "label": "sprocket", "weight": 3}},
	}

	reg := entities.NewRegistry()
	reg.Register(w)
	return admin.NewHandler(reg, slog.New(slog.DiscardHandler), pageCfg), w
}

func withType(r *http.Request, typ string) *http.Request {
	r.SetPathValue(admin.Param, typ)
	return r
}

func TestList(t *testing.T) {
	h, _ := setup()

	rec := httptest.NewRecorder()
	h.List(rec, withType(httptest.NewRequest(http.MethodGet, "/admin/widgets", nil), "widgets"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{"Widgets", "sprocket", "label", "/admin/widgets/create"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestList_PagesBeyondDefaultSize(t *testing.T) {
	h, w := setup()
	w.records = nil
	for i := range 25 {
		w.records = append(w.records, entities.Record{"id": fmt.Sprintf("w-%02d", i), "label": fmt.Sprintf("widget-%02d", i)})
	}

	rec := httptest.NewRecorder()
	h.List(rec, withType(httptest.NewRequest(http.MethodGet, "/admin/widgets", nil), "widgets"))

	body := rec.Body.String()
	if !strings.Contains(body, "widget-19") || strings.Contains(body, "widget-20") {
		t.Errorf("first page should hold widget-00..widget-19: %s", body)
	}
	if !strings.Contains(body, "Page 1 of 2 (25 records)") {
		t.Errorf("body missing page summary: %s", body)
	}
	if !strings.Contains(body, "/admin/widgets?page=2") || !strings.Contains(body, ">Next<") {
		t.Errorf("body missing next link: %s", body)
	}
	if link := rec.Header().Get("Link"); !strings.Contains(link, `rel="next"`) {
		t.Errorf("Link = %q, want next relation", link)
	}

	rec = httptest.NewRecorder()
	h.List(rec, withType(httptest.NewRequest(http.MethodGet, "/admin/widgets?page=2", nil), "widgets"))

	body = rec.Body.String()
	for _, want := range []string{"widget-20", "widget-24", "Page 2 of 2", "/admin/widgets?page=1", ">Previous<"} {
		if !strings.Contains(body, want) {
			t.Errorf("second page missing %q", want)
		}
	}
	if strings.Contains(body, "widget-19") || strings.Contains(body, ">Next<") {
		t.Errorf("second page should hold only the last 5 records: %s", body)
	}
}

func TestList_UnknownEntity(t *testing.T) {
	h, _ := setup()

	rec := httptest.NewRecorder()
	h.List(rec, withType(httptest.NewRequest(http.MethodGet, "/admin/gadgets", nil), "gadgets"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestForm_WritableFieldsOnly(t *testing.T) {
	h, _ := setup()

	rec := httptest.NewRecorder()
	h.Form(rec, withType(httptest.NewRequest(http.MethodGet, "/admin/widgets/create", nil), "widgets"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{`name="label"`, `name="weight"`, `action="/admin/widgets"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s", want)
		}
	}
	for _, managed := range []string{`name="id"`, `name="created_at"`} {
		if strings.Contains(body, managed) {
			t.Errorf("body contains managed field %s", managed)
		}
	}
}

func TestStore(t *testing.T) {
	h, w := setup()

	form := url.Values{"label": {"gear"}, "weight": {"7"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/widgets", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Store(rec, withType(req, "widgets"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/widgets" {
		t.Errorf("Location = %q, want /admin/widgets", loc)
	}
	if len(w.records) != 2 {
		t.Errorf("records = %d, want 2", len(w.records))
	}
}

func TestStore_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{"invalid", "application/json", `{"weight":1}`, http.StatusBadRequest},
		{"conflict", "application/json", `{"label":"sprocket"}`, http.StatusConflict},
		{"unsupported", "text/plain", "label=x", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setup()

			req := httptest.NewRequest(http.MethodPost, "/admin/widgets", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			h.Store(rec, withType(req, "widgets"))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var payload map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if payload["error"] == "" {
				t.Error("error payload empty")
			}
		})
	}
}

type table struct {
	handlers map[string]http.Handler
}

func (t *table) Handle(method, pattern string, h http.Handler) {
	t.handlers[method+" "+pattern] = h
}

func TestController_Group(t *testing.T) {
	h, _ := setup()
	c := h.Controller(middleware.BasicAuth("admin", "root", "secret"))

	if c.Routes == nil {
		t.Fatal("Routes = nil")
	}
	if len(c.Actions.Present()) != 0 {
		t.Errorf("admin declares conventional actions: %v", c.Actions.Present())
	}

	tbl := &table{handlers: map[string]http.Handler{}}
	routes.Register(tbl, *c.Routes)

	for _, key := range []string{"GET /admin/:type", "GET /admin/:type/create", "POST /admin/:type"} {
		if _, ok := tbl.handlers[key]; !ok {
			t.Errorf("missing route %s", key)
		}
	}

	rec := httptest.NewRecorder()
	tbl.handlers["GET /admin/:type"].ServeHTTP(rec, withType(httptest.NewRequest(http.MethodGet, "/admin/widgets", nil), "widgets"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", rec.Code)
	}

	req := withType(httptest.NewRequest(http.MethodGet, "/admin/widgets", nil), "widgets")
	req.SetBasicAuth("root", "secret")
	rec = httptest.NewRecorder()
	tbl.handlers["GET /admin/:type"].ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}
