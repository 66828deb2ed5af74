// Package admin serves generic list and create screens for every
// registered entity under /admin.
package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/internal/entities"
	approutes "github.com/JaimeStill/scaffold/internal/routes"
	"github.com/JaimeStill/scaffold/pkg/decode"
	"github.com/JaimeStill/scaffold/pkg/handlers"
	"github.com/JaimeStill/scaffold/pkg/openapi"
	"github.com/JaimeStill/scaffold/pkg/pagination"
	"github.com/JaimeStill/scaffold/pkg/routes"
)

// Prefix is the mount point of the admin group.
const Prefix = "/admin"

// Param is the path parameter naming the entity type.
const Param = "type"

// Handler lists and creates entity records.
type Handler struct {
	entities   *entities.Registry
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates an admin Handler over reg. Lists are paged per cfg.
func NewHandler(reg *entities.Registry, logger *slog.Logger, cfg pagination.Config) *Handler {
	return &Handler{
		entities:   reg,
		logger:     logger.With("controller", "admin"),
		pagination: cfg,
	}
}

// Controller declares the admin route group with mw applied to every route.
func (h *Handler) Controller(mw ...routes.Middleware) *controllers.Controller {
	return &controllers.Controller{
		Name: "admin",
		Routes: &routes.Group{
			Prefix:      Prefix,
			Tags:        []string{"Admin"},
			Description: "Generic entity administration",
			Middleware:  mw,
			Routes: []routes.Route{
				{
					Method:  http.MethodGet,
					Pattern: "/:" + Param,
					Handler: h.List,
					OpenAPI: operation("List entity records", http.StatusOK, "HTML table of records"),
				},
				{
					Method:  http.MethodGet,
					Pattern: "/:" + Param + "/create",
					Handler: h.Form,
					OpenAPI: operation("Entity create form", http.StatusOK, "HTML form of writable fields"),
				},
				{
					Method:  http.MethodPost,
					Pattern: "/:" + Param,
					Handler: h.Store,
					OpenAPI: operation("Create entity record", http.StatusSeeOther, "Redirect to the record list"),
				},
			},
		},
	}
}

// List renders one page of the entity's records with links to the
// neighbouring pages. Paging follows the page and page_size query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	e, ok := h.lookup(w, r)
	if !ok {
		return
	}

	fields, err := e.Fields(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	result, err := e.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, entities.MapHTTPStatus(err), err)
		return
	}

	nav := pager{Page: result.Page, Pages: result.TotalPages, Total: result.Total}
	if result.HasPrev() {
		nav.Prev = pagination.PageURL(r.URL, page, result.Page-1)
	}
	if result.HasNext() {
		nav.Next = pagination.PageURL(r.URL, page, result.Page+1)
	}
	if link := result.Link(r.URL, page); link != "" {
		w.Header().Set("Link", link)
	}

	handlers.RespondHTML(w, http.StatusOK, listPage(e.Name(), typePath(r), fields, result.Data, nav))
}

// Form renders a create form built from the entity's writable fields.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	e, ok := h.lookup(w, r)
	if !ok {
		return
	}

	fields, err := e.Fields(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, formPage(e.Name(), typePath(r), entities.Writable(fields)))
}

// Store creates a record from the request body and redirects to the list.
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	e, ok := h.lookup(w, r)
	if !ok {
		return
	}

	data, err := decode.Map(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, decode.ErrUnsupportedMediaType) {
			status = http.StatusUnsupportedMediaType
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	if _, err := e.Create(r.Context(), entities.Record(data)); err != nil {
		handlers.RespondError(w, h.logger, entities.MapHTTPStatus(err), err)
		return
	}

	h.logger.Info("record created", "entity", e.Name())
	handlers.Redirect(w, r, typePath(r))
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (entities.Entity, bool) {
	e, err := h.entities.Lookup(r.PathValue(Param))
	if err != nil {
		handlers.RespondError(w, h.logger, entities.MapHTTPStatus(err), err)
		return nil, false
	}
	return e, true
}

func operation(summary string, status int, description string) *openapi.Operation {
	return &openapi.Operation{
		Summary:    summary,
		Tags:       []string{"Admin"},
		Parameters: []*openapi.Parameter{openapi.PathParam(Param, "Entity type, e.g. pages")},
		Responses: map[int]*openapi.Response{
			status: {Description: description},
			404:    openapi.ResponseJSON("Unknown entity", approutes.ErrorSchema),
		},
	}
}

func typePath(r *http.Request) string {
	return Prefix + "/" + strings.ToLower(r.PathValue(Param))
}
