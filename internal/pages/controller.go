package pages

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/pkg/decode"
	"github.com/JaimeStill/scaffold/pkg/handlers"
	"github.com/JaimeStill/scaffold/pkg/web"
)

// Param is the path parameter carrying the page slug.
const Param = "page"

// View names rendered by the page controller.
const (
	ViewShow    = "pages/show"
	ViewCreate  = "pages/create"
	ViewEdit    = "pages/edit"
	ViewMissing = "pages/missing"
)

// Views lists the templates the page controller renders.
var Views = []web.ViewDef{
	{Name: ViewShow, Template: "pages/show.html"},
	{Name: ViewCreate, Template: "pages/create.html"},
	{Name: ViewEdit, Template: "pages/edit.html"},
	{Name: ViewMissing, Template: "pages/missing.html"},
}

// Handler implements the page controller actions.
type Handler struct {
	sys    System
	views  web.Renderer
	logger *slog.Logger
}

// NewHandler creates a page Handler rendering through views.
func NewHandler(sys System, views web.Renderer, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		views:  views,
		logger: logger.With("controller", "pages"),
	}
}

// Controller exposes every conventional action. Pages is the default controller.
func (h *Handler) Controller() *controllers.Controller {
	return &controllers.Controller{
		Default: true,
		Actions: controllers.Actions{
			Index:   h.Index,
			Create:  h.Create,
			Store:   h.Store,
			Show:    h.Show,
			Edit:    h.Edit,
			Update:  h.Update,
			Destroy: h.Destroy,
		},
	}
}

// Index renders the home page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, HomeSlug, ViewShow)
}

// Create renders the new page form.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, ViewCreate, web.PageData{Title: "New Page"})
}

// Store persists a page and redirects to it.
// Failures respond with the error payload instead of redirecting.
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	cmd, err := decode.Request[CreateCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.Redirect(w, r, "/pages/"+p.Slug)
}

// Show renders the page named by the path, or a 404 page when none matches.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, r.PathValue(Param), ViewShow)
}

// Edit renders a form prefilled with the page.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, r.PathValue(Param), ViewEdit)
}

// Update saves the page and redirects to it.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue(Param)

	cmd, err := decode.Request[UpdateCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Update(r.Context(), slug, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.Redirect(w, r, "/pages/"+p.Slug)
}

// Destroy deletes the page and redirects to the index.
func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), r.PathValue(Param)); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.Redirect(w, r, "/pages/")
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request, slug, view string) {
	p, err := h.sys.Find(r.Context(), slug)
	if errors.Is(err, ErrNotFound) {
		h.logger.Info("page not found", "slug", slug)
		h.notFound(w, slug)
		return
	}
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	h.render(w, http.StatusOK, view, web.PageData{Title: p.Title, Data: p})
}

func (h *Handler) notFound(w http.ResponseWriter, slug string) {
	data := web.PageData{Title: "Not Found", Data: slug}
	if err := h.views.Render(w, http.StatusNotFound, ViewMissing, data); err != nil {
		h.logger.Warn("render missing view", "error", err)
		http.Error(w, ErrNotFound.Error(), http.StatusNotFound)
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, view string, data web.PageData) {
	if err := h.views.Render(w, status, view, data); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
	}
}
