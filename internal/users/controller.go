package users

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/scaffold/internal/controllers"
	"github.com/JaimeStill/scaffold/pkg/decode"
	"github.com/JaimeStill/scaffold/pkg/handlers"
	"github.com/JaimeStill/scaffold/pkg/pagination"
	"github.com/google/uuid"
)

// Param is the path parameter carrying the user id.
const Param = "user"

// CreatePath is where new users are entered.
const CreatePath = "/admin/users/create"

// Handler implements the user controller actions as a JSON API.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a user Handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("controller", "users"),
		pagination: pagination,
	}
}

// Controller exposes every action except store.
// Users are stored through the admin area.
func (h *Handler) Controller() *controllers.Controller {
	return &controllers.Controller{
		Actions: controllers.Actions{
			Index:   h.Index,
			Create:  h.Create,
			Show:    h.Show,
			Edit:    h.Edit,
			Update:  h.Update,
			Destroy: h.Destroy,
		},
	}
}

// Index responds with a page of users and a Link header to neighbouring pages.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	if link := result.Link(r.URL, page); link != "" {
		w.Header().Set("Link", link)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create redirects to the admin form for new users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, CreatePath, http.StatusFound)
}

// Show responds with the user named by the path.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	u, ok := h.find(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, u)
}

// Edit responds with the user's editable fields, the body Update accepts.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	u, ok := h.find(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, UpdateCommand{Email: u.Email})
}

// Update replaces the user's editable fields and responds with the result.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := decode.Request[UpdateCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	u, err := h.sys.Update(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, u)
}

// Destroy deletes the user and responds with no content.
func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) find(w http.ResponseWriter, r *http.Request) (*User, bool) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return nil, false
	}

	u, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return nil, false
	}
	return u, true
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(Param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, r.PathValue(Param))
	}
	return id, nil
}
