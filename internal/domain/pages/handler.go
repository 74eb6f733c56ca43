package pages

import (
	"encoding/json"
	"errors"
	"net/http"

	"events-console/internal/domain/events"
	"events-console/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, ctrl *Controller, sess *Sessions, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	h := &handler{ctrl: ctrl, sess: sess, log: log.With(map[string]any{"component": "pages.http"})}

	r.Route("/pages", func(pr chi.Router) {
		pr.Get("/events", h.listPage)
		pr.Post("/events/new", h.enterCreate)
		pr.Post("/events/{eventID}", h.enterDetail)

		pr.Route("/sessions/{sessionID}", func(sr chi.Router) {
			sr.Get("/", h.withSession(h.showSession))
			sr.Delete("/", h.leaveSession)
			sr.Patch("/draft", h.withSession(h.patchDraft))
			sr.Post("/submit", h.withSession(h.submit))
			sr.Post("/edit", h.withDetail(h.openEdit))
			sr.Post("/edit/cancel", h.withDetail(h.cancelEdit))
			sr.Post("/delete", h.withDetail(h.requestDelete))
			sr.Post("/delete/confirm", h.withDetail(h.confirmDelete))
			sr.Post("/delete/cancel", h.withDetail(h.cancelDelete))
		})
	})
}

type handler struct {
	ctrl *Controller
	sess *Sessions
	log  logger.Logger
}

// categoryBadge es una categoría del evento ya resuelta a nombre.
type categoryBadge struct {
	ID   events.ID `json:"id"`
	Name string    `json:"name"`
}

// detailView es lo que renderiza la página de detalle.
type detailView struct {
	Event         events.Event    `json:"event"`
	Creator       *events.User    `json:"creator"`
	CreatorName   string          `json:"creator_name"`
	Categories    []categoryBadge `json:"categories"`
	Editing       bool            `json:"editing"`
	Draft         EditDraft       `json:"draft"`
	DeletePending bool            `json:"delete_pending"`
}

// createView es lo que renderiza la página de alta.
type createView struct {
	Draft      CreateDraft `json:"draft"`
	Categories []events.ID `json:"categories"`
}

// pageResponse es la respuesta de toda acción sobre una sesión de página.
// Si Navigate viene seteado, la sesión ya fue descartada.
type pageResponse struct {
	SessionID    string        `json:"session_id,omitempty"`
	Kind         Kind          `json:"kind,omitempty"`
	Detail       *detailView   `json:"detail,omitempty"`
	Create       *createView   `json:"create,omitempty"`
	Navigate     string        `json:"navigate,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// draftPatchRequest setea campos del draft, uno o varios a la vez.
type draftPatchRequest struct {
	Fields     map[string]string `json:"fields"`
	Categories *[]events.ID      `json:"categories"` // solo página de alta
}

// listPage godoc
// @Summary Página de listado
// @Description Carga eventos y categorías y aplica el filtro local: texto en título/descripción y categorías (todas las del evento deben estar seleccionadas).
// @Tags pages
// @Produce json
// @Param q query string false "Texto de búsqueda"
// @Param categories query string false "CSV de ids de categoría seleccionados (ej: 1,2)"
// @Success 200 {object} ListView
// @Failure 502 {string} string "failed to load data"
// @Router /pages/events [get]
func (h *handler) listPage(w http.ResponseWriter, r *http.Request) {
	data, err := h.ctrl.EnterList(r.Context())
	if err != nil {
		h.loadFailed(w, err)
		return
	}

	var st ListState
	st.SetQuery(r.URL.Query().Get("q"))

	selected := events.ParseIDs(r.URL.Query().Get("categories"))
	for _, v := range r.URL.Query()["category"] {
		selected = append(selected, events.ParseID(v))
	}
	st.SetCategories(selected)

	writeJSON(w, http.StatusOK, st.View(data))
}

// enterCreate godoc
// @Summary Entrar a la página de alta
// @Description Abre una sesión con un draft vacío.
// @Tags pages
// @Produce json
// @Success 201 {object} pageResponse
// @Router /pages/events/new [post]
func (h *handler) enterCreate(w http.ResponseWriter, r *http.Request) {
	s, err := h.sess.OpenCreate(r.Context(), h.ctrl.EnterCreate())
	if err != nil {
		h.internal(w, "open create session", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPageResponse(s, Result{}))
}

// enterDetail godoc
// @Summary Entrar a la página de detalle
// @Description Carga en paralelo evento, usuarios y categorías y abre una sesión. Si falla cualquiera de los requests falla la carga completa.
// @Tags pages
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 201 {object} pageResponse
// @Failure 404 {string} string "event not found"
// @Failure 502 {string} string "failed to load data"
// @Router /pages/events/{eventID} [post]
func (h *handler) enterDetail(w http.ResponseWriter, r *http.Request) {
	id := events.ParseID(chi.URLParam(r, "eventID"))

	st, err := h.ctrl.EnterDetail(r.Context(), id)
	if err != nil {
		h.loadFailed(w, err)
		return
	}

	s, err := h.sess.OpenDetail(r.Context(), st)
	if err != nil {
		h.internal(w, "open detail session", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPageResponse(s, Result{}))
}

// showSession godoc
// @Summary Estado actual de una página
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Failure 404 {string} string "session not found"
// @Router /pages/sessions/{sessionID} [get]
func (h *handler) showSession(w http.ResponseWriter, r *http.Request, s *Session) {
	writeJSON(w, http.StatusOK, toPageResponse(s, Result{}))
}

// leaveSession godoc
// @Summary Salir de una página
// @Description Descarta la sesión y su draft.
// @Tags pages
// @Param sessionID path string true "ID de sesión"
// @Success 204
// @Router /pages/sessions/{sessionID} [delete]
func (h *handler) leaveSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.Close(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.internal(w, "close session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// patchDraft godoc
// @Summary Editar campos del draft
// @Description Página de alta: title, description, location, startTime, endTime, image y categories. Detalle (con el formulario abierto): title, description, image, startTime, endTime.
// @Tags pages
// @Accept json
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Param payload body draftPatchRequest true "Campos a setear"
// @Success 200 {object} pageResponse
// @Failure 400 {string} string "invalid json / unknown field"
// @Failure 404 {string} string "session not found"
// @Failure 409 {string} string "edit form is not open"
// @Router /pages/sessions/{sessionID}/draft [patch]
func (h *handler) patchDraft(w http.ResponseWriter, r *http.Request, s *Session) {
	var req draftPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	var set func(name, value string) error
	switch s.Kind {
	case KindCreate:
		set = s.Create.SetField
		if req.Categories != nil {
			s.Create.SetCategories(*req.Categories)
		}
	default:
		if req.Categories != nil {
			http.Error(w, "categories are not editable here", http.StatusBadRequest)
			return
		}
		set = s.Detail.SetField
	}

	for name, value := range req.Fields {
		if err := set(name, value); err != nil {
			h.actionError(w, err)
			return
		}
	}

	h.saveAndRespond(w, r, s, Result{})
}

// submit godoc
// @Summary Enviar el draft
// @Description Alta: POST /events con createdBy fijo y categoryIds vacío; en éxito navega a "/". Detalle: PUT /events/{id} con el registro fusionado; en éxito cierra el formulario sin refrescar el evento. Los fallos del store vuelven como notificación (200).
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Failure 400 {string} string "invalid draft"
// @Failure 404 {string} string "session not found"
// @Failure 409 {string} string "edit form is not open"
// @Router /pages/sessions/{sessionID}/submit [post]
func (h *handler) submit(w http.ResponseWriter, r *http.Request, s *Session) {
	var (
		res Result
		err error
	)
	switch s.Kind {
	case KindCreate:
		res, err = h.ctrl.SubmitCreate(r.Context(), s.Create)
	default:
		res, err = h.ctrl.SaveEdit(r.Context(), s.Detail)
	}
	if err != nil {
		h.actionError(w, err)
		return
	}
	h.saveAndRespond(w, r, s, res)
}

// openEdit godoc
// @Summary Abrir el formulario de edición
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Router /pages/sessions/{sessionID}/edit [post]
func (h *handler) openEdit(w http.ResponseWriter, r *http.Request, s *Session) {
	s.Detail.OpenEdit()
	h.saveAndRespond(w, r, s, Result{})
}

// cancelEdit godoc
// @Summary Cerrar el formulario de edición
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Router /pages/sessions/{sessionID}/edit/cancel [post]
func (h *handler) cancelEdit(w http.ResponseWriter, r *http.Request, s *Session) {
	s.Detail.CloseEdit()
	h.saveAndRespond(w, r, s, Result{})
}

// requestDelete godoc
// @Summary Pedir borrado (paso 1)
// @Description Abre el diálogo de confirmación. No se envía nada al store.
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Router /pages/sessions/{sessionID}/delete [post]
func (h *handler) requestDelete(w http.ResponseWriter, r *http.Request, s *Session) {
	s.Detail.RequestDelete()
	h.saveAndRespond(w, r, s, Result{})
}

// confirmDelete godoc
// @Summary Confirmar borrado (paso 2)
// @Description DELETE /events/{id}. En éxito navega a "/"; en fallo el detalle queda igual con una notificación de error.
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Failure 409 {string} string "delete was not requested"
// @Router /pages/sessions/{sessionID}/delete/confirm [post]
func (h *handler) confirmDelete(w http.ResponseWriter, r *http.Request, s *Session) {
	res, err := h.ctrl.ConfirmDelete(r.Context(), s.Detail)
	if err != nil {
		h.actionError(w, err)
		return
	}
	h.saveAndRespond(w, r, s, res)
}

// cancelDelete godoc
// @Summary Cancelar borrado
// @Tags pages
// @Produce json
// @Param sessionID path string true "ID de sesión"
// @Success 200 {object} pageResponse
// @Router /pages/sessions/{sessionID}/delete/cancel [post]
func (h *handler) cancelDelete(w http.ResponseWriter, r *http.Request, s *Session) {
	s.Detail.CancelDelete()
	h.saveAndRespond(w, r, s, Result{})
}

func (h *handler) withSession(fn func(http.ResponseWriter, *http.Request, *Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sess.Load(r.Context(), chi.URLParam(r, "sessionID"))
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		if err != nil {
			h.internal(w, "load session", err)
			return
		}
		fn(w, r, s)
	}
}

func (h *handler) withDetail(fn func(http.ResponseWriter, *http.Request, *Session)) http.HandlerFunc {
	return h.withSession(func(w http.ResponseWriter, r *http.Request, s *Session) {
		if s.Kind != KindDetail {
			http.Error(w, "not a detail page", http.StatusConflict)
			return
		}
		fn(w, r, s)
	})
}

// saveAndRespond persiste el estado, salvo que la acción navegue fuera:
// en ese caso la sesión se descarta.
func (h *handler) saveAndRespond(w http.ResponseWriter, r *http.Request, s *Session, res Result) {
	if res.Navigated() {
		if err := h.sess.Close(r.Context(), s.ID); err != nil {
			h.log.Warn("close session failed", map[string]any{"session_id": s.ID, "error": err})
		}
		writeJSON(w, http.StatusOK, pageResponse{
			Navigate:     res.Navigate,
			Notification: res.Notification,
		})
		return
	}

	if err := h.sess.Save(r.Context(), s); err != nil {
		h.internal(w, "save session", err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(s, res))
}

func (h *handler) loadFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, events.ErrNotFound) {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, events.ErrInvalidInput) {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}
	http.Error(w, events.ErrLoadFailed.Error(), http.StatusBadGateway)
}

func (h *handler) actionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDraft), errors.Is(err, ErrUnknownField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotEditing), errors.Is(err, ErrDeleteNotRequested):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.internal(w, "page action", err)
	}
}

func (h *handler) internal(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", map[string]any{"error": err})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toPageResponse(s *Session, res Result) pageResponse {
	out := pageResponse{
		SessionID:    s.ID,
		Kind:         s.Kind,
		Notification: res.Notification,
	}

	switch s.Kind {
	case KindCreate:
		cats := s.Create.Categories
		if cats == nil {
			cats = []events.ID{}
		}
		out.Create = &createView{Draft: s.Create.Draft, Categories: cats}
	case KindDetail:
		d := s.Detail
		badges := make([]categoryBadge, 0, len(d.Event.CategoryIDs))
		for _, id := range d.Event.CategoryIDs {
			badges = append(badges, categoryBadge{ID: id, Name: events.CategoryName(d.Categories, id)})
		}
		out.Detail = &detailView{
			Event:         d.Event,
			Creator:       d.User,
			CreatorName:   d.CreatorName(),
			Categories:    badges,
			Editing:       d.Editing,
			Draft:         d.Draft,
			DeletePending: d.DeletePending,
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
