package handlers

import (
	"net/http"

	"github.com/alfagnish/usuarios/internal/events"
	"github.com/alfagnish/usuarios/internal/users"
	"github.com/go-chi/chi/v5"
)

// UsersHandler provides the CRUD endpoints over the user store.
type UsersHandler struct {
	store users.Store
	hub   *events.Hub
}

// NewUsersHandler creates a new UsersHandler. Successful mutations are
// published to hub.
func NewUsersHandler(store users.Store, hub *events.Hub) *UsersHandler {
	return &UsersHandler{store: store, hub: hub}
}

// Routes registers user routes on the given chi router. The two-segment
// pattern goes before {id} so the more specific route is never shadowed.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{year}/{month}", h.EchoQuery)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List returns all users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// EchoQuery returns the query string as a JSON object. Keys given more than
// once map to an array.
func (h *UsersHandler) EchoQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out := make(map[string]interface{}, len(q))
	for k, vs := range q {
		if len(vs) == 1 {
			out[k] = vs[0]
		} else {
			out[k] = vs
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Get returns a single user.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := users.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	u, err := h.store.FindByID(id)
	if err != nil {
		writeStoreError(w, r, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Create adds a new user.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeNombre(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	name, err := users.NameFromInput(raw)
	if err != nil {
		writeStoreError(w, r, err, "mensajeError")
		return
	}

	u, err := h.store.Create(name)
	if err != nil {
		writeStoreError(w, r, err, "mensajeError")
		return
	}

	h.hub.Publish(events.New(events.TypeCreated, u))
	writeJSON(w, http.StatusOK, u)
}

// Update renames an existing user. An unknown id is reported before any
// validation failure.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeNombre(w, r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	id, ok := users.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if _, err := h.store.FindByID(id); err != nil {
		writeStoreError(w, r, err, "mensaje")
		return
	}

	name, err := users.NameFromInput(raw)
	if err != nil {
		writeStoreError(w, r, err, "mensaje")
		return
	}

	u, err := h.store.Update(id, name)
	if err != nil {
		writeStoreError(w, r, err, "mensaje")
		return
	}

	h.hub.Publish(events.New(events.TypeUpdated, u))
	writeJSON(w, http.StatusOK, u)
}

// Delete removes a user and returns the removed record.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := users.ParseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	u, err := h.store.Delete(id)
	if err != nil {
		writeStoreError(w, r, err, "error")
		return
	}

	h.hub.Publish(events.New(events.TypeDeleted, u))
	writeJSON(w, http.StatusOK, u)
}
