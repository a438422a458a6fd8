package manage_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/settings/models"
)

// ListBreaks GET /api/v1/settings/breaks
func (h *Handler) ListBreaks(w http.ResponseWriter, r *http.Request) {
	const route = "GET /settings/breaks"

	breaks, err := h.service.ListBreaks(r.Context())
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, breaks)
}

// AddBreak POST /api/v1/settings/breaks
func (h *Handler) AddBreak(w http.ResponseWriter, r *http.Request) {
	const route = "POST /settings/breaks"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	var req models.CreateBreakRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	brk, err := h.service.AddBreak(r.Context(), actor, &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Break added: id=%s, %s-%s", route, brk.ID, brk.StartTime, brk.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, brk)
}

// RemoveBreak DELETE /api/v1/settings/breaks/{id}
func (h *Handler) RemoveBreak(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /settings/breaks/{id}"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.service.RemoveBreak(r.Context(), actor, id); err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Break removed: id=%s", route, id)
	handlers.RespondNoContent(w)
}

// ToggleBreak PATCH /api/v1/settings/breaks/{id}/toggle
func (h *Handler) ToggleBreak(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /settings/breaks/{id}/toggle"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	brk, err := h.service.ToggleBreak(r.Context(), actor, id)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Break toggled: id=%s, enabled=%t", route, id, brk.Enabled)
	handlers.RespondJSON(w, http.StatusOK, brk)
}
