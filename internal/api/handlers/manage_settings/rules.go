package manage_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/settings/models"
)

// ListRules GET /api/v1/settings/rules
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	const route = "GET /settings/rules"

	rules, err := h.service.ListRules(r.Context())
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, rules)
}

// AddRule POST /api/v1/settings/rules
func (h *Handler) AddRule(w http.ResponseWriter, r *http.Request) {
	const route = "POST /settings/rules"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	var req models.CreateRuleRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	rule, err := h.service.AddRule(r.Context(), actor, &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Rule added: id=%s, type=%s", route, rule.ID, rule.Kind)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}

// RemoveRule DELETE /api/v1/settings/rules/{id}
func (h *Handler) RemoveRule(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /settings/rules/{id}"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.service.RemoveRule(r.Context(), actor, id); err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Rule removed: id=%s", route, id)
	handlers.RespondNoContent(w)
}

// ToggleRule PATCH /api/v1/settings/rules/{id}/toggle
func (h *Handler) ToggleRule(w http.ResponseWriter, r *http.Request) {
	const route = "PATCH /settings/rules/{id}/toggle"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	rule, err := h.service.ToggleRule(r.Context(), actor, id)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Rule toggled: id=%s, enabled=%t", route, id, rule.Enabled)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
