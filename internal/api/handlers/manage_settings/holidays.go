package manage_settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/settings/models"
)

// ListHolidays GET /api/v1/settings/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	const route = "GET /settings/holidays"

	holidays, err := h.service.ListHolidays(r.Context())
	if err != nil {
		h.respondError(w, route, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, holidays)
}

// AddHoliday POST /api/v1/settings/holidays
func (h *Handler) AddHoliday(w http.ResponseWriter, r *http.Request) {
	const route = "POST /settings/holidays"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	var req models.CreateHolidayRequest
	if !h.decode(w, r, route, &req) {
		return
	}

	holiday, err := h.service.AddHoliday(r.Context(), actor, &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Holiday added: id=%s, date=%s", route, holiday.ID, holiday.Date)
	handlers.RespondJSON(w, http.StatusCreated, holiday)
}

// RemoveHoliday DELETE /api/v1/settings/holidays/{id}
func (h *Handler) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /settings/holidays/{id}"

	actor, ok := h.actor(w, r, route)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.service.RemoveHoliday(r.Context(), actor, id); err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Holiday removed: id=%s", route, id)
	handlers.RespondNoContent(w)
}
