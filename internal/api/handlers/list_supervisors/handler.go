package list_supervisors

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-LabBookingService/internal/service/supervisors"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service SupervisorService
	logger  Logger
}

func NewHandler(service SupervisorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/supervisors
// Query params: q (имя или email), department (название кафедры или all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /supervisors - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	params := FromQuery(r.URL.Query())

	resp, err := h.service.List(r.Context(), actor, params.Query, params.Department)
	if err != nil {
		switch {
		case errors.Is(err, supervisors.ErrAccessDenied):
			h.logger.Warn("GET /supervisors - Access denied: user_id=%s", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, supervisors.ErrInvalidInput):
			h.logger.Warn("GET /supervisors - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /supervisors - Failed to list supervisors: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /supervisors - Supervisors retrieved successfully: count=%d", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
