package list_equipment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment"
	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment/models"
)

const msgInvalidParams = "некорректные параметры запроса"

type Handler struct {
	service EquipmentService
	logger  Logger
}

func NewHandler(service EquipmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment
// Query params: q (поиск), status (active|maintenance|retired|all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")

	items, err := h.service.List(r.Context(), query, status)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrInvalidInput):
			h.logger.Warn("GET /equipment - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment - Equipment retrieved successfully: count=%d", len(items))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainList(items))
}
