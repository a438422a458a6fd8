package get_equipment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment"
	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment/models"
)

const msgNotFound = "оборудование не найдено"

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

// Handle GET /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID := mux.Vars(r)["equipmentId"]

	item, err := h.service.Get(r.Context(), equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, equipment.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id} - Equipment not found: equipment_id=%s", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /equipment/{id} - Failed to get equipment: equipment_id=%s, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainEquipment(item))
}
