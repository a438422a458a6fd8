package equipment_stats

import (
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
)

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

// Handle GET /api/v1/equipment/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment/stats - Failed to count equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /equipment/stats - Stats retrieved: total=%d", stats.Total)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
