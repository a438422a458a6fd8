package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate       = "не указан параметр date"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
	msgEquipmentNotFound = "оборудование не найдено"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment/{equipmentId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID := mux.Vars(r)["equipmentId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /equipment/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /equipment/{id}/availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		EquipmentID: equipmentID,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id}/availability - Equipment not found: equipment_id=%s", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /equipment/{id}/availability - Failed to resolve: equipment_id=%s, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /equipment/{id}/availability - equipment_id=%s, date=%s, available=%d",
		equipmentID, dateStr, result.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
