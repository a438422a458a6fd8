package request_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	requestBooking "github.com/m04kA/SMC-LabBookingService/internal/usecase/request_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные запроса"
	msgPastDate           = "нельзя бронировать прошедшую дату"
	msgForbidden          = "бронировать оборудование могут только студенты"
	msgStudentNotFound    = "студент не найден"
	msgEquipmentNotFound  = "оборудование не найдено"
	msgSlotNotFound       = "слот не найден"
	msgSlotUnavailable    = "выбранный слот недоступен"
	msgLockTimeout        = "слот сейчас занят другим запросом, повторите попытку"
)

type Handler struct {
	useCase RequestBookingUseCase
	logger  Logger
}

func NewHandler(useCase RequestBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RequestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, requestBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: user_id=%s, equipment_id=%s, slot_id=%s",
				actor.ID, req.EquipmentID, req.SlotID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, requestBooking.ErrEquipmentNotFound):
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, requestBooking.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, requestBooking.ErrStudentNotFound):
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, requestBooking.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, requestBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, requestBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, requestBooking.ErrLockTimeout):
			h.logger.Warn("POST /bookings - Lock timeout: user_id=%s, equipment_id=%s", actor.ID, req.EquipmentID)
			handlers.RespondServiceUnavailable(w, msgLockTimeout)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, equipment_id=%s, error=%v",
				actor.ID, req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, equipment_id=%s",
		result.ID, actor.ID, result.EquipmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
