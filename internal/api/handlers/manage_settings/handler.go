package manage_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LabBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры настройки"
	msgNotFound           = "настройка не найдена"
	msgAlreadyExists      = "настройка уже существует"
	msgForbidden          = "изменять настройки может только администратор"
)

// Handler обслуживает праздники, правила бронирования и технические перерывы
type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// actor достает пользователя из контекста, при отсутствии отвечает 401
func (h *Handler) actor(w http.ResponseWriter, r *http.Request, route string) (*domain.Actor, bool) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return nil, false
	}
	return actor, true
}

// decode читает тело запроса, при ошибке отвечает 400
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, dst interface{}) bool {
	if err := handlers.DecodeJSON(r, dst); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

// respondError маппит ошибки сервиса настроек на HTTP статусы
func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, settings.ErrNotFound):
		h.logger.Warn("%s - Not found: %v", route, err)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, settings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, settings.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondError(w, http.StatusBadRequest, invalidInputMessage(err))

	case errors.Is(err, settings.ErrAlreadyExists):
		h.logger.Warn("%s - Already exists: %v", route, err)
		handlers.RespondConflict(w, msgAlreadyExists)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

// invalidInputMessage отдает клиенту причину ошибки валидации
func invalidInputMessage(err error) string {
	return msgInvalidInput + ": " + err.Error()
}
