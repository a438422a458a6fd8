package request_booking

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("request_booking: equipment not found")

	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("request_booking: student not found")

	// ErrSlotNotFound возвращается, когда слота нет в каталоге оборудования
	ErrSlotNotFound = errors.New("request_booking: slot not found")

	// ErrSlotUnavailable возвращается, когда слот недоступен в момент запроса
	ErrSlotUnavailable = errors.New("request_booking: slot is not available")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("request_booking: invalid booking date")

	// ErrForbidden возвращается, когда роль пользователя не позволяет бронировать
	ErrForbidden = errors.New("request_booking: forbidden")

	// ErrLockTimeout возвращается, когда не удалось дождаться блокировки слота; ничего не сохранено
	ErrLockTimeout = errors.New("request_booking: slot lock timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_booking: internal error")
)
