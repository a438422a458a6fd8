package decide_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("decide_booking: booking not found")

	// ErrNotPending возвращается, когда бронирование уже не ожидает решения
	ErrNotPending = errors.New("decide_booking: booking is not pending")

	// ErrForbidden возвращается, когда пользователь не является руководителем бронирования
	ErrForbidden = errors.New("decide_booking: forbidden")

	// ErrLockTimeout возвращается, когда не удалось дождаться блокировки слота
	ErrLockTimeout = errors.New("decide_booking: slot lock timeout")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_booking: internal error")
)
