package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotOccupied возвращается, когда на слот уже есть активное бронирование
	ErrSlotOccupied = errors.New("booking.repository: slot already occupied")

	// ErrStatusMismatch возвращается, когда текущий статус не совпадает с ожидаемым (compare-and-set)
	ErrStatusMismatch = errors.New("booking.repository: status mismatch")

	// ErrInvalidBooking возвращается при попытке сохранить некорректное бронирование
	ErrInvalidBooking = errors.New("booking.repository: invalid booking")
)
