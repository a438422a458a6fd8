package slotcatalog

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот отсутствует в каталоге
	ErrSlotNotFound = errors.New("slotcatalog: slot not found")

	// ErrInvalidCatalog возвращается при некорректной сетке слотов
	ErrInvalidCatalog = errors.New("slotcatalog: invalid slot catalog")
)
