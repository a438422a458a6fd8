package availability

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("availability: equipment not found")

	// ErrSlotNotFound возвращается, когда слота нет в каталоге оборудования
	ErrSlotNotFound = errors.New("availability: slot not found")

	// ErrInternal возвращается при ошибках чтения хранилищ
	ErrInternal = errors.New("availability: internal error")
)
