package directory

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда оборудование не найдено
	ErrEquipmentNotFound = errors.New("directory.repository: equipment not found")

	// ErrSupervisorNotFound возвращается, когда руководитель не найден
	ErrSupervisorNotFound = errors.New("directory.repository: supervisor not found")

	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("directory.repository: student not found")

	// ErrDuplicateID возвращается при повторной загрузке записи с тем же ID
	ErrDuplicateID = errors.New("directory.repository: duplicate id")
)
