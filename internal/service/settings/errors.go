package settings

import "errors"

var (
	// ErrNotFound возвращается, когда праздник, правило или перерыв не найдены
	ErrNotFound = errors.New("setting not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAlreadyExists возвращается при попытке добавить второй праздник на ту же дату
	ErrAlreadyExists = errors.New("setting already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
