package rules

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда праздник не найден
	ErrHolidayNotFound = errors.New("rules.repository: holiday not found")

	// ErrRuleNotFound возвращается, когда правило бронирования не найдено
	ErrRuleNotFound = errors.New("rules.repository: booking rule not found")

	// ErrBreakNotFound возвращается, когда технический перерыв не найден
	ErrBreakNotFound = errors.New("rules.repository: maintenance break not found")

	// ErrHolidayExists возвращается при попытке добавить второй праздник на ту же дату
	ErrHolidayExists = errors.New("rules.repository: holiday already exists for date")

	// ErrDuplicateID возвращается при попытке сохранить запись с существующим ID
	ErrDuplicateID = errors.New("rules.repository: duplicate id")
)
