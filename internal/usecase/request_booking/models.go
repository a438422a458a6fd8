package request_booking

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	Actor       *domain.Actor // Текущий пользователь; бронирует от своего имени
	EquipmentID string        // ID оборудования
	Date        time.Time     // Дата бронирования (без времени)
	SlotID      string        // ID слота из каталога
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string
	EquipmentID  string
	StudentID    string
	SupervisorID string
	Date         time.Time
	SlotID       string
	Status       string
	Cost         float64

	// Денормализованные данные
	EquipmentName string
	SlotName      string
	StartTime     types.TimeString
	EndTime       types.TimeString

	CreatedAt time.Time
}
