package get_availability

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// Request модель запроса доступности оборудования на дату
type Request struct {
	EquipmentID string    // ID оборудования
	Date        time.Time // Дата (без времени)
}

// Response модель ответа со статусами всех слотов
type Response struct {
	Date            time.Time
	EquipmentID     string
	EquipmentName   string
	EquipmentStatus string
	Place           string
	Slots           []Slot // В порядке каталога
	AvailableCount  int
}

// Slot модель слота с вычисленным статусом
type Slot struct {
	ID        string
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
	Cost      float64
	Status    string // available, booked_by_other, blocked_by_*
}
