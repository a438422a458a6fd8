package availability

import (
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// dayState снимок всего, что влияет на доступность слотов оборудования в один день.
// Собирается один раз на вызов Resolve, проверки его не меняют.
type dayState struct {
	equipment     *domain.Equipment
	weekday       time.Weekday
	holiday       bool
	holidayKind   domain.HolidayKind
	halfDayCutoff types.TimeString
	rules         []*domain.BookingRule
	breaks        []*domain.MaintenanceBreak
	occupied      map[string]bool
}

// slotCheck возвращает статус блокировки и true, если правило сработало
type slotCheck func(day *dayState, slot domain.Slot) (domain.SlotStatus, bool)

// checks порядок важен: срабатывает первое правило
var checks = []slotCheck{
	checkEquipmentStatus,
	checkHoliday,
	checkWeekdayRestriction,
	checkTimeRange,
	checkMaintenanceBreak,
	checkOccupied,
}

func evaluate(day *dayState, slot domain.Slot) domain.SlotStatus {
	for _, check := range checks {
		if status, blocked := check(day, slot); blocked {
			return status
		}
	}
	return domain.SlotAvailable
}

// checkEquipmentStatus неактивное оборудование блокирует все слоты
func checkEquipmentStatus(day *dayState, _ domain.Slot) (domain.SlotStatus, bool) {
	if !day.equipment.IsBookable() {
		return domain.SlotBlockedByEquipmentStatus, true
	}
	return "", false
}

// checkHoliday Full блокирует весь день, Half блокирует слоты, начинающиеся с halfDayCutoff
func checkHoliday(day *dayState, slot domain.Slot) (domain.SlotStatus, bool) {
	if !day.holiday || holidaysSuppressed(day.rules) {
		return "", false
	}
	switch day.holidayKind {
	case domain.HolidayHalf:
		if !slot.StartTime.IsBefore(day.halfDayCutoff) {
			return domain.SlotBlockedByHoliday, true
		}
		return "", false
	default:
		return domain.SlotBlockedByHoliday, true
	}
}

// holidaysSuppressed включенное правило HolidayClosure(false) отключает блокировку праздниками
func holidaysSuppressed(rules []*domain.BookingRule) bool {
	for _, rule := range rules {
		if rule.Kind == domain.RuleHolidayClosure && !rule.ClosedOnHolidays {
			return true
		}
	}
	return false
}

// checkWeekdayRestriction закрытый день недели блокирует все слоты
func checkWeekdayRestriction(day *dayState, _ domain.Slot) (domain.SlotStatus, bool) {
	for _, rule := range day.rules {
		if rule.Kind == domain.RuleWeekday && rule.Weekday == day.weekday {
			return domain.SlotBlockedByRule, true
		}
	}
	return "", false
}

// checkTimeRange слот должен целиком лежать внутри каждого разрешенного диапазона
func checkTimeRange(day *dayState, slot domain.Slot) (domain.SlotStatus, bool) {
	for _, rule := range day.rules {
		if rule.Kind != domain.RuleTimeRange {
			continue
		}
		if slot.StartTime.IsBefore(rule.RangeStart) || slot.EndTime.IsAfter(rule.RangeEnd) {
			return domain.SlotBlockedByRule, true
		}
	}
	return "", false
}

// checkMaintenanceBreak перерыв в этот день недели, пересекающийся со слотом
func checkMaintenanceBreak(day *dayState, slot domain.Slot) (domain.SlotStatus, bool) {
	for _, b := range day.breaks {
		if b.AppliesOn(day.weekday) && b.Overlaps(slot.StartTime, slot.EndTime) {
			return domain.SlotBlockedByBreak, true
		}
	}
	return "", false
}

// checkOccupied слот занят Pending или Approved бронированием
func checkOccupied(day *dayState, slot domain.Slot) (domain.SlotStatus, bool) {
	if day.occupied[slot.ID] {
		return domain.SlotBookedByOther, true
	}
	return "", false
}
