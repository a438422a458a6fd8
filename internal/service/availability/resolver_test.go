package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	rulesRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/rules"
	"github.com/m04kA/SMC-LabBookingService/internal/service/slotcatalog"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) IncResolution(string) {}

type fixture struct {
	rules     *rulesRepo.Repository
	directory *directoryRepo.Repository
	bookings  *bookingRepo.Repository
	resolver  *Resolver
}

var (
	monday  = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	directory := directoryRepo.NewRepository()
	require.NoError(t, directory.AddEquipment(domain.Equipment{ID: "E1", Name: "Oscilloscope", Status: domain.EquipmentActive}))
	require.NoError(t, directory.AddEquipment(domain.Equipment{ID: "E2", Name: "Analyzer", Status: domain.EquipmentMaintenance}))

	catalog, err := slotcatalog.NewCatalog(slotcatalog.DefaultSlots())
	require.NoError(t, err)

	f := &fixture{
		rules:     rulesRepo.NewRepository(),
		directory: directory,
		bookings:  bookingRepo.NewRepository(),
	}
	f.resolver = NewResolver(f.rules, catalog, directory, f.bookings, "", nopMetrics{}, logger.NewNop())
	return f
}

func statuses(t *testing.T, f *fixture, equipmentID string, date time.Time) map[string]domain.SlotStatus {
	t.Helper()
	result, err := f.resolver.Resolve(context.Background(), equipmentID, date)
	require.NoError(t, err)
	out := make(map[string]domain.SlotStatus, len(result))
	for _, s := range result {
		out[s.Slot.ID] = s.Status
	}
	return out
}

func assertAll(t *testing.T, got map[string]domain.SlotStatus, want domain.SlotStatus) {
	t.Helper()
	require.Len(t, got, 7)
	for id, status := range got {
		assert.Equal(t, want, status, "slot %s", id)
	}
}

func TestResolve_AllAvailable(t *testing.T) {
	f := newFixture(t)
	assertAll(t, statuses(t, f, "E1", monday), domain.SlotAvailable)
}

func TestResolve_KeepsCatalogOrder(t *testing.T) {
	f := newFixture(t)
	result, err := f.resolver.Resolve(context.Background(), "E1", monday)
	require.NoError(t, err)
	for i, slot := range slotcatalog.DefaultSlots() {
		assert.Equal(t, slot.ID, result[i].Slot.ID)
	}
}

func TestResolve_InactiveEquipment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// даже праздник и занятый слот не меняют причину
	_, err := f.rules.AddHoliday(ctx, &domain.Holiday{Name: "Day off", Date: monday, Kind: domain.HolidayFull})
	require.NoError(t, err)

	assertAll(t, statuses(t, f, "E2", monday), domain.SlotBlockedByEquipmentStatus)

	_, err = f.directory.UpdateEquipmentStatus(ctx, "E1", domain.EquipmentRetired)
	require.NoError(t, err)
	assertAll(t, statuses(t, f, "E1", tuesday), domain.SlotBlockedByEquipmentStatus)
}

func TestResolve_FullHoliday(t *testing.T) {
	f := newFixture(t)
	_, err := f.rules.AddHoliday(context.Background(), &domain.Holiday{Name: "Holiday", Date: monday, Kind: domain.HolidayFull})
	require.NoError(t, err)

	assertAll(t, statuses(t, f, "E1", monday), domain.SlotBlockedByHoliday)
	assertAll(t, statuses(t, f, "E1", tuesday), domain.SlotAvailable)
}

func TestResolve_HalfHoliday(t *testing.T) {
	f := newFixture(t)
	_, err := f.rules.AddHoliday(context.Background(), &domain.Holiday{Name: "Holi", Date: monday, Kind: domain.HolidayHalf})
	require.NoError(t, err)

	got := statuses(t, f, "E1", monday)
	assert.Equal(t, domain.SlotAvailable, got["morning-1"])
	assert.Equal(t, domain.SlotAvailable, got["morning-2"])
	assert.Equal(t, domain.SlotBlockedByHoliday, got["afternoon-1"])
	assert.Equal(t, domain.SlotBlockedByHoliday, got["night-1"])
}

func TestResolve_HalfHolidayContinuesEvaluation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.rules.AddHoliday(ctx, &domain.Holiday{Name: "Holi", Date: monday, Kind: domain.HolidayHalf})
	require.NoError(t, err)
	_, err = f.rules.AddBreak(ctx, &domain.MaintenanceBreak{
		Name: "Morning Maintenance", StartTime: "08:00", EndTime: "09:00",
		Weekdays: []time.Weekday{time.Monday}, Enabled: true,
	})
	require.NoError(t, err)

	got := statuses(t, f, "E1", monday)
	assert.Equal(t, domain.SlotBlockedByBreak, got["morning-1"])
	assert.Equal(t, domain.SlotAvailable, got["morning-2"])
	assert.Equal(t, domain.SlotBlockedByHoliday, got["afternoon-1"])
}

func TestResolve_HolidayClosureFalseSuppressesHolidays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.rules.AddHoliday(ctx, &domain.Holiday{Name: "Holiday", Date: monday, Kind: domain.HolidayFull})
	require.NoError(t, err)
	rule, err := f.rules.AddRule(ctx, &domain.BookingRule{Kind: domain.RuleHolidayClosure, ClosedOnHolidays: false, Enabled: true})
	require.NoError(t, err)

	assertAll(t, statuses(t, f, "E1", monday), domain.SlotAvailable)

	_, err = f.rules.ToggleRule(ctx, rule.ID)
	require.NoError(t, err)
	assertAll(t, statuses(t, f, "E1", monday), domain.SlotBlockedByHoliday)
}

func TestResolve_WeekdayRestriction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rule, err := f.rules.AddRule(ctx, &domain.BookingRule{Kind: domain.RuleWeekday, Weekday: time.Monday, Enabled: true})
	require.NoError(t, err)

	assertAll(t, statuses(t, f, "E1", monday), domain.SlotBlockedByRule)
	assertAll(t, statuses(t, f, "E1", tuesday), domain.SlotAvailable)

	// переключение правила действует на следующий вызов
	_, err = f.rules.ToggleRule(ctx, rule.ID)
	require.NoError(t, err)
	assertAll(t, statuses(t, f, "E1", monday), domain.SlotAvailable)
}

func TestResolve_TimeRange(t *testing.T) {
	f := newFixture(t)
	_, err := f.rules.AddRule(context.Background(), &domain.BookingRule{
		Kind: domain.RuleTimeRange, RangeStart: "09:00", RangeEnd: "18:00", Enabled: true,
	})
	require.NoError(t, err)

	got := statuses(t, f, "E1", monday)
	assert.Equal(t, domain.SlotBlockedByRule, got["morning-1"]) // 08:00 раньше начала
	assert.Equal(t, domain.SlotAvailable, got["morning-2"])
	assert.Equal(t, domain.SlotAvailable, got["evening-1"]) // 16-18 ровно до конца
	assert.Equal(t, domain.SlotBlockedByRule, got["evening-2"])
	assert.Equal(t, domain.SlotBlockedByRule, got["night-1"])
}

func TestResolve_DisabledRuleIgnored(t *testing.T) {
	f := newFixture(t)
	_, err := f.rules.AddRule(context.Background(), &domain.BookingRule{Kind: domain.RuleWeekday, Weekday: time.Monday, Enabled: false})
	require.NoError(t, err)

	assertAll(t, statuses(t, f, "E1", monday), domain.SlotAvailable)
}

func TestResolve_MaintenanceBreak(t *testing.T) {
	f := newFixture(t)
	_, err := f.rules.AddBreak(context.Background(), &domain.MaintenanceBreak{
		Name: "Lunch", StartTime: "13:00", EndTime: "14:00",
		Weekdays: []time.Weekday{time.Monday, time.Friday}, Enabled: true,
	})
	require.NoError(t, err)

	got := statuses(t, f, "E1", monday)
	assert.Equal(t, domain.SlotBlockedByBreak, got["afternoon-1"])
	assert.Equal(t, domain.SlotAvailable, got["morning-2"])
	assert.Equal(t, domain.SlotAvailable, got["afternoon-2"])

	assertAll(t, statuses(t, f, "E1", tuesday), domain.SlotAvailable)
}

func TestResolve_BookedByOther(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.bookings.Create(ctx, &domain.Booking{
		EquipmentID: "E1", StudentID: "S1", SupervisorID: "SV1",
		Date: tuesday, SlotID: "morning-1", Status: domain.StatusPending,
	})
	require.NoError(t, err)

	got := statuses(t, f, "E1", tuesday)
	assert.Equal(t, domain.SlotBookedByOther, got["morning-1"])
	assert.Equal(t, domain.SlotAvailable, got["morning-2"])
	assertAll(t, statuses(t, f, "E1", monday), domain.SlotAvailable)

	_, err = f.bookings.CompareAndSetStatus(ctx, created.ID, bookingRepo.StatusUpdate{From: domain.StatusPending, To: domain.StatusRejected})
	require.NoError(t, err)
	assertAll(t, statuses(t, f, "E1", tuesday), domain.SlotAvailable)
}

func TestResolve_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.rules.AddHoliday(ctx, &domain.Holiday{Name: "Holi", Date: monday, Kind: domain.HolidayHalf})
	require.NoError(t, err)

	first, err := f.resolver.Resolve(ctx, "E1", monday)
	require.NoError(t, err)
	second, err := f.resolver.Resolve(ctx, "E1", monday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slot, err := f.resolver.ResolveSlot(ctx, "E1", monday, "evening-1")
	require.NoError(t, err)
	assert.True(t, slot.IsAvailable())
	assert.Equal(t, 70.0, slot.Slot.BaseCost)

	_, err = f.resolver.ResolveSlot(ctx, "E1", monday, "unknown")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	_, err = f.resolver.ResolveSlot(ctx, "E404", monday, "evening-1")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestResolve_CustomHalfDayCutoff(t *testing.T) {
	f := newFixture(t)
	catalog, err := slotcatalog.NewCatalog(slotcatalog.DefaultSlots())
	require.NoError(t, err)
	resolver := NewResolver(f.rules, catalog, f.directory, f.bookings, "16:00", nopMetrics{}, logger.NewNop())

	_, err = f.rules.AddHoliday(context.Background(), &domain.Holiday{Name: "Holi", Date: monday, Kind: domain.HolidayHalf})
	require.NoError(t, err)

	result, err := resolver.Resolve(context.Background(), "E1", monday)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, result[3].Status) // 14:00-16:00
	assert.Equal(t, domain.SlotBlockedByHoliday, result[4].Status)
}
