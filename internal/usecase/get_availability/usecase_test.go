package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	rulesRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/rules"
	"github.com/m04kA/SMC-LabBookingService/internal/service/availability"
	"github.com/m04kA/SMC-LabBookingService/internal/service/slotcatalog"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) IncResolution(string) {}

type mockResolver struct{ mock.Mock }

func (m *mockResolver) Resolve(ctx context.Context, equipmentID string, date time.Time) ([]domain.SlotAvailability, error) {
	args := m.Called(ctx, equipmentID, date)
	if v := args.Get(0); v != nil {
		return v.([]domain.SlotAvailability), args.Error(1)
	}
	return nil, args.Error(1)
}

var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func newDirectory(t *testing.T) *directoryRepo.Repository {
	t.Helper()
	directory := directoryRepo.NewRepository()
	require.NoError(t, directory.AddEquipment(domain.Equipment{
		ID: "E1", Name: "Digital Oscilloscope", Status: domain.EquipmentActive, Place: "Physics Lab 101",
	}))
	return directory
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(t)
	rules := rulesRepo.NewRepository()
	bookings := bookingRepo.NewRepository()
	catalog, err := slotcatalog.NewCatalog(slotcatalog.DefaultSlots())
	require.NoError(t, err)

	_, err = rules.AddBreak(ctx, &domain.MaintenanceBreak{
		Name: "Lunch Break", StartTime: "12:00", EndTime: "14:00", Weekdays: []time.Weekday{time.Monday}, Enabled: true,
	})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, &domain.Booking{
		EquipmentID: "E1", StudentID: "S1", SupervisorID: "SV1", Date: monday, SlotID: "morning-1", Status: domain.StatusPending, Cost: 50,
	})
	require.NoError(t, err)

	resolver := availability.NewResolver(rules, catalog, directory, bookings, "", nopMetrics{}, logger.NewNop())
	uc := NewUseCase(resolver, directory, logger.NewNop())

	// время суток отбрасывается
	resp, err := uc.Execute(ctx, &Request{EquipmentID: "E1", Date: monday.Add(15 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, monday, resp.Date)
	assert.Equal(t, "Digital Oscilloscope", resp.EquipmentName)
	assert.Equal(t, "active", resp.EquipmentStatus)
	assert.Equal(t, "Physics Lab 101", resp.Place)
	require.Len(t, resp.Slots, 7)
	assert.Equal(t, 5, resp.AvailableCount)

	assert.Equal(t, "morning-1", resp.Slots[0].ID)
	assert.Equal(t, string(domain.SlotBookedByOther), resp.Slots[0].Status)
	assert.Equal(t, 50.0, resp.Slots[0].Cost)
	assert.Equal(t, string(domain.SlotBlockedByBreak), resp.Slots[2].Status)
	assert.Equal(t, string(domain.SlotAvailable), resp.Slots[6].Status)
	assert.Equal(t, 80.0, resp.Slots[6].Cost)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	ctx := context.Background()
	directory := newDirectory(t)

	resolver := &mockResolver{}
	resolver.On("Resolve", mock.Anything, "E1", monday).Return(nil, errors.New("boom")).Once()
	uc := NewUseCase(resolver, directory, logger.NewNop())

	_, err := uc.Execute(ctx, &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{EquipmentID: "E1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{EquipmentID: "E404", Date: monday})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	_, err = uc.Execute(ctx, &Request{EquipmentID: "E1", Date: monday})
	assert.ErrorIs(t, err, ErrInternal)

	resolver.AssertExpectations(t)
}
