package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/internal/service/reports/models"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
)

var (
	admin = &domain.Actor{ID: "admin", Role: domain.RoleAdmin}
	sv1   = &domain.Actor{ID: "sv-1", Role: domain.RoleSupervisor}
)

func june(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func newService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	directory := directoryRepo.NewRepository()
	require.NoError(t, directory.AddEquipment(domain.Equipment{ID: "1", Name: "Digital Oscilloscope", Status: domain.EquipmentActive}))
	require.NoError(t, directory.AddEquipment(domain.Equipment{ID: "3", Name: "3D Printer", Status: domain.EquipmentActive}))
	require.NoError(t, directory.AddSupervisor(domain.Supervisor{ID: "sv-1", Name: "Dr. Sarah Johnson", Department: "Physics", Budget: 5000}))
	require.NoError(t, directory.AddSupervisor(domain.Supervisor{ID: "sv-2", Name: "Prof. Michael Chen", Department: "Engineering", Budget: 7500}))

	repo := bookingRepo.NewRepository()
	seed := []struct {
		equipment, supervisor, slot string
		day                         int
		status                      domain.BookingStatus
		cost                        float64
	}{
		{"1", "sv-1", "morning-1", 2, domain.StatusCompleted, 50},
		{"1", "sv-1", "morning-2", 2, domain.StatusApproved, 50},
		{"1", "sv-2", "morning-1", 3, domain.StatusPending, 50},
		{"3", "sv-2", "evening-1", 4, domain.StatusApproved, 70},
		{"3", "sv-1", "evening-1", 20, domain.StatusRejected, 70},
	}
	for _, b := range seed {
		_, err := repo.Create(ctx, &domain.Booking{
			EquipmentID: b.equipment, StudentID: "st", SupervisorID: b.supervisor,
			Date: june(b.day), SlotID: b.slot, Status: b.status, Cost: b.cost,
		})
		require.NoError(t, err)
	}

	return NewService(repo, directory, logger.NewNop())
}

func TestService_BookingReport_Totals(t *testing.T) {
	s := newService(t)

	resp, err := s.BookingReport(context.Background(), admin, &models.BookingReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.TotalBookings)
	assert.Equal(t, map[string]int{"pending": 1, "approved": 2, "rejected": 1, "completed": 1}, resp.ByStatus)
	assert.Equal(t, 170.0, resp.Revenue)

	require.Len(t, resp.Equipment, 2)
	assert.Equal(t, "1", resp.Equipment[0].EquipmentID)
	assert.Equal(t, "Digital Oscilloscope", resp.Equipment[0].EquipmentName)
	assert.Equal(t, 3, resp.Equipment[0].Bookings)
	assert.Equal(t, 100.0, resp.Equipment[0].Revenue)

	require.Len(t, resp.Supervisors, 2)
	assert.Equal(t, models.SupervisorSpending{
		SupervisorID: "sv-1", Name: "Dr. Sarah Johnson", Department: "Physics",
		Budget: 5000, Spent: 100, Remaining: 4900, Bookings: 3,
	}, resp.Supervisors[0])
	assert.Equal(t, 70.0, resp.Supervisors[1].Spent)
}

func TestService_BookingReport_Filters(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	from, to := june(1), june(3)
	resp, err := s.BookingReport(ctx, admin, &models.BookingReportRequest{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalBookings)
	assert.Equal(t, "2025-06-01", resp.From)

	resp, err = s.BookingReport(ctx, admin, &models.BookingReportRequest{Department: "engineering"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalBookings)
	require.Len(t, resp.Supervisors, 1)
	assert.Equal(t, "sv-2", resp.Supervisors[0].SupervisorID)

	resp, err = s.BookingReport(ctx, admin, &models.BookingReportRequest{EquipmentID: "3"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalBookings)
	assert.Equal(t, 70.0, resp.Revenue)

	_, err = s.BookingReport(ctx, admin, &models.BookingReportRequest{From: &to, To: &from})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_BookingReport_Access(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	resp, err := s.BookingReport(ctx, sv1, &models.BookingReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalBookings)
	require.Len(t, resp.Supervisors, 1)

	_, err = s.BookingReport(ctx, sv1, &models.BookingReportRequest{SupervisorID: "sv-2"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.BookingReport(ctx, &domain.Actor{ID: "st", Role: domain.RoleStudent}, &models.BookingReportRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.BookingReport(ctx, nil, &models.BookingReportRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
