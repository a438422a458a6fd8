package equipment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment/models"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
)

func newService(t *testing.T) *Service {
	t.Helper()
	repo := directoryRepo.NewRepository()
	require.NoError(t, repo.AddEquipment(domain.Equipment{ID: "1", Name: "Digital Oscilloscope", Place: "Lab A-101", Status: domain.EquipmentActive}))
	require.NoError(t, repo.AddEquipment(domain.Equipment{ID: "2", Name: "Spectrum Analyzer", Place: "Lab B-205", Status: domain.EquipmentMaintenance}))
	require.NoError(t, repo.AddEquipment(domain.Equipment{ID: "5", Name: "Laser Cutter", Place: "Maker Space", Status: domain.EquipmentRetired}))
	return NewService(repo, logger.NewNop())
}

func TestService_List(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		status  string
		wantIDs []string
		wantErr error
	}{
		{name: "all", wantIDs: []string{"1", "2", "5"}},
		{name: "all keyword", status: "all", wantIDs: []string{"1", "2", "5"}},
		{name: "by status capitalized", status: "Maintenance", wantIDs: []string{"2"}},
		{name: "by place", query: "maker", wantIDs: []string{"5"}},
		{name: "query and status", query: "lab", status: "active", wantIDs: []string{"1"}},
		{name: "unknown status", status: "broken", wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := s.List(ctx, tt.query, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(items))
			for _, e := range items {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_Stats(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.EquipmentStatsResponse{Total: 3, Active: 1, Maintenance: 1, Retired: 1}, stats)

	_, err = s.UpdateStatus(ctx, &domain.Actor{ID: "A1", Role: domain.RoleAdmin}, "2", "active")
	require.NoError(t, err)

	stats, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 0, stats.Maintenance)
}

func TestService_UpdateStatus(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	admin := &domain.Actor{ID: "admin", Role: domain.RoleAdmin}

	item, err := s.UpdateStatus(ctx, admin, "2", "active")
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentActive, item.Status)

	_, err = s.UpdateStatus(ctx, &domain.Actor{ID: "sv-1", Role: domain.RoleSupervisor}, "2", "retired")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.UpdateStatus(ctx, nil, "2", "retired")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.UpdateStatus(ctx, admin, "404", "active")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	_, err = s.UpdateStatus(ctx, admin, "2", "broken")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Get(ctx, "404")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}
