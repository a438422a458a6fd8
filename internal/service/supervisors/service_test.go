package supervisors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
)

var admin = &domain.Actor{ID: "A1", Role: domain.RoleAdmin}

func newService(t *testing.T) *Service {
	t.Helper()
	repo := directoryRepo.NewRepository()
	for _, sv := range []domain.Supervisor{
		{ID: "SV1", Name: "Dr. Sarah Wilson", Email: "s.wilson@university.edu", Department: "Physics", Budget: 5000},
		{ID: "SV2", Name: "Prof. Michael Chen", Email: "m.chen@university.edu", Department: "Chemistry", Budget: 7500},
		{ID: "SV3", Name: "Dr. Emily Davis", Email: "e.davis@university.edu", Department: "Physics", Budget: 3000},
	} {
		require.NoError(t, repo.AddSupervisor(sv))
	}
	return NewService(repo, logger.NewNop())
}

func TestService_List(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		query      string
		department string
		wantIDs    []string
	}{
		{name: "all", wantIDs: []string{"SV1", "SV2", "SV3"}},
		{name: "all keyword", department: "all", wantIDs: []string{"SV1", "SV2", "SV3"}},
		{name: "by name case insensitive", query: "WILSON", wantIDs: []string{"SV1"}},
		{name: "by email", query: "m.chen@", wantIDs: []string{"SV2"}},
		{name: "by department", department: "Physics", wantIDs: []string{"SV1", "SV3"}},
		{name: "query and department", query: "dr.", department: "Physics", wantIDs: []string{"SV1", "SV3"}},
		{name: "no match", query: "wilson", department: "Chemistry", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.List(ctx, admin, tt.query, tt.department)
			require.NoError(t, err)

			ids := make([]string, 0, len(resp.Supervisors))
			for _, sv := range resp.Supervisors {
				ids = append(ids, sv.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Total)
			assert.Equal(t, []string{"Chemistry", "Physics"}, resp.Departments)
		})
	}
}

func TestService_List_Budget(t *testing.T) {
	resp, err := newService(t).List(context.Background(), admin, "chen", "")
	require.NoError(t, err)
	require.Len(t, resp.Supervisors, 1)
	assert.Equal(t, 7500.0, resp.Supervisors[0].Budget)
	assert.Equal(t, "Chemistry", resp.Supervisors[0].Department)
}

func TestService_List_Errors(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.List(ctx, &domain.Actor{ID: "S1", Role: domain.RoleStudent}, "", "")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.List(ctx, nil, "", "")
	assert.ErrorIs(t, err, ErrAccessDenied)

	long := make([]byte, domain.MaxSearchQueryLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = s.List(ctx, admin, string(long), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type failingDirectory struct{}

func (failingDirectory) ListSupervisors(context.Context) ([]*domain.Supervisor, error) {
	return nil, errors.New("directory unavailable")
}

func TestService_List_DirectoryError(t *testing.T) {
	s := NewService(failingDirectory{}, logger.NewNop())
	_, err := s.List(context.Background(), admin, "", "")
	assert.ErrorIs(t, err, ErrInternal)
}
