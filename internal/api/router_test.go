package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingReportHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/booking_report"
	decideBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/decide_booking"
	equipmentStatsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/equipment_stats"
	getAvailabilityHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_booking"
	getEquipmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_equipment"
	listBookingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_bookings"
	listEquipmentHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_equipment"
	listSupervisorsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/list_supervisors"
	manageSettingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/manage_settings"
	requestBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/request_booking"
	updateEquipmentStatusHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/update_equipment_status"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	rulesRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/rules"
	"github.com/m04kA/SMC-LabBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-LabBookingService/internal/service/bookings"
	equipmentService "github.com/m04kA/SMC-LabBookingService/internal/service/equipment"
	equipmentModels "github.com/m04kA/SMC-LabBookingService/internal/service/equipment/models"
	reportsService "github.com/m04kA/SMC-LabBookingService/internal/service/reports"
	settingsService "github.com/m04kA/SMC-LabBookingService/internal/service/settings"
	supervisorsService "github.com/m04kA/SMC-LabBookingService/internal/service/supervisors"
	supervisorModels "github.com/m04kA/SMC-LabBookingService/internal/service/supervisors/models"
	"github.com/m04kA/SMC-LabBookingService/internal/service/slotcatalog"
	decideBookingUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/decide_booking"
	getAvailabilityUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_availability"
	requestBookingUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/request_booking"
	"github.com/m04kA/SMC-LabBookingService/pkg/keylock"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
	"github.com/m04kA/SMC-LabBookingService/pkg/metrics"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type caller struct {
	id   string
	role domain.Role
}

var (
	anonymous  = caller{}
	student1   = caller{"S1", domain.RoleStudent}
	student2   = caller{"S2", domain.RoleStudent}
	supervisor = caller{"SV1", domain.RoleSupervisor}
	admin      = caller{"admin", domain.RoleAdmin}
)

type testServer struct {
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	directory := directoryRepo.NewRepository()
	require.NoError(t, directory.AddEquipment(domain.Equipment{ID: "E1", Name: "Digital Oscilloscope", Status: domain.EquipmentActive, Place: "Lab 101"}))
	require.NoError(t, directory.AddEquipment(domain.Equipment{ID: "E2", Name: "3D Printer", Status: domain.EquipmentMaintenance}))
	require.NoError(t, directory.AddSupervisor(domain.Supervisor{ID: "SV1", Name: "Dr. Sarah Wilson", Email: "s.wilson@university.edu", Department: "Physics", Budget: 5000}))
	require.NoError(t, directory.AddSupervisor(domain.Supervisor{ID: "SV2", Name: "Prof. Michael Chen", Email: "m.chen@university.edu", Department: "Chemistry", Budget: 7500}))
	require.NoError(t, directory.AddStudent(domain.Student{ID: "S1", Name: "Alex", SupervisorID: "SV1"}))
	require.NoError(t, directory.AddStudent(domain.Student{ID: "S2", Name: "Maria", SupervisorID: "SV1"}))

	catalog, err := slotcatalog.NewCatalog(slotcatalog.DefaultSlots())
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	collector := metrics.NewWithRegisterer("test", registry)
	clock := fixedTime{now: now}
	log := logger.NewNop()

	bookings := bookingRepo.NewRepositoryWithClock(clock.Now)
	rules := rulesRepo.NewRepository()
	locker := keylock.WithWaitTimeout(keylock.NewLocalLocker(), time.Second)

	resolver := availability.NewResolver(rules, catalog, directory, bookings, "", collector, log)
	bookingSvc := bookingsService.NewService(bookings, directory, catalog, collector, clock, log)
	equipmentSvc := equipmentService.NewService(directory, log)

	h := Handlers{
		RequestBooking: requestBookingHandler.NewHandler(
			requestBookingUC.NewUseCase(bookings, resolver, directory, locker, collector, clock, log), log),
		DecideBooking: decideBookingHandler.NewHandler(
			decideBookingUC.NewUseCase(bookings, locker, collector, clock, log), log),
		GetBooking:   getBookingHandler.NewHandler(bookingSvc, log),
		ListBookings: listBookingsHandler.NewHandler(bookingSvc, log),
		GetAvailability: getAvailabilityHandler.NewHandler(
			getAvailabilityUC.NewUseCase(resolver, directory, log), log),
		ListEquipment:         listEquipmentHandler.NewHandler(equipmentSvc, log),
		EquipmentStats:        equipmentStatsHandler.NewHandler(equipmentSvc, log),
		GetEquipment:          getEquipmentHandler.NewHandler(equipmentSvc, log),
		UpdateEquipmentStatus: updateEquipmentStatusHandler.NewHandler(equipmentSvc, log),
		Settings:              manageSettingsHandler.NewHandler(settingsService.NewService(rules, log), log),
		BookingReport:         bookingReportHandler.NewHandler(reportsService.NewService(bookings, directory, log), log),
		ListSupervisors:       listSupervisorsHandler.NewHandler(supervisorsService.NewService(directory, log), log),
	}

	return &testServer{
		router: NewRouter(h, MetricsOptions{
			Collector: collector,
			Path:      "/metrics",
			Handler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
	}
}

func (s *testServer) do(t *testing.T, as caller, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader).WithContext(context.Background())
	if as.id != "" {
		req.Header.Set(middleware.HeaderUserID, as.id)
		req.Header.Set(middleware.HeaderUserRole, string(as.role))
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func availableSlot(resp getAvailabilityHandler.AvailabilityResponse, slotID string) bool {
	for _, s := range resp.Slots {
		if s.ID == slotID {
			return s.Available
		}
	}
	return false
}

func TestRouter_BookingLifecycle(t *testing.T) {
	s := newTestServer(t)
	const availabilityPath = "/api/v1/equipment/E1/availability?date=2025-06-03"

	rec := s.do(t, anonymous, http.MethodGet, availabilityPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	day := decode[getAvailabilityHandler.AvailabilityResponse](t, rec)
	assert.Equal(t, 7, day.AvailableCount)
	assert.Equal(t, "Lab 101", day.Place)

	// первый студент бронирует слот
	rec = s.do(t, student1, http.MethodPost, "/api/v1/bookings", requestBookingHandler.RequestBookingRequest{
		EquipmentID: "E1", Date: "2025-06-03", SlotID: "morning-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[requestBookingHandler.BookingResponse](t, rec)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "SV1", created.SupervisorID)

	// второй получает конфликт
	rec = s.do(t, student2, http.MethodPost, "/api/v1/bookings", requestBookingHandler.RequestBookingRequest{
		EquipmentID: "E1", Date: "2025-06-03", SlotID: "morning-1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, student2, http.MethodGet, availabilityPath, nil)
	day = decode[getAvailabilityHandler.AvailabilityResponse](t, rec)
	assert.Equal(t, 6, day.AvailableCount)
	assert.False(t, availableSlot(day, "morning-1"))

	// чужое бронирование студенту не видно
	rec = s.do(t, student2, http.MethodGet, "/api/v1/bookings/"+created.ID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, supervisor, http.MethodGet, "/api/v1/bookings?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)

	// отклонение без причины невозможно
	rec = s.do(t, supervisor, http.MethodPatch, "/api/v1/bookings/"+created.ID+"/decision", map[string]interface{}{"approve": false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, supervisor, http.MethodPatch, "/api/v1/bookings/"+created.ID+"/decision", map[string]interface{}{
		"approve": false, "reason": "equipment reserved for calibration",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"rejected"`)

	rec = s.do(t, supervisor, http.MethodPatch, "/api/v1/bookings/"+created.ID+"/decision", map[string]interface{}{"approve": true})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// слот снова свободен
	rec = s.do(t, anonymous, http.MethodGet, availabilityPath, nil)
	day = decode[getAvailabilityHandler.AvailabilityResponse](t, rec)
	assert.True(t, availableSlot(day, "morning-1"))

	rec = s.do(t, student2, http.MethodPost, "/api/v1/bookings", requestBookingHandler.RequestBookingRequest{
		EquipmentID: "E1", Date: "2025-06-03", SlotID: "morning-1",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_RequestBookingErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		as     caller
		body   interface{}
		status int
	}{
		{"unknown field", student1, map[string]string{"equipmentId": "E1", "date": "2025-06-03", "slotId": "morning-1", "extra": "x"}, http.StatusBadRequest},
		{"bad date", student1, requestBookingHandler.RequestBookingRequest{EquipmentID: "E1", Date: "03.06.2025", SlotID: "morning-1"}, http.StatusBadRequest},
		{"past date", student1, requestBookingHandler.RequestBookingRequest{EquipmentID: "E1", Date: "2025-05-30", SlotID: "morning-1"}, http.StatusBadRequest},
		{"unknown equipment", student1, requestBookingHandler.RequestBookingRequest{EquipmentID: "E404", Date: "2025-06-03", SlotID: "morning-1"}, http.StatusNotFound},
		{"unknown slot", student1, requestBookingHandler.RequestBookingRequest{EquipmentID: "E1", Date: "2025-06-03", SlotID: "midnight"}, http.StatusNotFound},
		{"maintenance", student1, requestBookingHandler.RequestBookingRequest{EquipmentID: "E2", Date: "2025-06-03", SlotID: "morning-1"}, http.StatusConflict},
		{"supervisor", supervisor, requestBookingHandler.RequestBookingRequest{EquipmentID: "E1", Date: "2025-06-03", SlotID: "morning-1"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, tt.as, http.MethodPost, "/api/v1/bookings", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_Auth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, anonymous, http.MethodGet, "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, caller{"S1", domain.Role("janitor")}, http.MethodGet, "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// каталог оборудования публичный
	rec = s.do(t, anonymous, http.MethodGet, "/api/v1/equipment", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestRouter_Settings(t *testing.T) {
	s := newTestServer(t)

	holiday := map[string]string{"name": "Founders Day", "date": "2025-06-03", "type": "full"}

	rec := s.do(t, student1, http.MethodPost, "/api/v1/settings/holidays", holiday)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, admin, http.MethodPost, "/api/v1/settings/holidays", holiday)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, admin, http.MethodPost, "/api/v1/settings/holidays", map[string]string{"name": "Broken", "date": "2025-13-01"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, anonymous, http.MethodGet, "/api/v1/settings/holidays", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Founders Day")

	rec = s.do(t, anonymous, http.MethodGet, "/api/v1/equipment/E1/availability?date=2025-06-03", nil)
	day := decode[getAvailabilityHandler.AvailabilityResponse](t, rec)
	assert.Zero(t, day.AvailableCount)

	// технический перерыв и правило
	rec = s.do(t, admin, http.MethodPost, "/api/v1/settings/breaks", map[string]interface{}{
		"name": "Lunch", "startTime": "12:00", "endTime": "14:00", "days": []string{"Wednesday"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	brk := decode[map[string]interface{}](t, rec)

	rec = s.do(t, admin, http.MethodPatch, "/api/v1/settings/breaks/"+brk["id"].(string)+"/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"enabled":false`)

	rec = s.do(t, admin, http.MethodPatch, "/api/v1/settings/rules/missing/toggle", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, admin, http.MethodDelete, "/api/v1/settings/breaks/"+brk["id"].(string), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_EquipmentStatusAndReport(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, student1, http.MethodPatch, "/api/v1/equipment/E1/status", map[string]string{"status": "maintenance"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, admin, http.MethodPatch, "/api/v1/equipment/E2/status", map[string]string{"status": "active"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"bookable":true`)

	rec = s.do(t, student1, http.MethodPost, "/api/v1/bookings", requestBookingHandler.RequestBookingRequest{
		EquipmentID: "E2", Date: "2025-06-04", SlotID: "evening-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, admin, http.MethodGet, "/api/v1/reports/bookings?from=2025-06-01&to=2025-06-30", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"totalBookings":1`)

	rec = s.do(t, admin, http.MethodGet, "/api/v1/reports/bookings?from=june", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, student1, http.MethodGet, "/api/v1/reports/bookings", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_EquipmentStats(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, anonymous, http.MethodGet, "/api/v1/equipment/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := decode[equipmentModels.EquipmentStatsResponse](t, rec)
	assert.Equal(t, equipmentModels.EquipmentStatsResponse{Total: 2, Active: 1, Maintenance: 1}, stats)

	rec = s.do(t, admin, http.MethodPatch, "/api/v1/equipment/E2/status", map[string]string{"status": "retired"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, anonymous, http.MethodGet, "/api/v1/equipment/stats", nil)
	stats = decode[equipmentModels.EquipmentStatsResponse](t, rec)
	assert.Equal(t, equipmentModels.EquipmentStatsResponse{Total: 2, Active: 1, Retired: 1}, stats)

	// единица оборудования по ID доступна как раньше
	rec = s.do(t, anonymous, http.MethodGet, "/api/v1/equipment/E1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Supervisors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, anonymous, http.MethodGet, "/api/v1/supervisors", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, student1, http.MethodGet, "/api/v1/supervisors", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, admin, http.MethodGet, "/api/v1/supervisors", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	all := decode[supervisorModels.SupervisorListResponse](t, rec)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, []string{"Chemistry", "Physics"}, all.Departments)

	rec = s.do(t, admin, http.MethodGet, "/api/v1/supervisors?q=wilson&department=Physics", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	found := decode[supervisorModels.SupervisorListResponse](t, rec)
	require.Len(t, found.Supervisors, 1)
	assert.Equal(t, "SV1", found.Supervisors[0].ID)
	assert.Equal(t, "s.wilson@university.edu", found.Supervisors[0].Email)
	assert.Equal(t, 5000.0, found.Supervisors[0].Budget)

	rec = s.do(t, admin, http.MethodGet, "/api/v1/supervisors?q=m.chen@&department=all", nil)
	found = decode[supervisorModels.SupervisorListResponse](t, rec)
	require.Len(t, found.Supervisors, 1)
	assert.Equal(t, "SV2", found.Supervisors[0].ID)
}

func TestRouter_Metrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, anonymous, http.MethodGet, "/api/v1/equipment/E1/availability?date=2025-06-03", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, student1, http.MethodPost, "/api/v1/bookings", requestBookingHandler.RequestBookingRequest{
		EquipmentID: "E1", Date: "2025-06-03", SlotID: "morning-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, anonymous, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `route="/api/v1/equipment/{equipmentId}/availability"`)
	assert.Contains(t, body, `lab_booking_booking_requests_total{result="created",service="test"} 1`)
	assert.Contains(t, body, "lab_booking_slot_resolutions_total")
}
