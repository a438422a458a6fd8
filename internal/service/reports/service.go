package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/reports/models"
)

// Service сервис отчетов по бронированиям и бюджетам
type Service struct {
	bookingRepo BookingRepository
	directory   Directory
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(bookingRepo BookingRepository, directory Directory, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		directory:   directory,
		logger:      logger,
	}
}

// BookingReport строит отчет: количество по статусам, выручку, использование оборудования
// и расходы руководителей. Руководитель видит только свои бронирования.
func (s *Service) BookingReport(ctx context.Context, actor *domain.Actor, req *models.BookingReportRequest) (*models.BookingReportResponse, error) {
	s.logger.Info("BookingReport: user=%s, equipment=%q, supervisor=%q, department=%q",
		actorID(actor), req.EquipmentID, req.SupervisorID, req.Department)

	// 1. Проверяем права доступа
	if !actor.Can(domain.ActionViewReports) {
		s.logger.Warn("BookingReport: access denied for user=%s", actorID(actor))
		return nil, ErrAccessDenied
	}

	scoped := *req
	if actor.Role == domain.RoleSupervisor {
		if scoped.SupervisorID != "" && scoped.SupervisorID != actor.ID {
			return nil, ErrAccessDenied
		}
		scoped.SupervisorID = actor.ID
	}

	if scoped.From != nil && scoped.To != nil && scoped.To.Before(*scoped.From) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	// 2. Определяем руководителей, попадающих в отчет
	supervisors, err := s.directory.ListSupervisors(ctx)
	if err != nil {
		s.logger.Error("BookingReport: failed to list supervisors: %v", err)
		return nil, fmt.Errorf("%w: supervisors: %v", ErrInternal, err)
	}

	included := make(map[string]*domain.Supervisor)
	order := make([]string, 0, len(supervisors))
	for _, sv := range supervisors {
		if scoped.SupervisorID != "" && sv.ID != scoped.SupervisorID {
			continue
		}
		if scoped.Department != "" && !strings.EqualFold(sv.Department, scoped.Department) {
			continue
		}
		included[sv.ID] = sv
		order = append(order, sv.ID)
	}

	// 3. Получаем бронирования за период
	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		EquipmentID:  scoped.EquipmentID,
		SupervisorID: scoped.SupervisorID,
		StartDate:    scoped.From,
		EndDate:      scoped.To,
	})
	if err != nil {
		s.logger.Error("BookingReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: bookings: %v", ErrInternal, err)
	}

	// 4. Агрегируем
	resp := &models.BookingReportResponse{
		ByStatus: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusApproved):  0,
			string(domain.StatusRejected):  0,
			string(domain.StatusCompleted): 0,
		},
		Equipment:   make([]models.EquipmentUsage, 0),
		Supervisors: make([]models.SupervisorSpending, 0, len(order)),
	}
	if scoped.From != nil {
		resp.From = scoped.From.Format(domain.DateFormat)
	}
	if scoped.To != nil {
		resp.To = scoped.To.Format(domain.DateFormat)
	}

	usage := make(map[string]*models.EquipmentUsage)
	spent := make(map[string]float64)
	count := make(map[string]int)

	for _, b := range bookings {
		if scoped.Department != "" && included[b.SupervisorID] == nil {
			continue
		}

		resp.TotalBookings++
		resp.ByStatus[string(b.Status)]++
		revenue := billable(b)
		resp.Revenue += revenue

		u, ok := usage[b.EquipmentID]
		if !ok {
			u = &models.EquipmentUsage{EquipmentID: b.EquipmentID, EquipmentName: s.equipmentName(ctx, b.EquipmentID)}
			usage[b.EquipmentID] = u
		}
		u.Bookings++
		u.Revenue += revenue

		spent[b.SupervisorID] += revenue
		count[b.SupervisorID]++
	}

	for _, u := range usage {
		resp.Equipment = append(resp.Equipment, *u)
	}
	sort.Slice(resp.Equipment, func(i, j int) bool {
		if resp.Equipment[i].Bookings != resp.Equipment[j].Bookings {
			return resp.Equipment[i].Bookings > resp.Equipment[j].Bookings
		}
		return resp.Equipment[i].EquipmentID < resp.Equipment[j].EquipmentID
	})

	for _, id := range order {
		sv := included[id]
		resp.Supervisors = append(resp.Supervisors, models.SupervisorSpending{
			SupervisorID: sv.ID,
			Name:         sv.Name,
			Department:   sv.Department,
			Budget:       sv.Budget,
			Spent:        spent[sv.ID],
			Remaining:    sv.Budget - spent[sv.ID],
			Bookings:     count[sv.ID],
		})
	}

	s.logger.Info("BookingReport: %d bookings, revenue=%.2f", resp.TotalBookings, resp.Revenue)
	return resp, nil
}

// billable стоимость, учитываемая в выручке: только Approved и Completed
func billable(b *domain.Booking) float64 {
	if b.Status == domain.StatusApproved || b.Status == domain.StatusCompleted {
		return b.Cost
	}
	return 0
}

func (s *Service) equipmentName(ctx context.Context, id string) string {
	e, err := s.directory.GetEquipment(ctx, id)
	if err != nil {
		s.logger.Warn("BookingReport: equipment id=%s: %v", id, err)
		return ""
	}
	return e.Name
}

func actorID(actor *domain.Actor) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}
