package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LabBookingService/internal/service/bookings/models"
)

// Service сервис для чтения истории бронирований и их завершения
type Service struct {
	bookingRepo  BookingRepository
	equipment    EquipmentDirectory
	catalog      SlotCatalog
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	equipment EquipmentDirectory,
	catalog SlotCatalog,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Service{
		bookingRepo:  bookingRepo,
		equipment:    equipment,
		catalog:      catalog,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Студент видит только свои бронирования, руководитель - бронирования своих студентов,
// администратор - все
func (s *Service) GetByID(ctx context.Context, id string, actor *domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actorID(actor))

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !canView(actor, booking) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actorID(actor), id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return s.enrich(ctx, booking, map[string]*domain.Equipment{}), nil
}

// List получает историю бронирований с фильтрацией
// Для студента и руководителя выборка ограничивается их собственными бронированиями
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest, actor *domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("List: user=%s, student=%q, supervisor=%q, equipment=%q, period=%q, q=%q",
		actorID(actor), req.StudentID, req.SupervisorID, req.EquipmentID, req.Period, req.Query)

	if actor == nil {
		return nil, ErrAccessDenied
	}

	// 1. Ограничиваем выборку ролью
	scoped := *req
	switch actor.Role {
	case domain.RoleStudent:
		if scoped.StudentID != "" && scoped.StudentID != actor.ID {
			s.logger.Warn("List: student=%s requested bookings of student=%s", actor.ID, scoped.StudentID)
			return nil, ErrAccessDenied
		}
		scoped.StudentID = actor.ID
	case domain.RoleSupervisor:
		if scoped.SupervisorID != "" && scoped.SupervisorID != actor.ID {
			s.logger.Warn("List: supervisor=%s requested bookings of supervisor=%s", actor.ID, scoped.SupervisorID)
			return nil, ErrAccessDenied
		}
		scoped.SupervisorID = actor.ID
	default:
		if !actor.Can(domain.ActionViewAllBookings) {
			return nil, ErrAccessDenied
		}
	}

	if len(scoped.Query) > domain.MaxSearchQueryLength {
		return nil, fmt.Errorf("%w: search query is too long", ErrInvalidInput)
	}

	// 2. Конвертируем request в domain фильтр
	filter, err := scoped.ToDomainFilter(s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Получаем бронирования
	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// 4. Денормализуем и фильтруем по поисковой строке
	query := strings.ToLower(strings.TrimSpace(scoped.Query))
	equipmentCache := make(map[string]*domain.Equipment)
	resp := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		item := s.enrich(ctx, b, equipmentCache)
		if query != "" && !strings.Contains(strings.ToLower(item.EquipmentName), query) {
			continue
		}
		resp.Bookings = append(resp.Bookings, *item)
	}
	resp.Total = len(resp.Bookings)

	s.logger.Info("List: successfully fetched %d bookings", resp.Total)
	return resp, nil
}

// AdvanceCompleted переводит Approved бронирования с датой раньше today в Completed.
// Каждое изменение - compare-and-set из Approved, поэтому повторный запуск ничего не меняет.
func (s *Service) AdvanceCompleted(ctx context.Context, today time.Time) (int, error) {
	today = domain.DateOnly(today)
	yesterday := today.AddDate(0, 0, -1)

	approved, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		Statuses: []domain.BookingStatus{domain.StatusApproved},
		EndDate:  &yesterday,
	})
	if err != nil {
		s.logger.Error("AdvanceCompleted: repository error: %v", err)
		return 0, fmt.Errorf("%w: AdvanceCompleted - repository error: %v", ErrInternal, err)
	}

	count := 0
	for _, b := range approved {
		if err := domain.Transition(b.Status, domain.StatusCompleted); err != nil {
			s.logger.Error("AdvanceCompleted: booking id=%s: %v", b.ID, err)
			continue
		}

		_, err := s.bookingRepo.CompareAndSetStatus(ctx, b.ID, bookingRepo.StatusUpdate{
			From: domain.StatusApproved,
			To:   domain.StatusCompleted,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusMismatch) {
				continue
			}
			s.logger.Error("AdvanceCompleted: failed to complete booking id=%s: %v", b.ID, err)
			return count, fmt.Errorf("%w: AdvanceCompleted - repository error: %v", ErrInternal, err)
		}
		count++
	}

	if count > 0 {
		s.metrics.AddCompleted(count)
		s.logger.Info("AdvanceCompleted: %d bookings completed before %s", count, today.Format(domain.DateFormat))
	}
	return count, nil
}

// enrich добавляет в ответ названия оборудования и слота; ошибки справочников не критичны
func (s *Service) enrich(ctx context.Context, b *domain.Booking, cache map[string]*domain.Equipment) *models.BookingResponse {
	equipment, ok := cache[b.EquipmentID]
	if !ok {
		e, err := s.equipment.GetEquipment(ctx, b.EquipmentID)
		if err != nil {
			s.logger.Warn("enrich: equipment id=%s: %v", b.EquipmentID, err)
		}
		equipment = e
		cache[b.EquipmentID] = e
	}

	slot, err := s.catalog.SlotByID(ctx, b.EquipmentID, b.Date, b.SlotID)
	if err != nil {
		s.logger.Warn("enrich: slot id=%s for equipment id=%s: %v", b.SlotID, b.EquipmentID, err)
		slot = nil
	}

	return models.FromDomainBooking(b, equipment, slot)
}

// canView проверяет право просмотра одного бронирования
func canView(actor *domain.Actor, b *domain.Booking) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case domain.RoleStudent:
		return b.StudentID == actor.ID
	case domain.RoleSupervisor:
		return b.SupervisorID == actor.ID
	default:
		return actor.Can(domain.ActionViewAllBookings)
	}
}

func actorID(actor *domain.Actor) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}
