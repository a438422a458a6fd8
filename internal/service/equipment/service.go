package equipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-LabBookingService/internal/service/equipment/models"
)

// Service сервис каталога оборудования
type Service struct {
	repo   EquipmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса оборудования
func NewService(repo EquipmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List ищет оборудование по названию, месту или описанию и фильтрует по статусу.
// Пустой status означает любой статус.
func (s *Service) List(ctx context.Context, query, status string) ([]*domain.Equipment, error) {
	query = strings.TrimSpace(query)
	if len(query) > domain.MaxSearchQueryLength {
		return nil, fmt.Errorf("%w: search query is too long", ErrInvalidInput)
	}

	filter := domain.EquipmentFilter{Query: query}
	if status != "" && !strings.EqualFold(status, "all") {
		parsed, err := domain.ParseEquipmentStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &parsed
	}

	items, err := s.repo.ListEquipment(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// Stats считает оборудование каталога по статусам
func (s *Service) Stats(ctx context.Context) (*models.EquipmentStatsResponse, error) {
	items, err := s.repo.ListEquipment(ctx, domain.EquipmentFilter{})
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &models.EquipmentStatsResponse{Total: len(items)}
	for _, e := range items {
		switch e.Status {
		case domain.EquipmentActive:
			stats.Active++
		case domain.EquipmentMaintenance:
			stats.Maintenance++
		case domain.EquipmentRetired:
			stats.Retired++
		}
	}
	return stats, nil
}

// Get получает оборудование по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Equipment, error) {
	item, err := s.repo.GetEquipment(ctx, id)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("Get: repository error for equipment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return item, nil
}

// UpdateStatus меняет статус оборудования
// Доступно только администратору
func (s *Service) UpdateStatus(ctx context.Context, actor *domain.Actor, id, status string) (*domain.Equipment, error) {
	s.logger.Info("UpdateStatus: equipment id=%s to status=%s by user=%v", id, status, actorID(actor))

	if !actor.Can(domain.ActionManageEquipment) {
		s.logger.Warn("UpdateStatus: access denied for user=%v", actorID(actor))
		return nil, ErrAccessDenied
	}

	parsed, err := domain.ParseEquipmentStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.repo.UpdateEquipmentStatus(ctx, id, parsed)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEquipmentNotFound) {
			s.logger.Warn("UpdateStatus: equipment id=%s not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for equipment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: equipment id=%s is now %s", id, item.Status)
	return item, nil
}

func actorID(actor *domain.Actor) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}
