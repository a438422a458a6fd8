package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	rulesRepo "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/rules"
	"github.com/m04kA/SMC-LabBookingService/internal/service/settings/models"
)

// Service сервис администрирования праздников, правил бронирования и технических перерывов.
// Чтение доступно всем, изменения - только администратору.
// Изменения действуют со следующего расчета доступности.
type Service struct {
	repo   RuleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo RuleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ---------- Holidays ----------

// ListHolidays возвращает праздники, отсортированные по дате
func (s *Service) ListHolidays(ctx context.Context) ([]models.HolidayResponse, error) {
	items, err := s.repo.ListHolidays(ctx)
	if err != nil {
		return nil, s.repoError("ListHolidays", err)
	}
	resp := make([]models.HolidayResponse, 0, len(items))
	for _, h := range items {
		resp = append(resp, models.FromDomainHoliday(h))
	}
	return resp, nil
}

// AddHoliday добавляет праздник
func (s *Service) AddHoliday(ctx context.Context, actor *domain.Actor, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("AddHoliday: name=%q, date=%s, kind=%s by user=%s", req.Name, req.Date, req.Kind, actorID(actor))

	// 1. Проверяем права доступа
	if err := s.checkAdmin(actor, "AddHoliday"); err != nil {
		return nil, err
	}

	// 2. Валидируем входные данные
	holiday, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("AddHoliday: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Сохраняем
	created, err := s.repo.AddHoliday(ctx, holiday)
	if err != nil {
		return nil, s.repoError("AddHoliday", err)
	}

	s.logger.Info("AddHoliday: created holiday id=%s", created.ID)
	resp := models.FromDomainHoliday(created)
	return &resp, nil
}

// RemoveHoliday удаляет праздник
func (s *Service) RemoveHoliday(ctx context.Context, actor *domain.Actor, id string) error {
	s.logger.Info("RemoveHoliday: id=%s by user=%s", id, actorID(actor))

	if err := s.checkAdmin(actor, "RemoveHoliday"); err != nil {
		return err
	}
	if err := s.repo.RemoveHoliday(ctx, id); err != nil {
		return s.repoError("RemoveHoliday", err)
	}
	return nil
}

// ---------- Booking rules ----------

// ListRules возвращает все правила в порядке добавления
func (s *Service) ListRules(ctx context.Context) ([]models.RuleResponse, error) {
	items, err := s.repo.ListRules(ctx)
	if err != nil {
		return nil, s.repoError("ListRules", err)
	}
	resp := make([]models.RuleResponse, 0, len(items))
	for _, r := range items {
		resp = append(resp, models.FromDomainRule(r))
	}
	return resp, nil
}

// AddRule добавляет правило бронирования
func (s *Service) AddRule(ctx context.Context, actor *domain.Actor, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("AddRule: name=%q, kind=%s, value=%q by user=%s", req.Name, req.Kind, req.Value, actorID(actor))

	if err := s.checkAdmin(actor, "AddRule"); err != nil {
		return nil, err
	}

	rule, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("AddRule: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.AddRule(ctx, rule)
	if err != nil {
		return nil, s.repoError("AddRule", err)
	}

	s.logger.Info("AddRule: created rule id=%s", created.ID)
	resp := models.FromDomainRule(created)
	return &resp, nil
}

// RemoveRule удаляет правило
func (s *Service) RemoveRule(ctx context.Context, actor *domain.Actor, id string) error {
	s.logger.Info("RemoveRule: id=%s by user=%s", id, actorID(actor))

	if err := s.checkAdmin(actor, "RemoveRule"); err != nil {
		return err
	}
	if err := s.repo.RemoveRule(ctx, id); err != nil {
		return s.repoError("RemoveRule", err)
	}
	return nil
}

// ToggleRule включает или выключает правило
func (s *Service) ToggleRule(ctx context.Context, actor *domain.Actor, id string) (*models.RuleResponse, error) {
	s.logger.Info("ToggleRule: id=%s by user=%s", id, actorID(actor))

	if err := s.checkAdmin(actor, "ToggleRule"); err != nil {
		return nil, err
	}
	rule, err := s.repo.ToggleRule(ctx, id)
	if err != nil {
		return nil, s.repoError("ToggleRule", err)
	}

	s.logger.Info("ToggleRule: rule id=%s enabled=%t", rule.ID, rule.Enabled)
	resp := models.FromDomainRule(rule)
	return &resp, nil
}

// ---------- Maintenance breaks ----------

// ListBreaks возвращает все перерывы в порядке добавления
func (s *Service) ListBreaks(ctx context.Context) ([]models.BreakResponse, error) {
	items, err := s.repo.ListBreaks(ctx)
	if err != nil {
		return nil, s.repoError("ListBreaks", err)
	}
	resp := make([]models.BreakResponse, 0, len(items))
	for _, b := range items {
		resp = append(resp, models.FromDomainBreak(b))
	}
	return resp, nil
}

// AddBreak добавляет технический перерыв
func (s *Service) AddBreak(ctx context.Context, actor *domain.Actor, req *models.CreateBreakRequest) (*models.BreakResponse, error) {
	s.logger.Info("AddBreak: name=%q, %s-%s, days=%v by user=%s", req.Name, req.StartTime, req.EndTime, req.Days, actorID(actor))

	if err := s.checkAdmin(actor, "AddBreak"); err != nil {
		return nil, err
	}

	b, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("AddBreak: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.AddBreak(ctx, b)
	if err != nil {
		return nil, s.repoError("AddBreak", err)
	}

	s.logger.Info("AddBreak: created break id=%s", created.ID)
	resp := models.FromDomainBreak(created)
	return &resp, nil
}

// RemoveBreak удаляет перерыв
func (s *Service) RemoveBreak(ctx context.Context, actor *domain.Actor, id string) error {
	s.logger.Info("RemoveBreak: id=%s by user=%s", id, actorID(actor))

	if err := s.checkAdmin(actor, "RemoveBreak"); err != nil {
		return err
	}
	if err := s.repo.RemoveBreak(ctx, id); err != nil {
		return s.repoError("RemoveBreak", err)
	}
	return nil
}

// ToggleBreak включает или выключает перерыв
func (s *Service) ToggleBreak(ctx context.Context, actor *domain.Actor, id string) (*models.BreakResponse, error) {
	s.logger.Info("ToggleBreak: id=%s by user=%s", id, actorID(actor))

	if err := s.checkAdmin(actor, "ToggleBreak"); err != nil {
		return nil, err
	}
	b, err := s.repo.ToggleBreak(ctx, id)
	if err != nil {
		return nil, s.repoError("ToggleBreak", err)
	}

	s.logger.Info("ToggleBreak: break id=%s enabled=%t", b.ID, b.Enabled)
	resp := models.FromDomainBreak(b)
	return &resp, nil
}

// checkAdmin проверяет право изменения настроек
func (s *Service) checkAdmin(actor *domain.Actor, op string) error {
	if !actor.Can(domain.ActionManageSettings) {
		s.logger.Warn("%s: access denied for user=%s", op, actorID(actor))
		return ErrAccessDenied
	}
	return nil
}

// repoError переводит ошибки хранилища в ошибки сервиса
func (s *Service) repoError(op string, err error) error {
	switch {
	case errors.Is(err, rulesRepo.ErrHolidayNotFound),
		errors.Is(err, rulesRepo.ErrRuleNotFound),
		errors.Is(err, rulesRepo.ErrBreakNotFound):
		s.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, rulesRepo.ErrHolidayExists), errors.Is(err, rulesRepo.ErrDuplicateID):
		s.logger.Warn("%s: %v", op, err)
		return fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func actorID(actor *domain.Actor) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}
