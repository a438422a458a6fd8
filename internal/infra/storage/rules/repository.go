package rules

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Repository in-memory хранилище праздников, правил бронирования и технических перерывов.
// Порядок выдачи совпадает с порядком добавления (праздники сортируются по дате).
// Кеширования нет: каждое чтение видит текущее состояние.
type Repository struct {
	mu sync.RWMutex

	holidays []*domain.Holiday
	rules    []*domain.BookingRule
	breaks   []*domain.MaintenanceBreak
}

// NewRepository создает пустое хранилище правил
func NewRepository() *Repository {
	return &Repository{}
}

// ---------- Holidays ----------

// AddHoliday добавляет праздник. Дата нормализуется до дня.
func (r *Repository) AddHoliday(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	stored := *h
	stored.Date = domain.DateOnly(h.Date)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.holidays {
		if existing.ID == stored.ID {
			return nil, fmt.Errorf("%w: AddHoliday - %s", ErrDuplicateID, stored.ID)
		}
		if existing.Date.Equal(stored.Date) {
			return nil, fmt.Errorf("%w: AddHoliday - %s (%s)", ErrHolidayExists, stored.Date.Format(domain.DateFormat), existing.Name)
		}
	}

	r.holidays = append(r.holidays, &stored)
	out := stored
	return &out, nil
}

// RemoveHoliday удаляет праздник по ID
func (r *Repository) RemoveHoliday(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.holidays {
		if h.ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: RemoveHoliday - id %s", ErrHolidayNotFound, id)
}

// ListHolidays возвращает праздники, отсортированные по дате
func (r *Repository) ListHolidays(ctx context.Context) ([]*domain.Holiday, error) {
	r.mu.RLock()
	result := make([]*domain.Holiday, 0, len(r.holidays))
	for _, h := range r.holidays {
		c := *h
		result = append(result, &c)
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// IsHoliday возвращает вид праздника на дату, если он есть
func (r *Repository) IsHoliday(ctx context.Context, date time.Time) (bool, domain.HolidayKind, error) {
	day := domain.DateOnly(date)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.holidays {
		if h.Date.Equal(day) {
			return true, h.Kind, nil
		}
	}
	return false, "", nil
}

// ---------- Booking rules ----------

// AddRule добавляет правило бронирования
func (r *Repository) AddRule(ctx context.Context, rule *domain.BookingRule) (*domain.BookingRule, error) {
	stored := *rule
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rules {
		if existing.ID == stored.ID {
			return nil, fmt.Errorf("%w: AddRule - %s", ErrDuplicateID, stored.ID)
		}
	}

	r.rules = append(r.rules, &stored)
	out := stored
	return &out, nil
}

// RemoveRule удаляет правило по ID
func (r *Repository) RemoveRule(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rule := range r.rules {
		if rule.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: RemoveRule - id %s", ErrRuleNotFound, id)
}

// ToggleRule инвертирует флаг Enabled и возвращает обновленное правило
func (r *Repository) ToggleRule(ctx context.Context, id string) (*domain.BookingRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rule := range r.rules {
		if rule.ID == id {
			rule.Enabled = !rule.Enabled
			out := *rule
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: ToggleRule - id %s", ErrRuleNotFound, id)
}

// ListRules возвращает все правила в порядке добавления
func (r *Repository) ListRules(ctx context.Context) ([]*domain.BookingRule, error) {
	return r.rulesWhere(func(*domain.BookingRule) bool { return true }), nil
}

// ActiveRules возвращает только включенные правила
func (r *Repository) ActiveRules(ctx context.Context) ([]*domain.BookingRule, error) {
	return r.rulesWhere(func(rule *domain.BookingRule) bool { return rule.Enabled }), nil
}

func (r *Repository) rulesWhere(keep func(*domain.BookingRule) bool) []*domain.BookingRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.BookingRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if keep(rule) {
			c := *rule
			result = append(result, &c)
		}
	}
	return result
}

// ---------- Maintenance breaks ----------

// AddBreak добавляет технический перерыв
func (r *Repository) AddBreak(ctx context.Context, b *domain.MaintenanceBreak) (*domain.MaintenanceBreak, error) {
	stored := cloneBreak(b)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.breaks {
		if existing.ID == stored.ID {
			return nil, fmt.Errorf("%w: AddBreak - %s", ErrDuplicateID, stored.ID)
		}
	}

	r.breaks = append(r.breaks, stored)
	return cloneBreak(stored), nil
}

// RemoveBreak удаляет перерыв по ID
func (r *Repository) RemoveBreak(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.breaks {
		if b.ID == id {
			r.breaks = append(r.breaks[:i], r.breaks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: RemoveBreak - id %s", ErrBreakNotFound, id)
}

// ToggleBreak инвертирует флаг Enabled и возвращает обновленный перерыв
func (r *Repository) ToggleBreak(ctx context.Context, id string) (*domain.MaintenanceBreak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.breaks {
		if b.ID == id {
			b.Enabled = !b.Enabled
			return cloneBreak(b), nil
		}
	}
	return nil, fmt.Errorf("%w: ToggleBreak - id %s", ErrBreakNotFound, id)
}

// ListBreaks возвращает все перерывы в порядке добавления
func (r *Repository) ListBreaks(ctx context.Context) ([]*domain.MaintenanceBreak, error) {
	return r.breaksWhere(func(*domain.MaintenanceBreak) bool { return true }), nil
}

// ActiveBreaks возвращает только включенные перерывы
func (r *Repository) ActiveBreaks(ctx context.Context) ([]*domain.MaintenanceBreak, error) {
	return r.breaksWhere(func(b *domain.MaintenanceBreak) bool { return b.Enabled }), nil
}

func (r *Repository) breaksWhere(keep func(*domain.MaintenanceBreak) bool) []*domain.MaintenanceBreak {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.MaintenanceBreak, 0, len(r.breaks))
	for _, b := range r.breaks {
		if keep(b) {
			result = append(result, cloneBreak(b))
		}
	}
	return result
}

func cloneBreak(b *domain.MaintenanceBreak) *domain.MaintenanceBreak {
	c := *b
	c.Weekdays = append([]time.Weekday(nil), b.Weekdays...)
	return &c
}
