package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Repository in-memory хранилище бронирований.
// Возвращает копии, внутреннее состояние меняется только через методы.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string
	now      Clock
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository() *Repository {
	return NewRepositoryWithClock(time.Now)
}

// NewRepositoryWithClock создает репозиторий с заданным источником времени
func NewRepositoryWithClock(now Clock) *Repository {
	return &Repository{
		bookings: make(map[string]*domain.Booking),
		now:      now,
	}
}

// Create сохраняет новое бронирование.
// ID генерируется, если не задан. Второе активное бронирование на тот же слот
// отклоняется с ErrSlotOccupied.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || booking.EquipmentID == "" || booking.SlotID == "" || booking.Date.IsZero() {
		return nil, fmt.Errorf("%w: Create - equipment, slot and date are required", ErrInvalidBooking)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(booking)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if _, exists := r.bookings[stored.ID]; exists {
		return nil, fmt.Errorf("%w: Create - duplicate id %s", ErrInvalidBooking, stored.ID)
	}
	stored.Date = domain.DateOnly(stored.Date)

	if stored.IsActive() {
		for _, id := range r.order {
			b := r.bookings[id]
			if b.IsActive() && b.Key() == stored.Key() {
				return nil, fmt.Errorf("%w: Create - key %s held by booking %s", ErrSlotOccupied, stored.Key(), b.ID)
			}
		}
	}

	now := r.now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.bookings[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return clone(stored), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: GetByID - id %s", ErrBookingNotFound, id)
	}
	return clone(b), nil
}

// List возвращает бронирования, подходящие под фильтр, отсортированные по дате и времени создания
func (r *Repository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, id := range r.order {
		b := r.bookings[id]
		if filter.Match(b) {
			result = append(result, clone(b))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// StatusUpdate изменение статуса с дополнительными полями решения
type StatusUpdate struct {
	From            domain.BookingStatus
	To              domain.BookingStatus
	RejectionReason *string
	DecidedAt       *time.Time
}

// CompareAndSetStatus меняет статус, только если текущий статус равен upd.From.
// Иначе возвращает ErrStatusMismatch и ничего не меняет.
func (r *Repository) CompareAndSetStatus(ctx context.Context, id string, upd StatusUpdate) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: CompareAndSetStatus - id %s", ErrBookingNotFound, id)
	}
	if b.Status != upd.From {
		return nil, fmt.Errorf("%w: CompareAndSetStatus - id %s is %s, expected %s", ErrStatusMismatch, id, b.Status, upd.From)
	}

	b.Status = upd.To
	if upd.RejectionReason != nil {
		reason := *upd.RejectionReason
		b.RejectionReason = &reason
	}
	if upd.DecidedAt != nil {
		decided := *upd.DecidedAt
		b.DecidedAt = &decided
	}
	b.UpdatedAt = r.now()

	return clone(b), nil
}

func clone(b *domain.Booking) *domain.Booking {
	c := *b
	if b.RejectionReason != nil {
		reason := *b.RejectionReason
		c.RejectionReason = &reason
	}
	if b.DecidedAt != nil {
		decided := *b.DecidedAt
		c.DecidedAt = &decided
	}
	return &c
}
