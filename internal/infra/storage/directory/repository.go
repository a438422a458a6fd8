package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Repository in-memory справочник оборудования, руководителей и студентов.
// Заполняется при старте из seed-файла; после этого меняется только статус оборудования.
type Repository struct {
	mu sync.RWMutex

	equipment      map[string]*domain.Equipment
	equipmentOrder []string
	supervisors    map[string]*domain.Supervisor
	supervisorIDs  []string
	students       map[string]*domain.Student
}

// NewRepository создает пустой справочник
func NewRepository() *Repository {
	return &Repository{
		equipment:   make(map[string]*domain.Equipment),
		supervisors: make(map[string]*domain.Supervisor),
		students:    make(map[string]*domain.Student),
	}
}

// AddEquipment добавляет оборудование в справочник
func (r *Repository) AddEquipment(e domain.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.equipment[e.ID]; ok {
		return fmt.Errorf("%w: equipment %s", ErrDuplicateID, e.ID)
	}
	r.equipment[e.ID] = &e
	r.equipmentOrder = append(r.equipmentOrder, e.ID)
	return nil
}

// AddSupervisor добавляет руководителя в справочник
func (r *Repository) AddSupervisor(s domain.Supervisor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.supervisors[s.ID]; ok {
		return fmt.Errorf("%w: supervisor %s", ErrDuplicateID, s.ID)
	}
	r.supervisors[s.ID] = &s
	r.supervisorIDs = append(r.supervisorIDs, s.ID)
	return nil
}

// AddStudent добавляет студента; назначенный руководитель должен уже существовать
func (r *Repository) AddStudent(s domain.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.students[s.ID]; ok {
		return fmt.Errorf("%w: student %s", ErrDuplicateID, s.ID)
	}
	if _, ok := r.supervisors[s.SupervisorID]; !ok {
		return fmt.Errorf("%w: student %s references supervisor %s", ErrSupervisorNotFound, s.ID, s.SupervisorID)
	}
	r.students[s.ID] = &s
	return nil
}

// GetEquipment получает оборудование по ID
func (r *Repository) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.equipment[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrEquipmentNotFound, id)
	}
	c := *e
	return &c, nil
}

// ListEquipment возвращает оборудование, подходящее под фильтр, в порядке загрузки
func (r *Repository) ListEquipment(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Equipment, 0, len(r.equipmentOrder))
	for _, id := range r.equipmentOrder {
		e := r.equipment[id]
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if !e.Matches(filter.Query) {
			continue
		}
		c := *e
		result = append(result, &c)
	}
	return result, nil
}

// UpdateEquipmentStatus меняет статус оборудования
func (r *Repository) UpdateEquipmentStatus(ctx context.Context, id string, status domain.EquipmentStatus) (*domain.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.equipment[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrEquipmentNotFound, id)
	}
	e.Status = status
	c := *e
	return &c, nil
}

// GetSupervisor получает руководителя по ID
func (r *Repository) GetSupervisor(ctx context.Context, id string) (*domain.Supervisor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.supervisors[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrSupervisorNotFound, id)
	}
	c := *s
	return &c, nil
}

// ListSupervisors возвращает всех руководителей в порядке загрузки
func (r *Repository) ListSupervisors(ctx context.Context) ([]*domain.Supervisor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Supervisor, 0, len(r.supervisorIDs))
	for _, id := range r.supervisorIDs {
		c := *r.supervisors[id]
		result = append(result, &c)
	}
	return result, nil
}

// GetStudent получает студента по ID
func (r *Repository) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrStudentNotFound, id)
	}
	c := *s
	return &c, nil
}
