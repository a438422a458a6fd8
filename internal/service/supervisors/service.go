package supervisors

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/supervisors/models"
)

// allDepartments значение фильтра без ограничения по кафедре
const allDepartments = "all"

// Service сервис справочника научных руководителей
type Service struct {
	directory Directory
	logger    Logger
}

// NewService создает новый экземпляр сервиса руководителей
func NewService(directory Directory, logger Logger) *Service {
	return &Service{
		directory: directory,
		logger:    logger,
	}
}

// List ищет руководителей по имени или email и фильтрует по кафедре.
// Пустой department или "all" означает любую кафедру.
// Departments в ответе перечисляет все кафедры справочника, а не только найденные.
func (s *Service) List(ctx context.Context, actor *domain.Actor, query, department string) (*models.SupervisorListResponse, error) {
	if !actor.Can(domain.ActionViewSupervisors) {
		s.logger.Warn("List: access denied for user=%v", actorID(actor))
		return nil, ErrAccessDenied
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) > domain.MaxSearchQueryLength {
		return nil, fmt.Errorf("%w: search query is too long", ErrInvalidInput)
	}
	department = strings.TrimSpace(department)
	if strings.EqualFold(department, allDepartments) {
		department = ""
	}

	all, err := s.directory.ListSupervisors(ctx)
	if err != nil {
		s.logger.Error("List: directory error: %v", err)
		return nil, fmt.Errorf("%w: List - directory error: %v", ErrInternal, err)
	}

	matched := make([]*domain.Supervisor, 0, len(all))
	seen := make(map[string]bool)
	departments := make([]string, 0)
	for _, sv := range all {
		if sv.Department != "" && !seen[sv.Department] {
			seen[sv.Department] = true
			departments = append(departments, sv.Department)
		}
		if department != "" && sv.Department != department {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(sv.Name), query) &&
			!strings.Contains(strings.ToLower(sv.Email), query) {
			continue
		}
		matched = append(matched, sv)
	}
	sort.Strings(departments)

	return models.FromDomainList(matched, departments), nil
}

func actorID(actor *domain.Actor) string {
	if actor == nil {
		return "anonymous"
	}
	return actor.ID
}
