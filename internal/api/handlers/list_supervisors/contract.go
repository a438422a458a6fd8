package list_supervisors

import (
	"context"

	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	"github.com/m04kA/SMC-LabBookingService/internal/service/supervisors/models"
)

type SupervisorService interface {
	List(ctx context.Context, actor *domain.Actor, query, department string) (*models.SupervisorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
