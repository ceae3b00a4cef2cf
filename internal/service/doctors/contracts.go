package doctors

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	Create(ctx context.Context, doc *domain.Doctor) (*domain.Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
	List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
