package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
}

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	// GetByDoctorInRange получает записи врача, начало которых попадает
	// в полуинтервал [from, to), по возрастанию start_time
	GetByDoctorInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
