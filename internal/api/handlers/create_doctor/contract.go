package create_doctor

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

type DoctorService interface {
	Create(ctx context.Context, req *models.CreateDoctorRequest) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
