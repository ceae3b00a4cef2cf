package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	DoctorID     uuid.UUID // ID врача
	PatientName  string    // Имя пациента
	PatientEmail string    // Email пациента
	StartTime    time.Time // Начало приёма во времени хранения (UTC)
	Notes        *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID           uuid.UUID
	DoctorID     uuid.UUID
	PatientName  string
	PatientEmail string
	StartTime    time.Time // Начало приёма (UTC)
	EndTime      time.Time // Конец приёма (UTC), начало + длительность слота врача
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:           appt.ID,
		DoctorID:     appt.DoctorID,
		PatientName:  appt.PatientName,
		PatientEmail: appt.PatientEmail,
		StartTime:    appt.StartTime,
		EndTime:      appt.EndTime,
		Status:       string(appt.Status),
		Notes:        appt.Notes,
		CreatedAt:    appt.CreatedAt,
		UpdatedAt:    appt.UpdatedAt,
	}
}
