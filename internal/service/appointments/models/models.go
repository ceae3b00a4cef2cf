package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	DoctorID     *uuid.UUID
	PatientEmail *string
	Status       *string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		DoctorID:     r.DoctorID,
		PatientEmail: r.PatientEmail,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return domain.AppointmentsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// AppointmentResponse модель записи для ответа сервиса
type AppointmentResponse struct {
	ID           uuid.UUID
	DoctorID     uuid.UUID
	PatientName  string
	PatientEmail string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
}

// FromDomainAppointment конвертирует domain запись в модель ответа
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
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

// FromDomainAppointmentList конвертирует список domain записей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{Appointments: result}
}

// ToDomainAppointmentStatus конвертирует строку в domain статус с валидацией
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
