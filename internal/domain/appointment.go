package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus статус записи на приём
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid возвращает true для известного статуса
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment запись пациента на приём к врачу
// StartTime и EndTime хранятся в UTC как полуинтервал [StartTime, EndTime),
// EndTime = StartTime + длительность слота врача на момент создания.
// После создания меняется только Status
type Appointment struct {
	ID       uuid.UUID
	DoctorID uuid.UUID

	PatientName  string
	PatientEmail string

	StartTime time.Time
	EndTime   time.Time

	Status AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает интервал записи для проверки пересечений
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime}
}

// IsScheduled возвращает true для активной (запланированной) записи
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled возвращает true для отменённой записи
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// AppointmentsFilter фильтр для получения списка записей
type AppointmentsFilter struct {
	DoctorID     *uuid.UUID         // Фильтр по врачу (опционально)
	PatientEmail *string            // Фильтр по email пациента (опционально)
	Status       *AppointmentStatus // Фильтр по статусу (опционально)
}
