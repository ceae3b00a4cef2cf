package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrOutsideWorkingHours возвращается, когда интервал приёма выходит
	// за рабочие часы врача
	ErrOutsideWorkingHours = errors.New("create_appointment: appointment is outside working hours")

	// ErrSlotTaken возвращается, когда слот пересекается с существующей записью
	// врача — обнаруженной при проверке или при вставке (нарушение уникальности)
	ErrSlotTaken = errors.New("create_appointment: time slot is already booked")

	// ErrSlotMisaligned возвращается, когда время начала не кратно длительности
	// слота от начала рабочего дня
	ErrSlotMisaligned = errors.New("create_appointment: slot is not aligned to the schedule grid")

	// ErrPatientConflict возвращается, когда у пациента уже есть запись
	// на это же время (у любого врача)
	ErrPatientConflict = errors.New("create_appointment: patient already has an appointment at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// WorkingHoursBoundary граница рабочих часов, нарушенная запросом
type WorkingHoursBoundary string

const (
	BoundaryWorkStart WorkingHoursBoundary = "work_start"
	BoundaryWorkEnd   WorkingHoursBoundary = "work_end"
)

// WorkingHoursError детализированная ошибка выхода за рабочие часы
// Несёт вычисленные локальные границы приёма и рабочие часы врача,
// чтобы клиент получил точное сообщение
type WorkingHoursError struct {
	Boundary   WorkingHoursBoundary
	LocalStart types.TimeString
	LocalEnd   types.TimeString
	WorkStart  types.TimeString
	WorkEnd    types.TimeString
}

// Error формирует сообщение с указанием нарушенной границы
func (e *WorkingHoursError) Error() string {
	if e.Boundary == BoundaryWorkStart {
		return fmt.Sprintf("%v: appointment would start at %s, which is before working hours (%s)",
			ErrOutsideWorkingHours, e.LocalStart, e.WorkStart)
	}
	return fmt.Sprintf("%v: appointment would end at %s, which is after closing time (%s)",
		ErrOutsideWorkingHours, e.LocalEnd, e.WorkEnd)
}

// Unwrap позволяет сопоставлять ошибку через errors.Is(err, ErrOutsideWorkingHours)
func (e *WorkingHoursError) Unwrap() error {
	return ErrOutsideWorkingHours
}
