package create_appointment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID == uuid.Nil {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PatientName) == "" {
		return fmt.Errorf("%w: patientName is required", ErrInvalidInput)
	}

	if !isValidEmail(req.PatientEmail) {
		return fmt.Errorf("%w: invalid patientEmail", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isValidEmail минимальная проверка формата email
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t\n")
}

// validateWorkingHours проверяет, что локальный интервал приёма
// [localStartMinutes, localEndMinutes) целиком лежит в рабочих часах врача.
// Конец вычисляется как начало плюс длительность, без заворота через полночь
func validateWorkingHours(localStartMinutes, localEndMinutes int, doc *domain.Doctor) error {
	workStart := doc.WorkStartTime.Minutes()
	workEnd := doc.WorkEndTime.Minutes()

	if localStartMinutes < workStart {
		return &WorkingHoursError{
			Boundary:   BoundaryWorkStart,
			LocalStart: types.FromMinutes(localStartMinutes),
			LocalEnd:   types.FromMinutes(localEndMinutes),
			WorkStart:  doc.WorkStartTime,
			WorkEnd:    doc.WorkEndTime,
		}
	}

	if localEndMinutes > workEnd {
		return &WorkingHoursError{
			Boundary:   BoundaryWorkEnd,
			LocalStart: types.FromMinutes(localStartMinutes),
			LocalEnd:   types.FromMinutes(localEndMinutes),
			WorkStart:  doc.WorkStartTime,
			WorkEnd:    doc.WorkEndTime,
		}
	}

	return nil
}

// isSlotAligned проверяет, что начало приёма кратно длительности слота
// от начала рабочего дня врача
func isSlotAligned(localStartMinutes int, doc *domain.Doctor) bool {
	sinceWorkStart := localStartMinutes - doc.WorkStartTime.Minutes()
	return sinceWorkStart%doc.SlotDurationMinutes == 0
}

// findOverlapping возвращает первую запись, интервал которой пересекается
// с requested. Сравнение полуинтервалов — единственный предикат пересечения
// в системе: проверка только совпадения начала недостаточна при смене
// длительности слота врача между бронированиями
func findOverlapping(requested domain.Interval, appointments []*domain.Appointment) *domain.Appointment {
	for _, appt := range appointments {
		if requested.Overlaps(appt.Interval()) {
			return appt
		}
	}
	return nil
}
