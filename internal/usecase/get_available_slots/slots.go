package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/fixedoffset"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует сетку начал слотов в локальных минутах суток:
// от начала рабочего дня с шагом slotDuration, пока слот целиком помещается
// в рабочие часы (start + slotDuration <= workEnd). Неполный хвостовой слот
// не генерируется.
//
// Чистая функция своих аргументов, сетка пересчитывается на каждый запрос:
// рабочие часы врача могут меняться между вызовами
func generateTimeSlots(workStart, workEnd types.TimeString, slotDuration int) []int {
	startMinutes := workStart.Minutes()
	endMinutes := workEnd.Minutes()

	slots := make([]int, 0)
	for m := startMinutes; m+slotDuration <= endMinutes; m += slotDuration {
		slots = append(slots, m)
	}

	return slots
}

// filterAvailable конвертирует локальные начала слотов в интервалы хранения
// и отбрасывает те, что пересекаются с существующими записями.
// Возвращает свободные слоты парами (момент хранения, локальный момент)
// по возрастанию времени
func filterAvailable(
	gridMinutes []int,
	slotDuration int,
	localDate time.Time,
	offset fixedoffset.Offset,
	appointments []*domain.Appointment,
) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(gridMinutes))

	for _, m := range gridMinutes {
		startUTC := offset.ToStorage(m/60, m%60, localDate)
		candidate := domain.NewInterval(startUTC, slotDuration)

		if isSlotBooked(candidate, appointments) {
			continue
		}

		available = append(available, domain.TimeSlot{
			UTC:   startUTC,
			Local: offset.ToLocal(startUTC),
		})
	}

	return available
}

// isSlotBooked возвращает true, если кандидат пересекается хотя бы с одной записью
func isSlotBooked(candidate domain.Interval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if candidate.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}
