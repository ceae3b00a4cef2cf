package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidWorkingHours возвращается при некорректных рабочих часах врача
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("invalid slot duration")
)

// Doctor врач с рабочими часами и длительностью слота приёма
// Движок бронирования читает врача как неизменяемый вход запроса
type Doctor struct {
	ID             uuid.UUID
	Name           string
	Specialization string
	Qualification  *string
	Description    *string
	IsActive       bool

	// Рабочие часы в локальном времени (фиксированное смещение деплоя)
	WorkStartTime       types.TimeString
	WorkEndTime         types.TimeString
	SlotDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateWorkingHours проверяет инварианты рабочих часов:
// начало строго раньше конца, длительность слота в [15, 120] минут.
// Кратность (конец - начало) длительности слота НЕ требуется:
// неполный хвостовой слот просто не генерируется
func (d *Doctor) ValidateWorkingHours() error {
	if err := d.WorkStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
	}
	if err := d.WorkEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
	}
	if !d.WorkStartTime.IsBefore(d.WorkEndTime) {
		return fmt.Errorf("%w: work start %s must be before work end %s",
			ErrInvalidWorkingHours, d.WorkStartTime, d.WorkEndTime)
	}
	if d.SlotDurationMinutes < MinSlotDurationMinutes || d.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: %d minutes, must be between %d and %d",
			ErrInvalidSlotDuration, d.SlotDurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	return nil
}

// DoctorsFilter фильтр для получения списка врачей
type DoctorsFilter struct {
	Specialization *string // Фильтр по специализации (опционально)
	Page           int64
	Limit          int64
}
