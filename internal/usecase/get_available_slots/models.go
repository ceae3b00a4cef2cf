package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	DoctorID uuid.UUID // ID врача
	Date     time.Time // Локальная календарная дата (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	DoctorID uuid.UUID
	Date     time.Time
	Slots    []domain.TimeSlot // Свободные слоты по возрастанию времени
}
