package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID string          `json:"doctorId"`
	Date     string          `json:"date"`
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot свободный слот: момент начала в хранимом времени (UTC)
// и тот же момент в локальном времени клиники
type AvailableSlot struct {
	StartTimeUTC   string `json:"startTimeUtc"`
	StartTimeLocal string `json:"startTimeLocal"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(doctorID uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		DoctorID: doctorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTimeUTC:   slot.UTC.Format(time.RFC3339),
			StartTimeLocal: slot.Local.Format("2006-01-02T15:04:05"),
		}
	}

	return &AvailableSlotsResponse{
		DoctorID: resp.DoctorID.String(),
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
