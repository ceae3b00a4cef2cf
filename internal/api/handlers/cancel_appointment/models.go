package cancel_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID           string  `json:"id"`
	DoctorID     string  `json:"doctorId"`
	PatientName  string  `json:"patientName"`
	PatientEmail string  `json:"patientEmail"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           resp.ID.String(),
		DoctorID:     resp.DoctorID.String(),
		PatientName:  resp.PatientName,
		PatientEmail: resp.PatientEmail,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Status:       resp.Status,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
