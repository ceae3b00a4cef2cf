package create_appointment

import (
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	DoctorID     string  `json:"doctorId"`
	PatientName  string  `json:"patientName"`
	PatientEmail string  `json:"patientEmail"`
	StartTime    string  `json:"startTime"` // RFC3339, например "2026-03-10T04:00:00Z"
	Notes        *string `json:"notes,omitempty"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	doctorID, err := uuid.Parse(r.DoctorID)
	if err != nil {
		return nil, err
	}

	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		DoctorID:     doctorID,
		PatientName:  r.PatientName,
		PatientEmail: r.PatientEmail,
		StartTime:    startTime,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
