package list_appointments

import (
	"time"

	"github.com/google/uuid"

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

// AppointmentListResponse HTTP response со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(doctorIDStr, patientEmail, status string) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if doctorIDStr != "" {
		doctorID, err := uuid.Parse(doctorIDStr)
		if err != nil {
			return nil, err
		}
		req.DoctorID = &doctorID
	}

	if patientEmail != "" {
		req.PatientEmail = &patientEmail
	}

	if status != "" {
		req.Status = &status
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = AppointmentResponse{
			ID:           appt.ID.String(),
			DoctorID:     appt.DoctorID.String(),
			PatientName:  appt.PatientName,
			PatientEmail: appt.PatientEmail,
			StartTime:    appt.StartTime.Format(time.RFC3339),
			EndTime:      appt.EndTime.Format(time.RFC3339),
			Status:       appt.Status,
			Notes:        appt.Notes,
			CreatedAt:    appt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    appt.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{Appointments: appointments}
}
