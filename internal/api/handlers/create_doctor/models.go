package create_doctor

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateDoctorRequest HTTP request model
type CreateDoctorRequest struct {
	Name                string  `json:"name"`
	Specialization      string  `json:"specialization"`
	Qualification       *string `json:"qualification,omitempty"`
	Description         *string `json:"description,omitempty"`
	WorkStartTime       string  `json:"workStartTime"` // "09:00"
	WorkEndTime         string  `json:"workEndTime"`   // "17:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
}

// DoctorResponse HTTP response model
type DoctorResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Specialization      string  `json:"specialization"`
	Qualification       *string `json:"qualification,omitempty"`
	Description         *string `json:"description,omitempty"`
	IsActive            bool    `json:"isActive"`
	WorkStartTime       string  `json:"workStartTime"`
	WorkEndTime         string  `json:"workEndTime"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времени)
func (r *CreateDoctorRequest) ToServiceRequest() (*models.CreateDoctorRequest, error) {
	workStart, err := types.NewTimeStringFromString(r.WorkStartTime)
	if err != nil {
		return nil, err
	}

	workEnd, err := types.NewTimeStringFromString(r.WorkEndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateDoctorRequest{
		Name:                r.Name,
		Specialization:      r.Specialization,
		Qualification:       r.Qualification,
		Description:         r.Description,
		WorkStartTime:       workStart,
		WorkEndTime:         workEnd,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DoctorResponse) *DoctorResponse {
	return &DoctorResponse{
		ID:                  resp.ID.String(),
		Name:                resp.Name,
		Specialization:      resp.Specialization,
		Qualification:       resp.Qualification,
		Description:         resp.Description,
		IsActive:            resp.IsActive,
		WorkStartTime:       resp.WorkStartTime.String(),
		WorkEndTime:         resp.WorkEndTime.String(),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
