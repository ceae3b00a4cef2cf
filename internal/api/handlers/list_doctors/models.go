package list_doctors

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

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

// PageMeta метаданные пагинации
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// DoctorListResponse HTTP response со страницей врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Meta    PageMeta         `json:"meta"`
}

// ToServiceRequest создает запрос сервиса из query параметров
// Некорректные page/limit молча заменяются дефолтами на уровне сервиса
func ToServiceRequest(specialization, pageStr, limitStr string) *models.ListDoctorsRequest {
	req := &models.ListDoctorsRequest{}

	if specialization != "" {
		req.Specialization = &specialization
	}

	if pageStr != "" {
		if page, err := strconv.ParseInt(pageStr, 10, 64); err == nil {
			req.Page = page
		}
	}

	if limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil {
			req.Limit = limit
		}
	}

	return req
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DoctorListResponse) *DoctorListResponse {
	doctors := make([]DoctorResponse, len(resp.Doctors))
	for i, doc := range resp.Doctors {
		doctors[i] = DoctorResponse{
			ID:                  doc.ID.String(),
			Name:                doc.Name,
			Specialization:      doc.Specialization,
			Qualification:       doc.Qualification,
			Description:         doc.Description,
			IsActive:            doc.IsActive,
			WorkStartTime:       doc.WorkStartTime.String(),
			WorkEndTime:         doc.WorkEndTime.String(),
			SlotDurationMinutes: doc.SlotDurationMinutes,
			CreatedAt:           doc.CreatedAt.Format(time.RFC3339),
			UpdatedAt:           doc.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &DoctorListResponse{
		Doctors: doctors,
		Meta: PageMeta{
			Total:      resp.Meta.Total,
			Page:       resp.Meta.Page,
			Limit:      resp.Meta.Limit,
			TotalPages: resp.Meta.TotalPages,
		},
	}
}
