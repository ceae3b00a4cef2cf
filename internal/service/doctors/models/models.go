package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateDoctorRequest запрос на создание врача
type CreateDoctorRequest struct {
	Name                string
	Specialization      string
	Qualification       *string
	Description         *string
	WorkStartTime       types.TimeString
	WorkEndTime         types.TimeString
	SlotDurationMinutes int
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateDoctorRequest) ToDomain() *domain.Doctor {
	return &domain.Doctor{
		Name:                r.Name,
		Specialization:      r.Specialization,
		Qualification:       r.Qualification,
		Description:         r.Description,
		IsActive:            true,
		WorkStartTime:       r.WorkStartTime,
		WorkEndTime:         r.WorkEndTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}

// ListDoctorsRequest запрос на получение списка врачей
type ListDoctorsRequest struct {
	Specialization *string
	Page           int64
	Limit          int64
}

// ToDomainFilter конвертирует запрос в domain фильтр с дефолтами пагинации
func (r *ListDoctorsRequest) ToDomainFilter() domain.DoctorsFilter {
	page := r.Page
	if page < 1 {
		page = domain.DefaultPage
	}

	limit := r.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	return domain.DoctorsFilter{
		Specialization: r.Specialization,
		Page:           page,
		Limit:          limit,
	}
}

// DoctorResponse модель врача для ответа сервиса
type DoctorResponse struct {
	ID                  uuid.UUID
	Name                string
	Specialization      string
	Qualification       *string
	Description         *string
	IsActive            bool
	WorkStartTime       types.TimeString
	WorkEndTime         types.TimeString
	SlotDurationMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PageMeta метаданные пагинации
type PageMeta struct {
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// DoctorListResponse страница врачей с метаданными пагинации
type DoctorListResponse struct {
	Doctors []*DoctorResponse
	Meta    PageMeta
}

// FromDomainDoctor конвертирует domain врача в модель ответа
func FromDomainDoctor(doc *domain.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:                  doc.ID,
		Name:                doc.Name,
		Specialization:      doc.Specialization,
		Qualification:       doc.Qualification,
		Description:         doc.Description,
		IsActive:            doc.IsActive,
		WorkStartTime:       doc.WorkStartTime,
		WorkEndTime:         doc.WorkEndTime,
		SlotDurationMinutes: doc.SlotDurationMinutes,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}

// FromDomainDoctorList конвертирует список domain врачей с пагинацией
func FromDomainDoctorList(doctors []*domain.Doctor, total, page, limit int64) *DoctorListResponse {
	result := make([]*DoctorResponse, len(doctors))
	for i, doc := range doctors {
		result[i] = FromDomainDoctor(doc)
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &DoctorListResponse{
		Doctors: result,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}
