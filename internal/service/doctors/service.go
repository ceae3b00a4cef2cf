package doctors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

// Service сервис для работы с врачами
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// Create создает нового врача
func (s *Service) Create(ctx context.Context, req *models.CreateDoctorRequest) (*models.DoctorResponse, error) {
	s.logger.Info("Create: creating doctor name=%s specialization=%s", req.Name, req.Specialization)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Specialization) == "" {
		return nil, fmt.Errorf("%w: specialization is required", ErrInvalidInput)
	}

	doc := req.ToDomain()
	if err := doc.ValidateWorkingHours(); err != nil {
		s.logger.Warn("Create: invalid working hours: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.doctorRepo.Create(ctx, doc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created doctor id=%s", created.ID)
	return models.FromDomainDoctor(created), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%s", id)

	doc, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%s not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doc), nil
}

// List получает страницу врачей с фильтрацией по специализации
func (s *Service) List(ctx context.Context, req *models.ListDoctorsRequest) (*models.DoctorListResponse, error) {
	filter := req.ToDomainFilter()

	s.logger.Info("List: fetching doctors specialization=%v page=%d limit=%d",
		filter.Specialization, filter.Page, filter.Limit)

	doctors, total, err := s.doctorRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d doctors (total=%d)", len(doctors), total)
	return models.FromDomainDoctorList(doctors, total, filter.Page, filter.Limit), nil
}
