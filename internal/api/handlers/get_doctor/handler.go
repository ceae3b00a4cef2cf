package get_doctor

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors"
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors/models"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgNotFound        = "врач не найден"
)

type Handler struct {
	service DoctorService
	logger  Logger
}

func NewHandler(service DoctorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
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

// Handle GET /api/v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		h.logger.Warn("GET /doctors/{id} - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.service.GetByID(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id} - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /doctors/{id} - Failed to get doctor: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id} - Doctor retrieved successfully: doctor_id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
