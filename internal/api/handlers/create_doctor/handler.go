package create_doctor

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/doctors"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат рабочих часов, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные врача"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /api/v1/doctors
// Доступно только пользователям с ролью admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok || user.Role != string(domain.RoleAdmin) {
		h.logger.Warn("POST /doctors - Access denied: role check failed")
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /doctors - Failed to parse working hours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrInvalidInput):
			h.logger.Warn("POST /doctors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /doctors - Failed to create doctor: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors - Doctor created successfully: doctor_id=%s, created_by=%s", result.ID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
