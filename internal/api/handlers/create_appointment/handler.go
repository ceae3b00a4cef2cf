package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRequest      = "некорректный ID врача или формат времени, ожидается RFC3339"
	msgInvalidInput        = "некорректные данные записи"
	msgDoctorNotFound      = "врач не найден"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgSlotMisaligned      = "время начала не совпадает с сеткой расписания врача"
	msgPatientConflict     = "у пациента уже есть запись на это время"
	msgOutsideWorkingHours = "приём выходит за рабочие часы врача"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом ID и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%s", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: doctor_id=%s, start=%s", req.DoctorID, req.StartTime)
			// Передаём клиенту вычисленные границы, если они есть
			var whErr *createAppointment.WorkingHoursError
			if errors.As(err, &whErr) {
				handlers.RespondBadRequest(w, whErr.Error())
			} else {
				handlers.RespondBadRequest(w, msgOutsideWorkingHours)
			}

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: doctor_id=%s, start=%s", req.DoctorID, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSlotMisaligned):
			h.logger.Warn("POST /appointments - Slot misaligned: doctor_id=%s, start=%s", req.DoctorID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotMisaligned)

		case errors.Is(err, createAppointment.ErrPatientConflict):
			h.logger.Warn("POST /appointments - Patient conflict: patient=%s, start=%s", req.PatientEmail, req.StartTime)
			handlers.RespondConflict(w, msgPatientConflict)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: doctor_id=%s, error=%v", req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, doctor_id=%s",
		result.ID, result.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
