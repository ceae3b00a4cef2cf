package list_doctors

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
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

// Handle GET /api/v1/doctors
// Query params: specialization, page, limit (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := ToServiceRequest(query.Get("specialization"), query.Get("page"), query.Get("limit"))

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /doctors - Failed to list doctors: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors - Doctors retrieved successfully: count=%d, total=%d",
		len(result.Doctors), result.Meta.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
