package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/pkg/fixedoffset"
)

// UseCase use case получения свободных слотов врача на дату
type UseCase struct {
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	offset          fixedoffset.Offset
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	offset fixedoffset.Offset,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		offset:          offset,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.DoctorID == uuid.Nil {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем врача
	doc, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Окно суток хранения, соответствующее локальной дате запроса.
	// Границы получаются конвертацией локальной полуночи: сутки хранения
	// и локальные сутки не совпадают при ненулевом смещении
	windowFrom, windowTo := uc.offset.StorageDayWindow(req.Date)

	// 4. Активные записи врача в этом окне
	appointments, err := uc.appointmentRepo.GetByDoctorInRange(
		ctx, doc.ID, windowFrom, windowTo, domain.StatusScheduled)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерируем сетку и отбрасываем занятые слоты
	grid := generateTimeSlots(doc.WorkStartTime, doc.WorkEndTime, doc.SlotDurationMinutes)
	slots := filterAvailable(grid, doc.SlotDurationMinutes, req.Date, uc.offset, appointments)

	uc.logger.Info("GetAvailableSlots: doctor=%s date=%s grid=%d available=%d booked=%d",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(grid), len(slots), len(appointments))

	return &Response{
		DoctorID: doc.ID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
