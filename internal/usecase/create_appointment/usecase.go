package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/pkg/fixedoffset"
)

// UseCase use case создания записи на приём
//
// Конвейер проверок с фиксированным порядком (порядок определяет, какую
// ошибку первой увидит клиент):
//  1. врач существует
//  2. конец = начало + длительность слота врача, конвертация в локальное время
//  3. интервал внутри рабочих часов
//  4. пересечение с существующей записью врача
//  5. кратность начала сетке слотов
//  6. запись пациента на это же время у любого врача
//  7. вставка со статусом scheduled
//
// Шаги 4-7 выполняются в SERIALIZABLE транзакции: проверка занятости и
// вставка не атомарны сами по себе, гонку закрывают блокировка выборки и
// уникальный индекс (doctor_id, start_time) WHERE status='scheduled'
type UseCase struct {
	doctorRepo      DoctorRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	offset          fixedoffset.Offset
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	offset fixedoffset.Offset,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		offset:          offset,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: doctor=%s, patient=%s, start=%s",
		req.DoctorID, req.PatientEmail, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: rejected step=validation: %v", err)
		return nil, err
	}

	// 2. Получаем врача
	doc, err := uc.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("CreateAppointment: rejected step=doctor_lookup doctor=%s", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Вычисляем интервал приёма и локальные границы
	startUTC := req.StartTime.UTC().Truncate(time.Minute)
	requested := domain.NewInterval(startUTC, doc.SlotDurationMinutes)

	localStartMinutes := uc.offset.LocalMinutes(requested.Start)
	localEndMinutes := localStartMinutes + doc.SlotDurationMinutes

	// 4. Проверка рабочих часов
	if err := validateWorkingHours(localStartMinutes, localEndMinutes, doc); err != nil {
		uc.logger.Warn("CreateAppointment: rejected step=working_hours doctor=%s localStart=%d localEnd=%d workStart=%s workEnd=%s",
			req.DoctorID, localStartMinutes, localEndMinutes, doc.WorkStartTime, doc.WorkEndTime)
		return nil, err
	}

	var result *domain.Appointment

	// 5. Проверки занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Записи врача за локальные сутки приёма, с блокировкой
		localDate := uc.offset.LocalDate(requested.Start)
		windowFrom, windowTo := uc.offset.StorageDayWindow(localDate)

		existing, err := uc.appointmentRepo.GetByDoctorInRange(
			txCtx, doc.ID, windowFrom, windowTo, domain.StatusScheduled)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Пересечение с существующей записью врача
		if conflict := findOverlapping(requested, existing); conflict != nil {
			uc.logger.Warn("CreateAppointment: rejected step=slot_collision doctor=%s requested=[%s, %s) conflict=%s",
				req.DoctorID,
				requested.Start.Format(time.RFC3339), requested.End.Format(time.RFC3339),
				conflict.ID)
			return ErrSlotTaken
		}

		// 5.3. Кратность сетке слотов
		if !isSlotAligned(localStartMinutes, doc) {
			uc.logger.Warn("CreateAppointment: rejected step=slot_alignment doctor=%s localStart=%d workStart=%s slotDuration=%d",
				req.DoctorID, localStartMinutes, doc.WorkStartTime, doc.SlotDurationMinutes)
			return ErrSlotMisaligned
		}

		// 5.4. Двойная запись пациента на это же время
		_, err = uc.appointmentRepo.GetByPatientAndStart(
			txCtx, req.PatientEmail, requested.Start, domain.StatusScheduled)
		if err == nil {
			uc.logger.Warn("CreateAppointment: rejected step=patient_conflict patient=%s start=%s",
				req.PatientEmail, requested.Start.Format(time.RFC3339))
			return ErrPatientConflict
		}
		if !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Error("CreateAppointment: failed to check patient conflict: %v", err)
			return fmt.Errorf("%w: failed to check patient conflict: %v", ErrInternal, err)
		}

		// 5.5. Создаем запись
		appt := &domain.Appointment{
			DoctorID:     doc.ID,
			PatientName:  req.PatientName,
			PatientEmail: req.PatientEmail,
			StartTime:    requested.Start,
			EndTime:      requested.End,
			Status:       domain.StatusScheduled,
			Notes:        req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Проигравший гонку получает нарушение уникальности на вставке;
			// для клиента это тот же занятый слот, что и при проверке
			if errors.Is(err, appointmentRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateAppointment: rejected step=commit_conflict doctor=%s start=%s",
					req.DoctorID, requested.Start.Format(time.RFC3339))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// SERIALIZABLE транзакция проигравшего может упасть и на коммите;
		// для клиента это тоже занятый слот
		if isSerializationConflict(err) {
			uc.logger.Warn("CreateAppointment: rejected step=commit_conflict doctor=%s start=%s (serialization failure)",
				req.DoctorID, requested.Start.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s doctor=%s interval=[%s, %s)",
		result.ID, result.DoctorID,
		result.StartTime.Format(time.RFC3339), result.EndTime.Format(time.RFC3339))

	return fromDomain(result), nil
}

// Коды ошибок PostgreSQL: нарушение уникальности и сбой сериализации
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

func isSerializationConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == pgUniqueViolation || code == pgSerializationFailure
}
