package create_appointment

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/pkg/fixedoffset"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockDoctorRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	return m.getByIDFn(ctx, id)
}

type mockAppointmentRepo struct {
	createFn               func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	getByDoctorInRangeFn   func(ctx context.Context, doctorID uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error)
	getByPatientAndStartFn func(ctx context.Context, patientEmail string, start time.Time, status domain.AppointmentStatus) (*domain.Appointment, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, appt)
	}
	created := *appt
	created.ID = uuid.New()
	return &created, nil
}

func (m *mockAppointmentRepo) GetByDoctorInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	if m.getByDoctorInRangeFn != nil {
		return m.getByDoctorInRangeFn(ctx, doctorID, from, to, status)
	}
	return nil, nil
}

func (m *mockAppointmentRepo) GetByPatientAndStart(ctx context.Context, patientEmail string, start time.Time, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if m.getByPatientAndStartFn != nil {
		return m.getByPatientAndStartFn(ctx, patientEmail, start, status)
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

// inlineTxManager выполняет функцию без реальной транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	ist      = fixedoffset.New(5, 30)
	doctorID = uuid.New()
)

func testDoctor() *domain.Doctor {
	return &domain.Doctor{
		ID:                  doctorID,
		Name:                "Dr. Sharma",
		Specialization:      "cardiology",
		IsActive:            true,
		WorkStartTime:       types.TimeString("09:00"),
		WorkEndTime:         types.TimeString("17:00"),
		SlotDurationMinutes: 30,
	}
}

func foundDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
		return testDoctor(), nil
	}}
}

func validRequest(start time.Time) *Request {
	return &Request{
		DoctorID:     doctorID,
		PatientName:  "Asha Rao",
		PatientEmail: "asha@example.com",
		StartTime:    start,
	}
}

// Локальные 10:00 10 марта при +5:30 = 04:30 UTC
var localTen = time.Date(2026, 3, 10, 4, 30, 0, 0, time.UTC)

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(foundDoctorRepo(), &mockAppointmentRepo{}, inlineTxManager{}, ist, nopLogger{})

	t.Run("пустое имя пациента", func(t *testing.T) {
		req := validRequest(localTen)
		req.PatientName = "  "

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("некорректный email", func(t *testing.T) {
		req := validRequest(localTen)
		req.PatientEmail = "not-an-email"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("слишком длинные заметки", func(t *testing.T) {
		req := validRequest(localTen)
		req.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecuteDoctorNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockDoctorRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
			return nil, doctorRepo.ErrDoctorNotFound
		}},
		&mockAppointmentRepo{}, inlineTxManager{}, ist, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(localTen))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecuteWorkingHours(t *testing.T) {
	uc := NewUseCase(foundDoctorRepo(), &mockAppointmentRepo{}, inlineTxManager{}, ist, nopLogger{})

	t.Run("раньше начала рабочего дня", func(t *testing.T) {
		// Локальные 08:30 = 03:00 UTC
		_, err := uc.Execute(context.Background(),
			validRequest(time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)))
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("конец позже конца рабочего дня", func(t *testing.T) {
		// Локальные 16:45: сам слот начинается в рабочие часы,
		// но его конец 17:15 выходит за конец рабочего дня
		_, err := uc.Execute(context.Background(),
			validRequest(time.Date(2026, 3, 10, 11, 15, 0, 0, time.UTC)))
		require.ErrorIs(t, err, ErrOutsideWorkingHours)

		var whErr *WorkingHoursError
		require.ErrorAs(t, err, &whErr)
		assert.Equal(t, BoundaryWorkEnd, whErr.Boundary)
	})

	t.Run("рабочие часы проверяются раньше кратности сетке", func(t *testing.T) {
		// Локальные 08:45: и вне рабочих часов, и не кратно сетке.
		// Клиент должен увидеть ошибку рабочих часов
		_, err := uc.Execute(context.Background(),
			validRequest(time.Date(2026, 3, 10, 3, 15, 0, 0, time.UTC)))
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("последний слот дня допустим", func(t *testing.T) {
		// Локальные 16:30 = 11:00 UTC, конец ровно 17:00
		resp, err := uc.Execute(context.Background(),
			validRequest(time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC), resp.EndTime)
	})
}

func TestExecuteSlotCollision(t *testing.T) {
	existing := &domain.Appointment{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		StartTime: localTen,
		EndTime:   localTen.Add(30 * time.Minute),
		Status:    domain.StatusScheduled,
	}

	repo := &mockAppointmentRepo{
		getByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
			return []*domain.Appointment{existing}, nil
		},
	}
	uc := NewUseCase(foundDoctorRepo(), repo, inlineTxManager{}, ist, nopLogger{})

	t.Run("точное совпадение начала", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validRequest(localTen))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("частичное пересечение", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validRequest(localTen.Add(15*time.Minute)))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("пересечение проверяется раньше кратности сетке", func(t *testing.T) {
		// Начало не кратно сетке, но пересекается с существующей записью:
		// клиент видит занятый слот, а не ошибку кратности
		_, err := uc.Execute(context.Background(), validRequest(localTen.Add(10*time.Minute)))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("граничащий слот свободен", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), validRequest(localTen.Add(30*time.Minute)))
		require.NoError(t, err)
		assert.Equal(t, localTen.Add(30*time.Minute), resp.StartTime)
	})
}

func TestExecuteSlotMisaligned(t *testing.T) {
	uc := NewUseCase(foundDoctorRepo(), &mockAppointmentRepo{}, inlineTxManager{}, ist, nopLogger{})

	// Локальные 10:10, записей нет
	_, err := uc.Execute(context.Background(), validRequest(localTen.Add(10*time.Minute)))
	assert.ErrorIs(t, err, ErrSlotMisaligned)
}

func TestExecutePatientConflict(t *testing.T) {
	other := &domain.Appointment{
		ID:        uuid.New(),
		DoctorID:  uuid.New(),
		StartTime: localTen,
		Status:    domain.StatusScheduled,
	}

	repo := &mockAppointmentRepo{
		getByPatientAndStartFn: func(ctx context.Context, email string, start time.Time, status domain.AppointmentStatus) (*domain.Appointment, error) {
			return other, nil
		},
	}
	uc := NewUseCase(foundDoctorRepo(), repo, inlineTxManager{}, ist, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(localTen))
	assert.ErrorIs(t, err, ErrPatientConflict)
}

func TestExecuteCommitConflicts(t *testing.T) {
	t.Run("нарушение уникальности на вставке", func(t *testing.T) {
		repo := &mockAppointmentRepo{
			createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
				return nil, appointmentRepo.ErrSlotConflict
			},
		}
		uc := NewUseCase(foundDoctorRepo(), repo, inlineTxManager{}, ist, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(localTen))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("сбой сериализации на коммите", func(t *testing.T) {
		failingTx := failingTxManager{err: &pq.Error{Code: "40001"}}
		uc := NewUseCase(foundDoctorRepo(), &mockAppointmentRepo{}, failingTx, ist, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest(localTen))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

type failingTxManager struct {
	err error
}

func (m failingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.err
}

func TestExecuteSuccess(t *testing.T) {
	var created *domain.Appointment

	repo := &mockAppointmentRepo{
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			c := *appt
			c.ID = uuid.New()
			created = &c
			return &c, nil
		},
	}
	uc := NewUseCase(foundDoctorRepo(), repo, inlineTxManager{}, ist, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(localTen))
	require.NoError(t, err)

	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, doctorID, resp.DoctorID)
	assert.Equal(t, localTen, resp.StartTime)
	assert.Equal(t, localTen.Add(30*time.Minute), resp.EndTime)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
}

// Последовательная имитация гонки: два запроса на один слот через общий стор,
// победитель записывается, проигравший видит занятый слот
func TestExecuteDoubleBooking(t *testing.T) {
	var mu sync.Mutex
	var stored []*domain.Appointment

	repo := &mockAppointmentRepo{
		getByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
			mu.Lock()
			defer mu.Unlock()
			out := make([]*domain.Appointment, len(stored))
			copy(out, stored)
			return out, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			mu.Lock()
			defer mu.Unlock()
			c := *appt
			c.ID = uuid.New()
			stored = append(stored, &c)
			return &c, nil
		},
	}
	uc := NewUseCase(foundDoctorRepo(), repo, inlineTxManager{}, ist, nopLogger{})

	first := validRequest(localTen)
	second := validRequest(localTen)
	second.PatientEmail = "rohan@example.com"

	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotTaken)
}
