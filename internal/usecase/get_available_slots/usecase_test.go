package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-AppointmentService/pkg/fixedoffset"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockDoctorRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error)
}

func (m *mockDoctorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	return m.getByIDFn(ctx, id)
}

type mockAppointmentRepo struct {
	getByDoctorInRangeFn func(ctx context.Context, doctorID uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error)
}

func (m *mockAppointmentRepo) GetByDoctorInRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return m.getByDoctorInRangeFn(ctx, doctorID, from, to, status)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDoctor(id uuid.UUID) *domain.Doctor {
	return &domain.Doctor{
		ID:                  id,
		Name:                "Dr. Sharma",
		Specialization:      "cardiology",
		IsActive:            true,
		WorkStartTime:       types.TimeString("09:00"),
		WorkEndTime:         types.TimeString("17:00"),
		SlotDurationMinutes: 30,
	}
}

func TestExecute(t *testing.T) {
	ist := fixedoffset.New(5, 30)
	doctorID := uuid.New()
	localDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("врач не найден", func(t *testing.T) {
		uc := NewUseCase(
			&mockDoctorRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
				return nil, doctorRepo.ErrDoctorNotFound
			}},
			&mockAppointmentRepo{},
			ist,
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{DoctorID: doctorID, Date: localDate})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("пустой ID врача", func(t *testing.T) {
		uc := NewUseCase(&mockDoctorRepo{}, &mockAppointmentRepo{}, ist, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: localDate})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("окно запроса покрывает локальные сутки", func(t *testing.T) {
		var gotFrom, gotTo time.Time

		uc := NewUseCase(
			&mockDoctorRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
				return testDoctor(doctorID), nil
			}},
			&mockAppointmentRepo{getByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
				gotFrom, gotTo = from, to
				return nil, nil
			}},
			ist,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{DoctorID: doctorID, Date: localDate})
		require.NoError(t, err)

		// Локальная полночь 10 марта при +5:30 = 18:30 UTC 9 марта
		assert.Equal(t, time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC), gotFrom)
		assert.Equal(t, time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), gotTo)
		assert.Len(t, resp.Slots, 16)
	})

	t.Run("занятые слоты исключены из ответа", func(t *testing.T) {
		// Запись на локальные 10:00 (= 04:30 UTC)
		booked := &domain.Appointment{
			DoctorID:  doctorID,
			StartTime: time.Date(2026, 3, 10, 4, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC),
			Status:    domain.StatusScheduled,
		}

		uc := NewUseCase(
			&mockDoctorRepo{getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
				return testDoctor(doctorID), nil
			}},
			&mockAppointmentRepo{getByDoctorInRangeFn: func(ctx context.Context, id uuid.UUID, from, to time.Time, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
				return []*domain.Appointment{booked}, nil
			}},
			ist,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{DoctorID: doctorID, Date: localDate})
		require.NoError(t, err)

		assert.Len(t, resp.Slots, 15)
		for _, s := range resp.Slots {
			assert.False(t, s.UTC.Equal(booked.StartTime))
		}
	})
}
