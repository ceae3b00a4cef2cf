package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/fixedoffset"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("рабочий день 09:00-17:00 по 30 минут", func(t *testing.T) {
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("17:00"), 30)

		require.Len(t, grid, 16)
		assert.Equal(t, 9*60, grid[0])
		assert.Equal(t, 16*60+30, grid[len(grid)-1])
	})

	t.Run("по 60 минут", func(t *testing.T) {
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("17:00"), 60)

		require.Len(t, grid, 8)
		assert.Equal(t, 16*60, grid[len(grid)-1])
	})

	t.Run("неполный хвостовой слот отбрасывается", func(t *testing.T) {
		// 105 минут окна, слот 30 минут: помещаются только 3 слота
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("10:45"), 30)

		require.Len(t, grid, 3)
		assert.Equal(t, []int{540, 570, 600}, grid)
	})

	t.Run("слот длиннее окна", func(t *testing.T) {
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("09:20"), 30)

		assert.Empty(t, grid)
	})

	t.Run("сетка детерминирована", func(t *testing.T) {
		a := generateTimeSlots(types.TimeString("09:00"), types.TimeString("17:00"), 45)
		b := generateTimeSlots(types.TimeString("09:00"), types.TimeString("17:00"), 45)

		assert.Equal(t, a, b)
	})
}

func TestFilterAvailable(t *testing.T) {
	ist := fixedoffset.New(5, 30)
	localDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("без записей все слоты свободны", func(t *testing.T) {
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("11:00"), 30)

		slots := filterAvailable(grid, 30, localDate, ist, nil)

		require.Len(t, slots, 4)
		// Локальные 09:00 при +5:30 = 03:30 UTC
		assert.Equal(t, time.Date(2026, 3, 10, 3, 30, 0, 0, time.UTC), slots[0].UTC)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), slots[0].Local)
	})

	t.Run("занятый слот исключается", func(t *testing.T) {
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("11:00"), 30)

		// Запись на локальные 09:30 (= 04:00 UTC)
		booked := &domain.Appointment{
			StartTime: time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 4, 30, 0, 0, time.UTC),
			Status:    domain.StatusScheduled,
		}

		slots := filterAvailable(grid, 30, localDate, ist, []*domain.Appointment{booked})

		require.Len(t, slots, 3)
		for _, s := range slots {
			assert.NotEqual(t, booked.StartTime, s.UTC)
		}
	})

	t.Run("запись с другой длительностью закрывает все пересекающиеся слоты", func(t *testing.T) {
		grid := generateTimeSlots(types.TimeString("09:00"), types.TimeString("11:00"), 30)

		// Часовая запись с локальных 09:30 перекрывает слоты 09:30 и 10:00
		booked := &domain.Appointment{
			StartTime: time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC),
			Status:    domain.StatusScheduled,
		}

		slots := filterAvailable(grid, 30, localDate, ist, []*domain.Appointment{booked})

		require.Len(t, slots, 2)
		assert.Equal(t, time.Date(2026, 3, 10, 3, 30, 0, 0, time.UTC), slots[0].UTC)
		assert.Equal(t, time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC), slots[1].UTC)
	})
}
