package fixedoffset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 330, New(5, 30).TotalMinutes())
	assert.Equal(t, -180, New(-3, 0).TotalMinutes())
	assert.Equal(t, 0, New(0, 0).TotalMinutes())
}

func TestToLocal(t *testing.T) {
	ist := New(5, 30)

	utc := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
	local := ist.ToLocal(utc)

	assert.Equal(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC), local)
}

func TestLocalMinutes(t *testing.T) {
	ist := New(5, 30)

	// 04:00 UTC = 09:30 локального времени
	utc := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, 9*60+30, ist.LocalMinutes(utc))

	// 20:00 UTC = 01:30 локального времени следующего дня
	evening := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 90, ist.LocalMinutes(evening))
}

func TestLocalDate(t *testing.T) {
	ist := New(5, 30)

	// 20:00 UTC 10 марта = 01:30 локального времени 11 марта
	utc := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2026, 3, 11), ist.LocalDate(utc))

	// 04:00 UTC остаётся в тех же локальных сутках
	morning := time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2026, 3, 10), ist.LocalDate(morning))
}

func TestToStorage(t *testing.T) {
	ist := New(5, 30)

	t.Run("внутри суток", func(t *testing.T) {
		// Локальные 09:30 = 04:00 UTC того же дня
		got := ist.ToStorage(9, 30, date(2026, 3, 10))
		assert.Equal(t, time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC), got)
	})

	t.Run("перенос на предыдущий день", func(t *testing.T) {
		// Локальная полночь при +5:30 = 18:30 UTC предыдущего дня
		got := ist.ToStorage(0, 0, date(2026, 3, 10))
		assert.Equal(t, time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC), got)
	})

	t.Run("отрицательное смещение переносит вперёд", func(t *testing.T) {
		// При -3:00 локальные 23:00 = 02:00 UTC следующего дня
		got := New(-3, 0).ToStorage(23, 0, date(2026, 3, 10))
		assert.Equal(t, time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC), got)
	})

	t.Run("нулевое смещение тождественно", func(t *testing.T) {
		got := New(0, 0).ToStorage(14, 15, date(2026, 3, 10))
		assert.Equal(t, time.Date(2026, 3, 10, 14, 15, 0, 0, time.UTC), got)
	})
}

func TestRoundTrip(t *testing.T) {
	offsets := []Offset{
		New(5, 30),
		New(-3, 0),
		New(0, 0),
		New(12, 45),
		New(-9, -30),
	}

	for _, o := range offsets {
		for hour := 0; hour < 24; hour += 3 {
			storage := o.ToStorage(hour, 15, date(2026, 6, 1))

			assert.Equal(t, hour*60+15, o.LocalMinutes(storage),
				"offset=%+v hour=%d", o, hour)
			assert.Equal(t, date(2026, 6, 1), o.LocalDate(storage),
				"offset=%+v hour=%d", o, hour)
		}
	}
}

func TestStorageDayWindow(t *testing.T) {
	ist := New(5, 30)

	from, to := ist.StorageDayWindow(date(2026, 3, 10))

	assert.Equal(t, time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), to)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}
