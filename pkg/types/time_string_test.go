package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("валидное время", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00", ts.String())
	})

	t.Run("некорректный формат", func(t *testing.T) {
		for _, s := range []string{"9:00:00", "25:00", "09:60", "abc", ""} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", s)
		}
	})
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 9*60, TimeString("09:00").Minutes())
	assert.Equal(t, 17*60+30, TimeString("17:30").Minutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").Minutes())
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), FromMinutes(540))
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("23:59"), FromMinutes(1439))

	// Нормализация за пределами суток
	assert.Equal(t, TimeString("00:30"), FromMinutes(1470))
	assert.Equal(t, TimeString("23:30"), FromMinutes(-30))
}

func TestAddMinutes(t *testing.T) {
	t.Run("внутри суток", func(t *testing.T) {
		got, err := TimeString("09:00").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), got)
	})

	t.Run("выход за конец суток", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("отрицательный результат", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestIsBeforeIsAfter(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestJSON(t *testing.T) {
	t.Run("маршалинг", func(t *testing.T) {
		data, err := json.Marshal(TimeString("09:00"))
		require.NoError(t, err)
		assert.Equal(t, `"09:00"`, string(data))
	})

	t.Run("демаршалинг с валидацией", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, json.Unmarshal([]byte(`"17:30"`), &ts))
		assert.Equal(t, TimeString("17:30"), ts)

		assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &ts))
	})
}

func TestScan(t *testing.T) {
	t.Run("строка с секундами из Postgres", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("09:00:00"))
		assert.Equal(t, TimeString("09:00"), ts)
	})

	t.Run("байты", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("17:30:00")))
		assert.Equal(t, TimeString("17:30"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 9, 15, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("09:15"), ts)
	})

	t.Run("неподдерживаемый тип", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
