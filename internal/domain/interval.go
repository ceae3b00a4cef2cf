package domain

import "time"

// Interval полуинтервал времени хранения [Start, End)
// Единственное место в системе, где сравниваются интервалы записей:
// и фильтрация занятых слотов сетки, и проверка коллизий при создании
// используют этот предикат
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал длиной durationMinutes от start
func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps возвращает true, если полуинтервалы имеют хотя бы один общий момент
// Граничащие интервалы ([10:00,10:30) и [10:30,11:00)) НЕ пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
