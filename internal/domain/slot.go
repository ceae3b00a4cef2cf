package domain

import "time"

// TimeSlot свободный слот для записи: один и тот же момент времени
// в представлении хранения (UTC) и в локальном представлении
// (момент хранения плюс фиксированное смещение, без тега таймзоны).
// Результат запроса доступности, не персистится
type TimeSlot struct {
	UTC   time.Time
	Local time.Time
}
