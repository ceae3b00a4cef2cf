// Package fixedoffset реализует конвертацию между временем хранения (UTC)
// и локальным временем деплоя через фиксированное смещение без правил DST.
//
// Все функции чистые и тотальные: одно и то же смещение применяется ко всем
// конвертациям процесса, значение задаётся конфигурацией при старте.
package fixedoffset

import "time"

const minutesPerDay = 24 * 60

// Offset фиксированное смещение локального времени относительно времени хранения
// Знак задаётся полем Hours, Minutes должно иметь тот же знак (или ноль)
// Например, IST (+5:30): Offset{Hours: 5, Minutes: 30}
type Offset struct {
	Hours   int
	Minutes int
}

// New создает смещение из часов и минут
func New(hours, minutes int) Offset {
	return Offset{Hours: hours, Minutes: minutes}
}

// TotalMinutes возвращает смещение в минутах
func (o Offset) TotalMinutes() int {
	return o.Hours*60 + o.Minutes
}

// ToLocal возвращает тот же момент времени, сдвинутый в локальное представление
// Результат остаётся в UTC-локации: это "момент хранения плюс смещение",
// а не значение с таймзоной
func (o Offset) ToLocal(t time.Time) time.Time {
	return t.Add(time.Duration(o.TotalMinutes()) * time.Minute)
}

// LocalMinutes возвращает локальное время момента t в минутах с начала суток
func (o Offset) LocalMinutes(t time.Time) int {
	local := o.ToLocal(t).UTC()
	return local.Hour()*60 + local.Minute()
}

// LocalDate возвращает локальную календарную дату момента t (время обнулено)
func (o Offset) LocalDate(t time.Time) time.Time {
	local := o.ToLocal(t).UTC()
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToStorage возвращает момент хранения, локальное представление которого
// имеет заданные часы и минуты в локальную календарную дату localDate.
//
// Конвертация может пересечь границу календарного дня назад: например, при
// смещении +5:30 локальные 00:00 соответствуют 18:30 предыдущего дня хранения.
// Минуты нормализуются в [0, 1440), перенос дня учитывается явно — наивная
// установка часов и минут на дате ломает границы суток
func (o Offset) ToStorage(hour, minute int, localDate time.Time) time.Time {
	total := hour*60 + minute - o.TotalMinutes()

	days := 0
	for total < 0 {
		total += minutesPerDay
		days--
	}
	for total >= minutesPerDay {
		total -= minutesPerDay
		days++
	}

	year, month, day := localDate.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return midnight.AddDate(0, 0, days).Add(time.Duration(total) * time.Minute)
}

// StorageDayWindow возвращает полуинтервал [from, to) времени хранения,
// покрывающий локальные сутки даты localDate. Границы вычисляются
// конвертацией локальной полуночи: окно суток хранения и локальных суток
// не совпадает при ненулевом смещении
func (o Offset) StorageDayWindow(localDate time.Time) (time.Time, time.Time) {
	from := o.ToStorage(0, 0, localDate)
	return from, from.Add(24 * time.Hour)
}
