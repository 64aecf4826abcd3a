package dashboard

import "time"

// Window agrupa los límites de calendario que usan todos los clasificadores.
// Todos los valores quedan normalizados a medianoche UTC del día de calendario
// correspondiente, así las comparaciones no arrastran zona ni hora.
type Window struct {
	Today            time.Time
	Yesterday        time.Time
	SevenDaysFromNow time.Time
	OneMonthFromNow  time.Time
}

func NewWindow(now time.Time) Window {
	today := startOfDay(now)
	return Window{
		Today:            today,
		Yesterday:        today.AddDate(0, 0, -1),
		SevenDaysFromNow: today.AddDate(0, 0, 7),
		OneMonthFromNow:  today.AddDate(0, 1, 0),
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
