package entity

import (
	"fmt"
	"time"
)

// DateLayout formato de fecha de los movimientos y alertas (granularidad día).
const DateLayout = "2006-01-02"

// DateOf normaliza t a medianoche UTC conservando el día calendario de t.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDate construye una fecha de día calendario.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween días calendario de from a to (negativo si to es anterior).
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// AddDays suma n días calendario (no hábiles).
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}
