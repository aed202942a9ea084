package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExpiringEntity entidad externa con vencimiento (documento, certificado, receta).
// Fija ExpirationDate, o bien IssueDate + ValidityPeriodDays.
type ExpiringEntity struct {
	ID                 string
	Label              string
	ExpirationDate     *time.Time
	IssueDate          *time.Time
	ValidityPeriodDays int
	SubjectRef         string
}

// Expiration fecha de vencimiento efectiva. Error si el registro está mal formado.
func (e ExpiringEntity) Expiration() (time.Time, error) {
	if e.ExpirationDate != nil {
		return DateOf(*e.ExpirationDate), nil
	}
	if e.IssueDate == nil {
		return time.Time{}, fmt.Errorf("entidad %q sin fecha de vencimiento ni de emisión", e.ID)
	}
	if e.ValidityPeriodDays <= 0 {
		return time.Time{}, fmt.Errorf("entidad %q con vigencia %d no positiva", e.ID, e.ValidityPeriodDays)
	}
	return AddDays(*e.IssueDate, e.ValidityPeriodDays), nil
}

// Recurrence fecha anual (cumpleaños, aniversario de ingreso).
type Recurrence struct {
	ID         string
	Label      string
	MonthDay   string // MM-DD
	SubjectRef string
}

// ParseMonthDay interpreta "MM-DD".
func ParseMonthDay(s string) (time.Month, int, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("mes-día %q: formato MM-DD", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("mes-día %q: mes inválido", s)
	}
	d, err := strconv.Atoi(parts[1])
	if err != nil || d < 1 || d > daysIn(time.Month(m), 2024) {
		return 0, 0, fmt.Errorf("mes-día %q: día inválido", s)
	}
	return time.Month(m), d, nil
}

// OccursOn indica si la recurrencia cae en day. El 29/02 se celebra el 28/02 en años no bisiestos.
func (r Recurrence) OccursOn(day time.Time) (bool, error) {
	m, d, err := ParseMonthDay(r.MonthDay)
	if err != nil {
		return false, err
	}
	if m == time.February && d == 29 && daysIn(time.February, day.Year()) == 28 {
		d = 28
	}
	return day.Month() == m && day.Day() == d, nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ScheduledEvent evento puntual en una fecha y hora (cita médica, visita).
type ScheduledEvent struct {
	ID         string
	Label      string
	Date       time.Time
	Time       string // HH:MM con ceros a la izquierda; vacío = todo el día
	SubjectRef string
}

// NormalizedTime hora en formato HH:MM para ordenar lexicográficamente ("9:05" → "09:05").
func (s ScheduledEvent) NormalizedTime() (string, error) {
	t := strings.TrimSpace(s.Time)
	if t == "" {
		return "", nil
	}
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return "", fmt.Errorf("evento %q: hora %q inválida", s.ID, s.Time)
	}
	return parsed.Format("15:04"), nil
}
