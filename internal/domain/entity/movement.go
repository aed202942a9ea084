package entity

import (
	"fmt"
	"strings"
	"time"
)

// Direction sentido de un movimiento de inventario.
type Direction string

// Sentidos válidos de movimiento.
const (
	DirectionIN  Direction = "IN"  // entrada
	DirectionOUT Direction = "OUT" // salida (consumo, baja o asiento compensatorio)
)

// Valid indica si el sentido es IN u OUT.
func (d Direction) Valid() bool {
	return d == DirectionIN || d == DirectionOUT
}

// ParseDirection acepta "in"/"out" sin distinguir mayúsculas.
func ParseDirection(s string) Direction {
	return Direction(strings.ToUpper(strings.TrimSpace(s)))
}

// MovementEvent hecho inmutable del libro de movimientos.
// SubjectID vacío = stock general de la residencia; con valor = asignación personal del sujeto.
type MovementEvent struct {
	ID        string
	Seq       int64 // orden de inserción, lo asigna el libro
	Date      time.Time
	Direction Direction
	ItemID    string
	SubjectID string
	Quantity  int64
	Note      string
}

// IsFacility indica si el evento pertenece al stock general.
func (e MovementEvent) IsFacility() bool {
	return e.SubjectID == ""
}

// Signed cantidad con signo: positiva en IN, negativa en OUT.
func (e MovementEvent) Signed() int64 {
	if e.Direction == DirectionOUT {
		return -e.Quantity
	}
	return e.Quantity
}

// Validate verifica las invariantes del evento. El error describe el motivo;
// la capa que lo llame lo envuelve con domain.ErrValidation.
func (e MovementEvent) Validate() error {
	if !e.Direction.Valid() {
		return fmt.Errorf("sentido %q no es IN ni OUT", e.Direction)
	}
	if e.Quantity <= 0 {
		return fmt.Errorf("cantidad %d debe ser positiva", e.Quantity)
	}
	if strings.TrimSpace(e.ItemID) == "" {
		return fmt.Errorf("item_id requerido")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("fecha requerida")
	}
	return nil
}

// ScopeMode cómo filtra el libro por sujeto.
type ScopeMode int

const (
	// ScopeAny todos los eventos, con o sin sujeto.
	ScopeAny ScopeMode = iota
	// ScopeFacility solo eventos sin sujeto (stock general).
	ScopeFacility
	// ScopeSubject solo eventos de un sujeto concreto.
	ScopeSubject
)

// SubjectScope filtro de sujeto para consultas al libro.
type SubjectScope struct {
	Mode      ScopeMode
	SubjectID string
}

// AnySubject no filtra por sujeto.
func AnySubject() SubjectScope { return SubjectScope{Mode: ScopeAny} }

// FacilityOnly filtra el stock general.
func FacilityOnly() SubjectScope { return SubjectScope{Mode: ScopeFacility} }

// OnlySubject filtra la asignación personal de un sujeto.
func OnlySubject(subjectID string) SubjectScope {
	return SubjectScope{Mode: ScopeSubject, SubjectID: subjectID}
}

// ScopeFor devuelve el alcance exacto de una clave de saldo: "" es el stock general, nunca "todos".
func ScopeFor(subjectID string) SubjectScope {
	if subjectID == "" {
		return FacilityOnly()
	}
	return OnlySubject(subjectID)
}

// Matches indica si un subjectID cae dentro del alcance.
func (s SubjectScope) Matches(subjectID string) bool {
	switch s.Mode {
	case ScopeFacility:
		return subjectID == ""
	case ScopeSubject:
		return subjectID == s.SubjectID
	default:
		return true
	}
}

// MovementFilter criterios de consulta del libro. Fechas inclusivas; nil = sin límite.
type MovementFilter struct {
	ItemID    string
	Scope     SubjectScope
	From      *time.Time
	To        *time.Time
	Direction Direction // vacío = ambos
}

// Matches aplica el filtro a un evento.
func (f MovementFilter) Matches(e MovementEvent) bool {
	if f.ItemID != "" && e.ItemID != f.ItemID {
		return false
	}
	if !f.Scope.Matches(e.SubjectID) {
		return false
	}
	if f.From != nil && e.Date.Before(DateOf(*f.From)) {
		return false
	}
	if f.To != nil && e.Date.After(DateOf(*f.To)) {
		return false
	}
	if f.Direction != "" && e.Direction != f.Direction {
		return false
	}
	return true
}
