// Package seed carga datos de referencia (catálogo, residentes, documentos, recurrencias,
// agenda y movimientos iniciales) desde un archivo YAML o JSON.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/jhoicas/residencia-inventario/internal/domain/entity"
)

type itemRecord struct {
	ID               string `mapstructure:"id"`
	Name             string `mapstructure:"name"`
	Category         string `mapstructure:"category"`
	Unit             string `mapstructure:"unit"`
	MinimumThreshold int64  `mapstructure:"minimum_threshold"`
}

type subjectRecord struct {
	ID          string `mapstructure:"id"`
	DisplayName string `mapstructure:"display_name"`
	IsActive    *bool  `mapstructure:"is_active"`
}

type documentRecord struct {
	ID             string `mapstructure:"id"`
	Label          string `mapstructure:"label"`
	SubjectRef     string `mapstructure:"subject_ref"`
	ExpirationDate string `mapstructure:"expiration_date"`
	IssueDate      string `mapstructure:"issue_date"`
	ValidityDays   int    `mapstructure:"validity_days"`
}

type recurrenceRecord struct {
	ID         string `mapstructure:"id"`
	Label      string `mapstructure:"label"`
	MonthDay   string `mapstructure:"month_day"`
	SubjectRef string `mapstructure:"subject_ref"`
}

type scheduleRecord struct {
	ID         string `mapstructure:"id"`
	Label      string `mapstructure:"label"`
	Date       string `mapstructure:"date"`
	Time       string `mapstructure:"time"`
	SubjectRef string `mapstructure:"subject_ref"`
}

type movementRecord struct {
	ID        string `mapstructure:"id"`
	Date      string `mapstructure:"date"`
	Direction string `mapstructure:"direction"`
	ItemID    string `mapstructure:"item_id"`
	SubjectID string `mapstructure:"subject_id"`
	Quantity  int64  `mapstructure:"quantity"`
	Note      string `mapstructure:"note"`
}

type file struct {
	Items       []itemRecord       `mapstructure:"items"`
	Subjects    []subjectRecord    `mapstructure:"subjects"`
	Documents   []documentRecord   `mapstructure:"documents"`
	Recurrences []recurrenceRecord `mapstructure:"recurrences"`
	Schedules   []scheduleRecord   `mapstructure:"schedules"`
	Movements   []movementRecord   `mapstructure:"movements"`
}

// Data contenido de la semilla ya convertido a entidades.
type Data struct {
	Items       []entity.Item
	Subjects    []entity.Subject
	Documents   []entity.ExpiringEntity
	Recurrences []entity.Recurrence
	Schedules   []entity.ScheduledEvent
	Movements   []*entity.MovementEvent
}

// Load lee la semilla; el formato se deduce de la extensión (.yaml, .yml, .json, .toml).
func Load(path string) (*Data, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("leer semilla %s: %w", path, err)
	}
	return FromViper(v)
}

// FromViper convierte una configuración ya leída (tests con ReadConfig sobre un buffer).
func FromViper(v *viper.Viper) (*Data, error) {
	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decodificar semilla: %w", err)
	}
	return f.toData()
}

func (f file) toData() (*Data, error) {
	d := &Data{}
	for _, r := range f.Items {
		d.Items = append(d.Items, entity.Item{
			ID: r.ID, Name: r.Name, Category: r.Category, Unit: r.Unit, MinimumThreshold: r.MinimumThreshold,
		})
	}
	for _, r := range f.Subjects {
		active := r.IsActive == nil || *r.IsActive
		d.Subjects = append(d.Subjects, entity.Subject{ID: r.ID, DisplayName: r.DisplayName, IsActive: active})
	}
	for _, r := range f.Documents {
		e := entity.ExpiringEntity{ID: r.ID, Label: r.Label, SubjectRef: r.SubjectRef, ValidityPeriodDays: r.ValidityDays}
		var err error
		if e.ExpirationDate, err = optionalDate(r.ExpirationDate); err != nil {
			return nil, fmt.Errorf("documento %s: %w", r.ID, err)
		}
		if e.IssueDate, err = optionalDate(r.IssueDate); err != nil {
			return nil, fmt.Errorf("documento %s: %w", r.ID, err)
		}
		d.Documents = append(d.Documents, e)
	}
	for _, r := range f.Recurrences {
		d.Recurrences = append(d.Recurrences, entity.Recurrence{ID: r.ID, Label: r.Label, MonthDay: r.MonthDay, SubjectRef: r.SubjectRef})
	}
	for _, r := range f.Schedules {
		date, err := entity.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("evento %s: %w", r.ID, err)
		}
		d.Schedules = append(d.Schedules, entity.ScheduledEvent{ID: r.ID, Label: r.Label, Date: date, Time: r.Time, SubjectRef: r.SubjectRef})
	}
	for i, r := range f.Movements {
		date, err := entity.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("movimiento %d: %w", i, err)
		}
		d.Movements = append(d.Movements, &entity.MovementEvent{
			ID:        r.ID,
			Date:      date,
			Direction: entity.ParseDirection(r.Direction),
			ItemID:    r.ItemID,
			SubjectID: r.SubjectID,
			Quantity:  r.Quantity,
			Note:      r.Note,
		})
	}
	return d, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := entity.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Sink destinos de la semilla. Un campo nil omite esa parte.
type Sink struct {
	Item       func(ctx context.Context, it entity.Item) error
	Subject    func(ctx context.Context, s entity.Subject) error
	Document   func(ctx context.Context, e entity.ExpiringEntity) error
	Recurrence func(ctx context.Context, r entity.Recurrence) error
	Schedule   func(ctx context.Context, s entity.ScheduledEvent) error
	// Movements recibe todos los movimientos en un único lote (todo o nada).
	Movements func(ctx context.Context, evs []*entity.MovementEvent) error
}

// Apply vuelca la semilla en los destinos, en orden: catálogo, residentes, fuentes y libro.
func (d *Data) Apply(ctx context.Context, sink Sink) error {
	if sink.Item != nil {
		for _, it := range d.Items {
			if err := sink.Item(ctx, it); err != nil {
				return fmt.Errorf("semilla artículo %s: %w", it.ID, err)
			}
		}
	}
	if sink.Subject != nil {
		for _, s := range d.Subjects {
			if err := sink.Subject(ctx, s); err != nil {
				return fmt.Errorf("semilla residente %s: %w", s.ID, err)
			}
		}
	}
	if sink.Document != nil {
		for _, e := range d.Documents {
			if err := sink.Document(ctx, e); err != nil {
				return fmt.Errorf("semilla documento %s: %w", e.ID, err)
			}
		}
	}
	if sink.Recurrence != nil {
		for _, r := range d.Recurrences {
			if err := sink.Recurrence(ctx, r); err != nil {
				return fmt.Errorf("semilla recurrencia %s: %w", r.ID, err)
			}
		}
	}
	if sink.Schedule != nil {
		for _, s := range d.Schedules {
			if err := sink.Schedule(ctx, s); err != nil {
				return fmt.Errorf("semilla evento %s: %w", s.ID, err)
			}
		}
	}
	if sink.Movements != nil && len(d.Movements) > 0 {
		if err := sink.Movements(ctx, d.Movements); err != nil {
			return fmt.Errorf("semilla movimientos: %w", err)
		}
	}
	return nil
}
