package entity

import (
	"fmt"
	"time"
)

// dateLayout formato de persistencia y de entrada por CLI (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// Date fecha de calendario sin hora ni zona horaria. Se persiste y se parsea
// siempre como YYYY-MM-DD, de modo que las comparaciones de rango del libro
// sean exactas día a día.
type Date struct {
	t time.Time
}

// NewDate construye una fecha a partir de año, mes y día.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca un time.Time a su fecha de calendario local.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parsea una fecha en formato YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// Year devuelve el año de calendario (conduce la renovación del contador).
func (d Date) Year() int { return d.t.Year() }

// Before reporta si d es estrictamente anterior a other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reporta si d es estrictamente posterior a other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reporta si ambas fechas son el mismo día de calendario.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// AddDays devuelve la fecha desplazada n días (para fechas de vencimiento).
func (d Date) AddDays(n int) Date { return DateOf(d.t.AddDate(0, 0, n)) }

// IsZero reporta si la fecha no fue inicializada.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String devuelve YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(dateLayout) }

// Format delega en time.Time.Format para presentación (p. ej. "January 02, 2006").
func (d Date) Format(layout string) string { return d.t.Format(layout) }

// MarshalText serializa como YYYY-MM-DD (TOML la guarda como string).
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parsea YYYY-MM-DD.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
