package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// Caso 1: parseo y serialización son inversos; el formato es YYYY-MM-DD.
func TestDate_ParseoYSerializacion(t *testing.T) {
	d, err := entity.ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())
	assert.Equal(t, 2026, d.Year())

	text, err := d.MarshalText()
	require.NoError(t, err)
	var back entity.Date
	require.NoError(t, back.UnmarshalText(text))
	assert.True(t, d.Equal(back))

	_, err = entity.ParseDate("15/03/2026")
	assert.Error(t, err)
}

// Caso 2: AddDays cruza límites de mes y de año correctamente (fechas de
// vencimiento).
func TestDate_AddDays(t *testing.T) {
	d := entity.NewDate(2026, time.December, 15)
	due := d.AddDays(30)
	assert.Equal(t, "2027-01-14", due.String(), "el vencimiento puede caer en el año siguiente")
	assert.Equal(t, 2027, due.Year())
}

// Caso 3: las comparaciones son estrictas; el mismo día no es ni antes ni
// después.
func TestDate_Comparaciones(t *testing.T) {
	a := entity.NewDate(2026, time.February, 1)
	b := entity.NewDate(2026, time.February, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a), "una fecha no es anterior a sí misma")
	assert.False(t, a.After(a))
	assert.True(t, a.Equal(a))
}
