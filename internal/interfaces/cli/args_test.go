package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/domain"
)

// Caso 1: "id" sin cantidad asume 1; "id:qty" admite decimales.
func TestParseItemSpecs(t *testing.T) {
	items, err := parseItemSpecs([]string{"consulting:8", "project-setup", "development:7.5"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "consulting", items[0].ItemID)
	assert.True(t, decimal.NewFromInt(8).Equal(items[0].Quantity))
	assert.Equal(t, "project-setup", items[1].ItemID)
	assert.True(t, decimal.NewFromInt(1).Equal(items[1].Quantity), "sin cantidad se asume 1")
	assert.True(t, decimal.RequireFromString("7.5").Equal(items[2].Quantity))
}

// Caso 2: especificaciones malformadas.
func TestParseItemSpecs_Invalidas(t *testing.T) {
	for _, spec := range []string{":5", "consulting:ocho", "consulting:"} {
		_, err := parseItemSpecs([]string{spec})
		assert.ErrorIs(t, err, domain.ErrInvalidItemFormat, "la especificación %q debe rechazarse", spec)
	}
}

// Caso 3: filtros de fecha y de estado.
func TestParseFilterFlags(t *testing.T) {
	d, err := parseDateFlag("2026-02-01")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2026-02-01", d.String())

	d, err = parseDateFlag("")
	require.NoError(t, err)
	assert.Nil(t, d, "vacío significa sin filtro")

	_, err = parseDateFlag("01/02/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDateFilter)

	paid, err := parseStatusFlag("paid")
	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.True(t, *paid)

	unpaid, err := parseStatusFlag("unpaid")
	require.NoError(t, err)
	require.NotNil(t, unpaid)
	assert.False(t, *unpaid)

	none, err := parseStatusFlag("")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = parseStatusFlag("pendiente")
	assert.ErrorIs(t, err, domain.ErrInvalidStatusFilter)
}
