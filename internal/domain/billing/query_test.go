package billing_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func entry(number, client, date, total string, paid bool) entity.LedgerEntry {
	d, err := entity.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return entity.LedgerEntry{
		Number:    number,
		ClientID:  client,
		IssueDate: d,
		Total:     decimal.RequireFromString(total),
		Paid:      paid,
	}
}

func datePtr(s string) *entity.Date {
	d, err := entity.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func boolPtr(b bool) *bool { return &b }

// testLedger libro de ejemplo en orden de inserción.
func testLedger() []entity.LedgerEntry {
	return []entity.LedgerEntry{
		entry("INV-2026-0001", "acme", "2026-01-10", "1000.00", true),
		entry("INV-2026-0002", "globex", "2026-02-01", "250.00", false),
		entry("INV-2026-0003", "acme", "2026-02-15", "500.00", false),
		entry("INV-2026-0004", "acme", "2026-03-20", "750.00", true),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests QueryLedger
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el filtro por cliente devuelve solo sus facturas, la más reciente
// primero, con los tres agregados correctos.
func TestQueryLedger_PorCliente_OrdenInverso(t *testing.T) {
	st := billing.QueryLedger(testLedger(), billing.Filter{ClientID: "acme"})

	require.Len(t, st.Rows, 3)
	assert.Equal(t, "INV-2026-0004", st.Rows[0].Number, "la más reciente va primero")
	assert.Equal(t, "INV-2026-0003", st.Rows[1].Number)
	assert.Equal(t, "INV-2026-0001", st.Rows[2].Number)

	assertDecimal(t, "2250.00", st.Total, "total")
	assertDecimal(t, "1750.00", st.Paid, "pagado")
	assertDecimal(t, "500.00", st.Outstanding, "pendiente")
}

// Caso 2: ambos extremos del rango de fechas son inclusivos; un día antes o
// después del límite queda fuera.
func TestQueryLedger_RangoInclusivo(t *testing.T) {
	ledger := []entity.LedgerEntry{
		entry("INV-2026-0001", "acme", "2026-01-31", "1.00", false),
		entry("INV-2026-0002", "acme", "2026-02-01", "1.00", false), // == from
		entry("INV-2026-0003", "acme", "2026-02-20", "1.00", false),
		entry("INV-2026-0004", "acme", "2026-02-28", "1.00", false), // == to
		entry("INV-2026-0005", "acme", "2026-03-01", "1.00", false),
	}

	st := billing.QueryLedger(ledger, billing.Filter{
		ClientID: "acme",
		From:     datePtr("2026-02-01"),
		To:       datePtr("2026-02-28"),
	})

	require.Len(t, st.Rows, 3, "las fechas exactamente en los límites deben incluirse")
	for _, e := range st.Rows {
		assert.NotEqual(t, "INV-2026-0001", e.Number)
		assert.NotEqual(t, "INV-2026-0005", e.Number)
	}
}

// Caso 3: filtro por estado de pago.
func TestQueryLedger_FiltroEstado(t *testing.T) {
	paid := billing.QueryLedger(testLedger(), billing.Filter{ClientID: "acme", Paid: boolPtr(true)})
	require.Len(t, paid.Rows, 2)
	assertDecimal(t, "1750.00", paid.Total, "total de pagadas")
	assertDecimal(t, "0.00", paid.Outstanding, "un conjunto de pagadas no tiene pendiente")

	unpaid := billing.QueryLedger(testLedger(), billing.Filter{ClientID: "acme", Paid: boolPtr(false)})
	require.Len(t, unpaid.Rows, 1)
	assertDecimal(t, "500.00", unpaid.Outstanding, "pendiente de no pagadas")
}

// Caso 4: un cliente sin historial (o desconocido) produce conjunto vacío
// con totales en cero; nunca es un error.
func TestQueryLedger_ClienteSinHistorial(t *testing.T) {
	st := billing.QueryLedger(testLedger(), billing.Filter{ClientID: "nadie"})

	assert.Empty(t, st.Rows)
	assert.True(t, st.Total.IsZero(), "total de conjunto vacío debe ser cero")
	assert.True(t, st.Paid.IsZero())
	assert.True(t, st.Outstanding.IsZero())
}

// Caso 5: cliente vacío agrega sobre el libro completo (status y list).
func TestQueryLedger_ClienteVacio_TodoElLibro(t *testing.T) {
	st := billing.QueryLedger(testLedger(), billing.Filter{})

	require.Len(t, st.Rows, 4)
	assertDecimal(t, "2500.00", st.Total, "total del libro completo")
}

// Caso 6 (propiedad): sobre cualquier libro generado al azar se cumple
// exactamente Total == Paid + Outstanding, sin deriva de centavos.
func TestQueryLedger_IdentidadAgregada(t *testing.T) {
	rng := rand.New(rand.NewSource(20260831))
	base := entity.NewDate(2026, time.January, 1)

	ledger := make([]entity.LedgerEntry, 0, 200)
	for i := 0; i < 200; i++ {
		// Montos con centavos arbitrarios, ya redondeados a 2 decimales.
		cents := rng.Int63n(10_000_000)
		ledger = append(ledger, entity.LedgerEntry{
			Number:    fmt.Sprintf("INV-2026-%04d", i+1),
			ClientID:  "acme",
			IssueDate: base.AddDays(rng.Intn(365)),
			Total:     decimal.New(cents, -2),
			Paid:      rng.Intn(2) == 0,
		})
	}

	st := billing.QueryLedger(ledger, billing.Filter{ClientID: "acme"})

	assert.True(t, st.Total.Equal(st.Paid.Add(st.Outstanding)),
		"Total debe igualar exactamente Paid + Outstanding: %s != %s + %s",
		st.Total, st.Paid, st.Outstanding)
}
