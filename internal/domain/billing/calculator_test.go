package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testCatalog catálogo fijo con un ítem por hora y uno de precio fijo.
func testCatalog() map[string]entity.CatalogItem {
	return map[string]entity.CatalogItem{
		"consulting": {
			Description: "Consultoría técnica",
			Rate:        decimal.RequireFromString("100.00"),
			Unit:        "hora",
		},
		"project-setup": {
			Description: "Montaje de proyecto",
			Rate:        decimal.RequireFromString("500.00"),
			Unit:        entity.UnitFlat,
		},
	}
}

func qty(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"%s: se esperaba %s, se obtuvo %s", msg, expected, actual)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: vector de impuesto conocido. Subtotal 1000.00 con tasa 0.0825 →
// impuesto 82.50 y total 1082.50, ambos redondeados a 2 decimales.
func TestComputeTotals_VectorImpuesto(t *testing.T) {
	totals, err := billing.ComputeTotals(
		testCatalog(),
		[]billing.RequestedItem{{ItemID: "consulting", Quantity: qty("10")}},
		decimal.RequireFromString("0.0825"),
		billing.FlatForceOne,
	)
	require.NoError(t, err)

	assertDecimal(t, "1000.00", totals.Subtotal, "subtotal")
	assertDecimal(t, "82.50", totals.TaxAmount, "impuesto")
	assertDecimal(t, "1082.50", totals.GrandTotal, "total")
}

// Caso 2: un ítem de precio fijo factura una sola tarifa sin importar la
// cantidad pedida (política force-one, la de por defecto).
func TestComputeTotals_ItemFlat_IgnoraCantidad(t *testing.T) {
	totals, err := billing.ComputeTotals(
		testCatalog(),
		[]billing.RequestedItem{{ItemID: "project-setup", Quantity: qty("5")}},
		decimal.Zero,
		billing.FlatForceOne,
	)
	require.NoError(t, err)

	assertDecimal(t, "500.00", totals.GrandTotal, "el precio fijo se cobra una sola vez")
	require.Len(t, totals.Lines, 1)
	assertDecimal(t, "1", totals.Lines[0].Quantity, "la cantidad efectiva queda en 1")
}

// Caso 2b: con la política reject la cantidad distinta de 1 en un ítem de
// precio fijo es un error de validación.
func TestComputeTotals_ItemFlat_PoliticaReject(t *testing.T) {
	_, err := billing.ComputeTotals(
		testCatalog(),
		[]billing.RequestedItem{{ItemID: "project-setup", Quantity: qty("5")}},
		decimal.Zero,
		billing.FlatReject,
	)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity,
		"cantidad != 1 en ítem flat debe rechazarse bajo la política reject")

	// Cantidad exactamente 1 sí pasa.
	_, err = billing.ComputeTotals(
		testCatalog(),
		[]billing.RequestedItem{{ItemID: "project-setup", Quantity: qty("1")}},
		decimal.Zero,
		billing.FlatReject,
	)
	assert.NoError(t, err)
}

// Caso 3: ítem que no existe en el catálogo.
func TestComputeTotals_ItemDesconocido(t *testing.T) {
	_, err := billing.ComputeTotals(
		testCatalog(),
		[]billing.RequestedItem{{ItemID: "no-existe", Quantity: qty("1")}},
		decimal.Zero,
		billing.FlatForceOne,
	)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// Caso 4: cantidad cero o negativa en un ítem por unidad.
func TestComputeTotals_CantidadInvalida(t *testing.T) {
	for _, q := range []string{"0", "-2"} {
		_, err := billing.ComputeTotals(
			testCatalog(),
			[]billing.RequestedItem{{ItemID: "consulting", Quantity: qty(q)}},
			decimal.Zero,
			billing.FlatForceOne,
		)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %s debe rechazarse", q)
	}
}

// Caso 5: una factura sin líneas no es válida.
func TestComputeTotals_SinItems(t *testing.T) {
	_, err := billing.ComputeTotals(testCatalog(), nil, decimal.Zero, billing.FlatForceOne)
	assert.ErrorIs(t, err, domain.ErrNoItems)
}

// Caso 6: la tasa de impuesto debe estar en [0, 1).
func TestComputeTotals_TasaInvalida(t *testing.T) {
	for _, rate := range []string{"-0.01", "1", "1.5"} {
		_, err := billing.ComputeTotals(
			testCatalog(),
			[]billing.RequestedItem{{ItemID: "consulting", Quantity: qty("1")}},
			decimal.RequireFromString(rate),
			billing.FlatForceOne,
		)
		assert.ErrorIs(t, err, domain.ErrInvalidTaxRate, "tasa %s debe rechazarse", rate)
	}
}

// Caso 7: tasa cero es válida y produce impuesto 0 con total == subtotal.
func TestComputeTotals_ImpuestoCero(t *testing.T) {
	totals, err := billing.ComputeTotals(
		testCatalog(),
		[]billing.RequestedItem{{ItemID: "consulting", Quantity: qty("3")}},
		decimal.Zero,
		billing.FlatForceOne,
	)
	require.NoError(t, err)
	assertDecimal(t, "0.00", totals.TaxAmount, "impuesto")
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal), "total debe igualar al subtotal")
}

// Caso 8: el redondeo es por línea, antes de sumar; el subtotal es la suma
// exacta de montos ya redondeados.
func TestComputeTotals_RedondeoPorLinea(t *testing.T) {
	catalog := map[string]entity.CatalogItem{
		"fraccion": {
			Description: "Tarifa con fracción de centavo",
			Rate:        decimal.RequireFromString("33.335"),
			Unit:        "hora",
		},
	}
	totals, err := billing.ComputeTotals(
		catalog,
		[]billing.RequestedItem{
			{ItemID: "fraccion", Quantity: qty("1")},
			{ItemID: "fraccion", Quantity: qty("1")},
		},
		decimal.Zero,
		billing.FlatForceOne,
	)
	require.NoError(t, err)

	// 33.335 redondea a 33.34 en cada línea; la suma es exacta: 66.68
	// (redondear la suma daría 66.67).
	assertDecimal(t, "33.34", totals.Lines[0].Amount, "monto de línea")
	assertDecimal(t, "66.68", totals.Subtotal, "subtotal")
}

// Caso 9: determinismo; dos invocaciones idénticas producen el mismo total.
func TestComputeTotals_Determinista(t *testing.T) {
	req := []billing.RequestedItem{
		{ItemID: "consulting", Quantity: qty("7.5")},
		{ItemID: "project-setup", Quantity: qty("1")},
	}
	rate := decimal.RequireFromString("0.19")

	a, err := billing.ComputeTotals(testCatalog(), req, rate, billing.FlatForceOne)
	require.NoError(t, err)
	b, err := billing.ComputeTotals(testCatalog(), req, rate, billing.FlatForceOne)
	require.NoError(t, err)

	assert.True(t, a.GrandTotal.Equal(b.GrandTotal), "el cálculo debe ser determinista")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ParseFlatQuantityPolicy
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFlatQuantityPolicy(t *testing.T) {
	p, err := billing.ParseFlatQuantityPolicy("")
	require.NoError(t, err)
	assert.Equal(t, billing.FlatForceOne, p, "vacío debe ser force-one")

	p, err = billing.ParseFlatQuantityPolicy("force-one")
	require.NoError(t, err)
	assert.Equal(t, billing.FlatForceOne, p)

	p, err = billing.ParseFlatQuantityPolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, billing.FlatReject, p)

	_, err = billing.ParseFlatQuantityPolicy("otra-cosa")
	assert.Error(t, err, "valor desconocido debe rechazarse")
}
