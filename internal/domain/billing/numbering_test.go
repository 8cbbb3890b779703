package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

const testTemplate = "INV-{year}-{seq:04}"

// ──────────────────────────────────────────────────────────────────────────────
// Tests Allocate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: dentro del mismo año la secuencia avanza exactamente en 1.
func TestAllocate_IncrementoDentroDelAnio(t *testing.T) {
	number, updated := billing.Allocate(testTemplate, entity.Counter{LastSequence: 5, LastYear: 2026}, 2026)

	assert.Equal(t, "INV-2026-0006", number)
	assert.Equal(t, entity.Counter{LastSequence: 6, LastYear: 2026}, updated)
}

// Caso 2: al cambiar el año la secuencia reinicia en 1, no continúa.
func TestAllocate_RenovacionDeAnio(t *testing.T) {
	number, updated := billing.Allocate(testTemplate, entity.Counter{LastSequence: 12, LastYear: 2026}, 2027)

	assert.Equal(t, "INV-2027-0001", number,
		"el primer número del año nuevo debe reiniciar la secuencia")
	assert.Equal(t, entity.Counter{LastSequence: 1, LastYear: 2027}, updated)
}

// Caso 3: contador en cero (primer uso) produce la secuencia 1.
func TestAllocate_PrimerUso(t *testing.T) {
	number, updated := billing.Allocate(testTemplate, entity.Counter{}, 2026)

	assert.Equal(t, "INV-2026-0001", number)
	assert.Equal(t, entity.Counter{LastSequence: 1, LastYear: 2026}, updated)
}

// Caso 4: Allocate es pura; mientras el contador persistido no cambie, el
// mismo número se propone una y otra vez. Esta propiedad es la que evita
// saltos de numeración cuando el render falla.
func TestAllocate_EsPura(t *testing.T) {
	counter := entity.Counter{LastSequence: 7, LastYear: 2026}

	a, _ := billing.Allocate(testTemplate, counter, 2026)
	b, _ := billing.Allocate(testTemplate, counter, 2026)

	assert.Equal(t, a, b, "sin persistir el contador debe proponerse el mismo número")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FormatNumber / HasSequenceToken
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: relleno con ceros hasta el ancho del token y desborde natural.
func TestFormatNumber_RellenoYDesborde(t *testing.T) {
	assert.Equal(t, "INV-2026-0007", billing.FormatNumber(testTemplate, 2026, 7))
	assert.Equal(t, "INV-2026-9999", billing.FormatNumber(testTemplate, 2026, 9999))
	assert.Equal(t, "INV-2026-10000", billing.FormatNumber(testTemplate, 2026, 10000),
		"al exceder el ancho el número se emite con sus dígitos naturales")
}

// Caso 6: plantillas personalizadas con otro ancho y otro orden de tokens.
func TestFormatNumber_PlantillaPersonalizada(t *testing.T) {
	assert.Equal(t, "FAC/000042/2026", billing.FormatNumber("FAC/{seq:06}/{year}", 2026, 42))
	assert.Equal(t, "2026-9", billing.FormatNumber("{year}-{seq:1}", 2026, 9))
}

func TestHasSequenceToken(t *testing.T) {
	assert.True(t, billing.HasSequenceToken("INV-{year}-{seq:04}"))
	assert.True(t, billing.HasSequenceToken("{seq:1}"))
	assert.False(t, billing.HasSequenceToken("INV-{year}"),
		"sin token de secuencia todos los números colisionarían")
	assert.False(t, billing.HasSequenceToken("INV-{seq:0}"), "ancho cero no es un token válido")
}
