package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// Filter criterios de un estado de cuenta: cliente (vacío = todos), rango de
// fechas con ambos extremos inclusivos y estado de pago opcional.
type Filter struct {
	ClientID string
	From     *entity.Date
	To       *entity.Date
	// Paid nil = ambos estados; true = solo pagadas; false = solo pendientes.
	Paid *bool
}

// Statement vista agregada de solo lectura sobre el libro. Rows va en orden
// inverso al de inserción (la generación más reciente primero); es convención
// de presentación, no invariante de corrección, pero está documentada y
// cubierta por tests.
type Statement struct {
	Rows        []entity.LedgerEntry
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
}

// QueryLedger filtra el libro y agrega totales sobre el conjunto filtrado.
//
// Un conjunto vacío no es un error: devuelve filas vacías y totales en cero,
// y el llamador decide si lo trata como no-op. Tampoco falla ante un id de
// cliente desconocido: la ausencia de historial es distinta de la ausencia de
// cliente, y la existencia del cliente la valida el orquestador contra la
// configuración antes de consultar.
//
// Los totales suman los montos de 2 decimales ya almacenados, sin volver a
// redondear, así Total == Paid + Outstanding se cumple de forma exacta.
func QueryLedger(ledger []entity.LedgerEntry, f Filter) Statement {
	st := Statement{
		Total:       decimal.Zero,
		Paid:        decimal.Zero,
		Outstanding: decimal.Zero,
	}

	for i := len(ledger) - 1; i >= 0; i-- {
		e := ledger[i]
		if !matches(e, f) {
			continue
		}
		st.Rows = append(st.Rows, e)
		st.Total = st.Total.Add(e.Total)
		if e.Paid {
			st.Paid = st.Paid.Add(e.Total)
		}
	}

	st.Outstanding = st.Total.Sub(st.Paid)
	return st
}

func matches(e entity.LedgerEntry, f Filter) bool {
	if f.ClientID != "" && e.ClientID != f.ClientID {
		return false
	}
	if f.From != nil && e.IssueDate.Before(*f.From) {
		return false
	}
	if f.To != nil && e.IssueDate.After(*f.To) {
		return false
	}
	if f.Paid != nil && e.Paid != *f.Paid {
		return false
	}
	return true
}
