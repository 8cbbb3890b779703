package entity

import "github.com/shopspring/decimal"

// Counter contador durable que conduce la numeración de facturas.
// Invariante: LastSequence es la secuencia más alta emitida dentro de
// LastYear; un año nuevo reinicia la secuencia antes de incrementar.
// Solo el asignador de números lo muta y solo el Store lo persiste.
type Counter struct {
	LastSequence uint32 `toml:"last_sequence"`
	LastYear     int    `toml:"last_year"`
}

// LedgerLine par (ítem, cantidad) tal como se pidió al generar la factura.
// Se guarda para poder regenerar el PDF desde los datos almacenados.
type LedgerLine struct {
	ItemID   string          `toml:"item_id"`
	Quantity decimal.Decimal `toml:"quantity"`
}

// LedgerEntry registro de una factura emitida. Inmutable tras su creación,
// con la única excepción del campo Paid.
type LedgerEntry struct {
	Number       string          `toml:"number"`
	ClientID     string          `toml:"client_id"`
	IssueDate    Date            `toml:"issue_date"`
	Total        decimal.Decimal `toml:"total"`
	RenderedFile string          `toml:"rendered_file"`
	Lines        []LedgerLine    `toml:"line_items"`
	Paid         bool            `toml:"paid"`
}

// State instantánea completa persistida en state.toml: el contador y el
// libro de facturas en orden de generación (append-only salvo Paid).
type State struct {
	Counter Counter       `toml:"counter"`
	Ledger  []LedgerEntry `toml:"ledger,omitempty"`
}

// FindEntry busca una entrada por número exacto. Devuelve nil si no existe.
func (s *State) FindEntry(number string) *LedgerEntry {
	for i := range s.Ledger {
		if s.Ledger[i].Number == number {
			return &s.Ledger[i]
		}
	}
	return nil
}
