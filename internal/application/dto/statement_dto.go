package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// StatementRow una factura dentro del estado de cuenta.
type StatementRow struct {
	Number string
	Date   string // ya formateada para presentación
	Status string // PAGADA / PENDIENTE
	Total  decimal.Decimal
}

// StatementPayload datos completos de un estado de cuenta para el
// renderizador: filas filtradas más los agregados y los filtros aplicados,
// para que el documento deje constancia de qué se incluyó.
type StatementPayload struct {
	Company        entity.Company
	Client         entity.Client
	ClientID       string
	GeneratedDate  string
	Rows           []StatementRow
	Total          decimal.Decimal
	Paid           decimal.Decimal
	Outstanding    decimal.Decimal
	CurrencySymbol string
	FilterFrom     string // vacío si no se filtró
	FilterTo       string
	FilterStatus   string
}
