package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// InvoiceLine línea de factura lista para mostrar en el documento.
type InvoiceLine struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

// InvoicePayload datos completos de una factura para el renderizador.
type InvoicePayload struct {
	Number         string
	Date           string // ya formateada para presentación
	DueDate        string
	PaymentTerms   string // p. ej. "Net 30 días"
	Company        entity.Company
	Client         entity.Client
	Lines          []InvoiceLine
	Subtotal       decimal.Decimal
	TaxPercent     decimal.Decimal // tasa en porcentaje (8.25, no 0.0825)
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
	CurrencySymbol string
}
