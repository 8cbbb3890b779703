package entity

import "github.com/shopspring/decimal"

// UnitFlat unidad que marca un ítem de precio fijo: se factura una sola
// tarifa sin importar la cantidad pedida.
const UnitFlat = "flat"

// CatalogItem ítem del catálogo de líneas facturables (items.toml).
type CatalogItem struct {
	Description string
	Rate        decimal.Decimal
	Unit        string
}

// Flat reporta si el ítem se factura a precio fijo.
func (i CatalogItem) Flat() bool { return i.Unit == UnitFlat }
