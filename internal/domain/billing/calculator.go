// Package billing contiene el núcleo puro del motor de facturación: cálculo
// de totales, asignación de números bajo secuencia anual y consultas
// agregadas sobre el libro. Ninguna función de este paquete toca disco ni
// reloj; el estado entra y sale como valores explícitos.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// FlatQuantityPolicy decide qué hacer cuando un ítem de precio fijo se pide
// con cantidad distinta de 1.
type FlatQuantityPolicy int

const (
	// FlatForceOne factura exactamente una tarifa e ignora la cantidad
	// pedida (lectura conservadora; es el valor por defecto).
	FlatForceOne FlatQuantityPolicy = iota
	// FlatReject trata cualquier cantidad distinta de 1 como error de
	// validación.
	FlatReject
)

// ParseFlatQuantityPolicy parsea el valor de config.toml
// (invoice.flat_quantity_policy): "force-one" o "reject".
func ParseFlatQuantityPolicy(s string) (FlatQuantityPolicy, error) {
	switch s {
	case "", "force-one":
		return FlatForceOne, nil
	case "reject":
		return FlatReject, nil
	default:
		return FlatForceOne, fmt.Errorf("flat_quantity_policy inválida %q: use 'force-one' o 'reject'", s)
	}
}

// RequestedItem línea pedida en una generación: referencia al catálogo más
// cantidad solicitada.
type RequestedItem struct {
	ItemID   string
	Quantity decimal.Decimal
}

// LineTotal línea ya resuelta contra el catálogo, con cantidad efectiva y
// monto redondeado a 2 decimales.
type LineTotal struct {
	ItemID      string
	Description string
	Quantity    decimal.Decimal
	Unit        string
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

// Totals resultado completo del cálculo de una factura.
type Totals struct {
	Lines      []LineTotal
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

var one = decimal.NewFromInt(1)

// ComputeTotals resuelve las líneas pedidas contra el catálogo y calcula
// subtotal, impuesto y total. Determinista y sin efectos: llamarla dos veces
// con los mismos argumentos produce el mismo resultado.
//
// Política de redondeo: cada monto de línea y el monto de impuesto se
// redondean a 2 decimales en el momento de calcularse; las sumas de valores
// ya redondeados son exactas, de modo que los agregados de los reportes no
// acumulan deriva de centavos.
func ComputeTotals(
	catalog map[string]entity.CatalogItem,
	requested []RequestedItem,
	taxRate decimal.Decimal,
	policy FlatQuantityPolicy,
) (*Totals, error) {
	if len(requested) == 0 {
		return nil, domain.ErrNoItems
	}
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(one) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTaxRate, taxRate)
	}

	lines := make([]LineTotal, 0, len(requested))
	subtotal := decimal.Zero

	for _, req := range requested {
		item, ok := catalog[req.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, req.ItemID)
		}

		qty := req.Quantity
		if item.Flat() {
			if policy == FlatReject && !qty.Equal(one) {
				return nil, fmt.Errorf("%w: el ítem %q es de precio fijo y solo admite cantidad 1 (pedida: %s)",
					domain.ErrInvalidQuantity, req.ItemID, qty)
			}
			// Precio fijo: una sola tarifa sin importar la cantidad pedida.
			qty = one
		} else if !qty.IsPositive() {
			return nil, fmt.Errorf("%w: %q requiere cantidad mayor que cero (pedida: %s)",
				domain.ErrInvalidQuantity, req.ItemID, qty)
		}

		amount := item.Rate.Mul(qty).Round(2)
		lines = append(lines, LineTotal{
			ItemID:      req.ItemID,
			Description: item.Description,
			Quantity:    qty,
			Unit:        item.Unit,
			Rate:        item.Rate,
			Amount:      amount,
		})
		subtotal = subtotal.Add(amount)
	}

	taxAmount := subtotal.Mul(taxRate).Round(2)
	return &Totals{
		Lines:      lines,
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal.Add(taxAmount),
	}, nil
}
