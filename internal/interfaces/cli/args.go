package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// parseItemSpecs convierte los valores de --item ("id" o "id:cantidad") en
// líneas pedidas. Sin cantidad explícita se asume 1.
func parseItemSpecs(specs []string) ([]billing.RequestedItem, error) {
	items := make([]billing.RequestedItem, 0, len(specs))
	for _, spec := range specs {
		id, qtyStr, hasQty := strings.Cut(spec, ":")
		if id == "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidItemFormat, spec)
		}

		qty := decimal.NewFromInt(1)
		if hasQty {
			var err error
			qty, err = decimal.NewFromString(qtyStr)
			if err != nil {
				return nil, fmt.Errorf("%w: %q (la cantidad debe ser numérica)",
					domain.ErrInvalidItemFormat, spec)
			}
		}
		items = append(items, billing.RequestedItem{ItemID: id, Quantity: qty})
	}
	return items, nil
}

// parseDateFlag parsea un filtro de fecha YYYY-MM-DD; vacío significa sin
// filtro.
func parseDateFlag(value string) (*entity.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (se espera YYYY-MM-DD)", domain.ErrInvalidDateFilter, value)
	}
	return &d, nil
}

// parseStatusFlag parsea el filtro de estado de pago; vacío significa sin
// filtro.
func parseStatusFlag(value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "paid":
		paid := true
		return &paid, nil
	case "unpaid":
		paid := false
		return &paid, nil
	default:
		return nil, fmt.Errorf("%w: %q (valores válidos: paid, unpaid)",
			domain.ErrInvalidStatusFilter, value)
	}
}
