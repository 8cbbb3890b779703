package moneyfmt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "$1,082.50", moneyfmt.Amount("$", decimal.RequireFromString("1082.50")))
	assert.Equal(t, "$0.00", moneyfmt.Amount("$", decimal.Zero))
	assert.Equal(t, "€1,000,000.00", moneyfmt.Amount("€", decimal.RequireFromString("1000000")))
	// Un monto ya redondeado a 2 decimales se muestra tal cual.
	assert.Equal(t, "$82.50", moneyfmt.Amount("$", decimal.RequireFromString("82.5")))
}

func TestWhole(t *testing.T) {
	assert.Equal(t, "$1,083", moneyfmt.Whole("$", decimal.RequireFromString("1082.50")))
	assert.Equal(t, "$500", moneyfmt.Whole("$", decimal.RequireFromString("500.00")))
}
