// Package moneyfmt formatea montos decimales para presentación: símbolo de
// moneda más separadores de miles. Solo presentación; toda la aritmética de
// dinero se hace con decimal y nunca pasa por aquí.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount devuelve el monto con 2 decimales y separadores de miles,
// precedido por el símbolo: $1,082.50.
func Amount(symbol string, v decimal.Decimal) string {
	f, _ := v.Float64()
	return symbol + printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Whole redondea al entero más cercano, para columnas compactas de tablas:
// $1,083.
func Whole(symbol string, v decimal.Decimal) string {
	f, _ := v.Round(0).Float64()
	return symbol + printer.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))
}
