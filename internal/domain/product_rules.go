package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Límites de producto: los de las columnas quantity INTEGER y price NUMERIC(14,2).
const (
	MaxQuantity = math.MaxInt32
	PriceScale  = 2
)

// maxPrice cota exclusiva: 12 dígitos enteros.
var maxPrice = decimal.New(1, 12)

// QuantityProblem mensaje de validación de una cantidad, "" si es válida.
func QuantityProblem(q int64) string {
	switch {
	case q <= 0:
		return MsgPositiveInteger
	case q > MaxQuantity:
		return MsgQuantityTooLarge
	}
	return ""
}

// PriceProblem mensaje de validación de un precio, "" si es válido.
// No se redondea: un precio con más decimales de los que se guardan se rechaza.
func PriceProblem(p decimal.Decimal) string {
	switch {
	case !p.IsPositive():
		return MsgPositiveDecimal
	case !p.Equal(p.Truncate(PriceScale)):
		return MsgPriceScale
	case p.GreaterThanOrEqual(maxPrice):
		return MsgPriceTooLarge
	}
	return ""
}
