// Package format formateo de valores para las vistas (consola web, CLI, PDF).
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Price formatea importes con dos decimales según el idioma.
type Price struct {
	printer *message.Printer
}

// NewPrice crea el formateador. Una etiqueta inválida cae a pt-BR.
func NewPrice(locale string) *Price {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Price{printer: message.NewPrinter(tag)}
}

// Format "1234.5" -> "1.234,50" en pt-BR, "1,234.50" en en-US.
func (p *Price) Format(d decimal.Decimal) string {
	return p.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Quantity entero con separador de miles.
func (p *Price) Quantity(n int) string {
	return p.printer.Sprint(number.Decimal(n))
}
