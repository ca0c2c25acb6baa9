// Package money formatea montos decimales para reportes (dos decimales, separadores del locale).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea montos con símbolo de moneda y agrupación de miles según el locale.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter construye el formateador. Un locale inválido cae a inglés.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}
}

// Format devuelve el monto redondeado a dos decimales con el símbolo como prefijo.
// Ej (en, "$"): 5 → "$5.00", 1234.5 → "$1,234.50", -2 → "$-2.00"
func (f *Formatter) Format(d decimal.Decimal) string {
	return f.symbol + f.Number(d)
}

// Number igual que Format pero sin símbolo.
func (f *Formatter) Number(d decimal.Decimal) string {
	v := d.Round(2).InexactFloat64()
	return f.printer.Sprint(number.Decimal(v, number.Scale(2)))
}
