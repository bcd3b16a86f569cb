// Package pricing renders nightly prices for display. Amounts are rounded
// to whole units for display only; stored values are never touched.
package pricing

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// symbols covers the currencies the feed is known to carry plus the usual
// suspects. Codes outside this table fall back to "CODE amount".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"CHF": "CHF ",
	"SEK": "kr ",
	"NOK": "kr ",
	"DKK": "kr ",
	"PLN": "zł ",
	"CZK": "Kč ",
	"TRY": "₺",
	"RUB": "₽",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
	"CAD": "CA$",
	"AUD": "A$",
	"NZD": "NZ$",
}

type Formatter struct {
	def language.Tag
}

// New builds a Formatter with the given default BCP-47 locale. An
// unparseable locale falls back to pt-PT.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("pt-PT")
	}
	return &Formatter{def: tag}
}

// Format renders amount in the default locale.
func (f *Formatter) Format(amount float64, code string) string {
	return f.FormatIn(f.def, amount, code)
}

// FormatIn renders amount with zero fraction digits using the locale's
// digit grouping. An unrecognized currency code yields "CODE amount"
// rather than an error.
func (f *Formatter) FormatIn(tag language.Tag, amount float64, code string) string {
	p := message.NewPrinter(tag)
	n := int64(math.Round(amount))
	sym, ok := symbols[strings.ToUpper(code)]
	if !ok {
		return p.Sprintf("%s %d", code, n)
	}
	return p.Sprintf("%s%d", sym, n)
}

// Locale resolves an Accept-Language header to a display locale, falling
// back to the formatter's default when the header is absent or invalid.
func (f *Formatter) Locale(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return f.def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return f.def
	}
	return tags[0]
}
