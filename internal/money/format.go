package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const defaultSymbol = "$"

// Formatter renders cent amounts as locale-formatted currency strings.
type Formatter struct {
	printer      *message.Printer
	separator    string
	symbol       string
	defaultScale int32
	scales       map[Cents]int32
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithSymbol overrides the currency symbol prefix. An empty symbol keeps the
// default.
func WithSymbol(symbol string) FormatterOption {
	return func(f *Formatter) {
		if symbol != "" {
			f.symbol = symbol
		}
	}
}

// WithScales renders the listed amounts with the given number of fraction
// digits, so "$4" and "$2.00" are echoed back the way they were written.
func WithScales(scales map[Cents]int32) FormatterOption {
	return func(f *Formatter) {
		f.scales = make(map[Cents]int32, len(scales))
		for c, s := range scales {
			f.scales[c] = s
		}
	}
}

// NewFormatter creates a Formatter for the given locale. Amounts are shown with
// two fraction digits unless WithScales says otherwise.
func NewFormatter(tag language.Tag, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		printer:      message.NewPrinter(tag),
		symbol:       defaultSymbol,
		defaultScale: MaxScale,
	}
	f.separator = decimalSeparator(f.printer)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// decimalSeparator reports the locale's decimal mark by rendering 1.5.
func decimalSeparator(p *message.Printer) string {
	sample := p.Sprintf("%v", number.Decimal(1.5,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
	sep := strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5")
	if sep == "" || sep == sample {
		return "."
	}
	return sep
}

// Format renders c, e.g. 100000 → "$1,000.00" for English locales.
func (f *Formatter) Format(c Cents) string {
	scale := f.defaultScale
	if s, ok := f.scales[c]; ok {
		scale = s
	}
	scale = min(max(scale, 0), MaxScale)
	// a whole-unit scale cannot show a cent remainder
	if scale < MaxScale && int64(c)%CentsPerUnit != 0 {
		scale = MaxScale
	}

	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}

	// only whole units go through the locale; cents stay integer digits
	whole := int64(c) / CentsPerUnit
	formatted := f.printer.Sprintf("%v", number.Decimal(whole))
	if scale > 0 {
		cents := fmt.Sprintf("%02d", int64(c)%CentsPerUnit)
		formatted += f.separator + cents[:scale]
	}
	return sign + f.symbol + formatted
}
