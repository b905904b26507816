package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// conversionPrecision is the number of digits kept after the decimal point
// when dividing by a rate.
const conversionPrecision = 20

// ExchangeRate represents a unidirectional exchange rate between two
// currencies, derived from their rates against a common pivot coin.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base      string          // currency being exchanged
	quote     string          // currency being obtained in exchange for the base currency
	baseRate  decimal.Decimal // units of base per pivot
	quoteRate decimal.Decimal // units of quote per pivot
}

// NewExchRate returns an exchange rate from base to quote given the rate of
// each currency against the same pivot coin.
//
// NewExchRate returns an error if either rate is not positive, or if base and
// quote are the same currency with different rates.
func NewExchRate(base, quote string, baseRate, quoteRate decimal.Decimal) (ExchangeRate, error) {
	base, quote = normCode(base), normCode(quote)
	if !baseRate.IsPositive() || !quoteRate.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !baseRate.Equal(quoteRate) {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, baseRate: baseRate, quoteRate: quoteRate}, nil
}

// CrossRate returns the exchange rate from one currency to another using the
// cached table. Both codes are normalised to their mainnet code; equal codes
// yield the identity rate without consulting the table.
//
// CrossRate returns a [NoExchangeRateDataError] if the table holds no rate
// for either currency.
func (c *RateCache) CrossRate(from, to string) (ExchangeRate, error) {
	from, to = c.registry.MainnetCode(from), c.registry.MainnetCode(to)
	if from == to {
		one := decimal.NewFromInt(1)
		return ExchangeRate{base: from, quote: to, baseRate: one, quoteRate: one}, nil
	}
	fr, ok := c.rate(from)
	if !ok {
		return ExchangeRate{}, &NoExchangeRateDataError{Code: from}
	}
	tr, ok := c.rate(to)
	if !ok {
		return ExchangeRate{}, &NoExchangeRateDataError{Code: to}
	}
	return NewExchRate(from, to, decimal.NewFromFloat(fr), decimal.NewFromFloat(tr))
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() string {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() string {
	return r.quote
}

// Value returns how many units of the quote currency one unit of the base
// currency buys.
func (r ExchangeRate) Value() decimal.Decimal {
	if r.baseRate.IsZero() {
		return decimal.Zero
	}
	return r.quoteRate.DivRound(r.baseRate, conversionPrecision)
}

// IsIdentity returns true if the base and quote currencies are the same.
func (r ExchangeRate) IsIdentity() bool {
	return r.base == r.quote
}

// Conv returns amount converted from the base to the quote currency,
// computed as amount / baseRate * quoteRate.
//
// Conv panics if the rate is the zero value.
func (r ExchangeRate) Conv(amount decimal.Decimal) decimal.Decimal {
	if r.baseRate.IsZero() {
		panic(fmt.Sprintf("%q.Conv(%v) failed: zero rate", r, amount))
	}
	if r.IsIdentity() {
		return amount
	}
	return amount.DivRound(r.baseRate, conversionPrecision).Mul(r.quoteRate)
}

// Inv returns the inverse of the exchange rate.
func (r ExchangeRate) Inv() ExchangeRate {
	return ExchangeRate{base: r.quote, quote: r.base, baseRate: r.quoteRate, quoteRate: r.baseRate}
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, e.g. "BTC/USD 64000".
func (r ExchangeRate) String() string {
	return r.base + "/" + r.quote + " " + r.Value().String()
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: BTC/USD 64000
//	%q:    "BTC/USD 64000"
//	%f:     64000
//	%c:     BTC/USD
//
// Precision is only supported for the %f verb.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		if p, ok := state.Precision(); ok {
			text = r.Value().StringFixed(int32(p)) //nolint:gosec
		} else {
			text = r.Value().String()
		}
	case 'c', 'C':
		text = r.base + "/" + r.quote
	case 'q', 'Q':
		text = `"` + r.String() + `"`
	default:
		text = r.String()
	}

	if w, ok := state.Width(); ok && w > len(text) {
		pad := w - len(text)
		switch {
		case state.Flag('-'):
			text += spaces(pad)
		default:
			text = spaces(pad) + text
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(currency.ExchangeRate="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
