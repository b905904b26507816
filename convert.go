package currency

import (
	"fmt"
)

// Convert converts amount from one currency to another using the rates
// cached in rc. Both codes are normalised to their mainnet code.
//
// When the codes are equal the input is returned unchanged and no rate is
// required. Otherwise the result is amount / rate(from) * rate(to):
//   - string amounts are computed with arbitrary precision decimal arithmetic
//     and returned as strings;
//   - float64 amounts are computed with floating point arithmetic.
//
// Convert returns an error if:
//   - either code is empty;
//   - the cache has no rate for either currency ([NoExchangeRateDataError]);
//   - a string amount is not numeric ([ErrInvalidAmount]).
func Convert[T Number](rc *RateCache, amount T, from, to string) (T, error) {
	var zero T
	if normCode(from) == "" || normCode(to) == "" {
		return zero, fmt.Errorf("converting currency: empty currency code")
	}
	r, err := rc.CrossRate(from, to)
	if err != nil {
		return zero, fmt.Errorf("converting %v to %v: %w", normCode(from), normCode(to), err)
	}
	if r.IsIdentity() {
		return amount, nil
	}

	switch x := any(amount).(type) {
	case string:
		d, err := parseNumber(x)
		if err != nil {
			return zero, fmt.Errorf("converting %v to %v: %w", r.Base(), r.Quote(), err)
		}
		return any(r.Conv(d).String()).(T), nil
	case float64:
		fr, _ := r.baseRate.Float64()
		tr, _ := r.quoteRate.Float64()
		return any(x / fr * tr).(T), nil
	default:
		return zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, amount)
	}
}
