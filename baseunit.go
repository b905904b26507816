package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Number is a monetary amount as supplied by a caller.
// A string amount is taken to be exact and is processed with arbitrary
// precision decimal arithmetic; a float64 amount is taken to be an already
// lossy display value.
type Number interface {
	float64 | string
}

// parseNumber converts a caller supplied amount to an arbitrary precision decimal.
func parseNumber[T Number](v T) (decimal.Decimal, error) {
	switch x := any(v).(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, x)
		}
		return d, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, fmt.Errorf("%w: special value %v", ErrInvalidAmount, x)
		}
		return decimal.NewFromFloat(x), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}
}

func checkDivisibility(d int) error {
	if d <= 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidDivisibility, d)
	}
	return nil
}

// DecimalToInteger converts a display amount to an integer number of base
// units, round(value * 10^divisibility), rounding half away from zero.
// The result is returned as a string so that amounts beyond the range of
// int64 keep their precision.
//
// DecimalToInteger returns an error if:
//   - divisibility is not a positive integer ([ErrInvalidDivisibility]);
//   - the value is not numeric, NaN or infinite ([ErrInvalidAmount]).
func DecimalToInteger[T Number](value T, divisibility int) (string, error) {
	if err := checkDivisibility(divisibility); err != nil {
		return "", fmt.Errorf("converting to base units: %w", err)
	}
	d, err := parseNumber(value)
	if err != nil {
		return "", fmt.Errorf("converting to base units: %w", err)
	}
	return d.Shift(int32(divisibility)).Round(0).String(), nil //nolint:gosec
}

// IntegerToDecimal converts an integer number of base units back to a display
// amount, value / 10^divisibility, returned as a string without trailing zeros.
//
// IntegerToDecimal returns an error if:
//   - divisibility is not a positive integer ([ErrInvalidDivisibility]);
//   - the value is not numeric, NaN or infinite ([ErrInvalidAmount]).
//
// See [IntegerToDecimalOrNone] for a variant that never fails.
func IntegerToDecimal[T Number](value T, divisibility int) (string, error) {
	if err := checkDivisibility(divisibility); err != nil {
		return "", fmt.Errorf("converting from base units: %w", err)
	}
	d, err := parseNumber(value)
	if err != nil {
		return "", fmt.Errorf("converting from base units: %w", err)
	}
	return d.Shift(-int32(divisibility)).String(), nil //nolint:gosec
}

// IntegerToDecimalOrNone is like [IntegerToDecimal] but logs a failure and
// reports it through the second result instead of returning an error.
// A nil logger discards the diagnostic.
func IntegerToDecimalOrNone[T Number](value T, divisibility int, log *zap.Logger) (string, bool) {
	s, err := IntegerToDecimal(value, divisibility)
	if err != nil {
		if log != nil {
			log.Warn("integer to decimal conversion failed",
				zap.Any("value", value),
				zap.Int("divisibility", divisibility),
				zap.Error(err),
			)
		}
		return "", false
	}
	return s, true
}
