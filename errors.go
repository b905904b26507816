package currency

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDivisibility = errors.New("divisibility must be a positive integer")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrNoWalletCurDef      = errors.New("no wallet currency definition available")
	ErrNoWalletCurrencies  = errors.New("no supported wallet currencies configured")
)

// UnrecognizedCurrencyError is returned when a currency code is absent from
// the fiat, wallet and crypto listing registries.
type UnrecognizedCurrencyError struct {
	Code string
}

func (e *UnrecognizedCurrencyError) Error() string {
	return fmt.Sprintf("%q is not a recognized currency", e.Code)
}

// NoExchangeRateDataError is returned when the rate cache holds no rate
// for a currency involved in a conversion.
type NoExchangeRateDataError struct {
	Code string
}

func (e *NoExchangeRateDataError) Error() string {
	return fmt.Sprintf("no exchange rate data for %v", e.Code)
}

// IsUnrecognizedCurrency reports whether err, or any error it wraps,
// is an [UnrecognizedCurrencyError].
func IsUnrecognizedCurrency(err error) bool {
	var e *UnrecognizedCurrencyError
	return errors.As(err, &e)
}

// IsNoExchangeRateData reports whether err, or any error it wraps,
// is a [NoExchangeRateDataError].
func IsNoExchangeRateData(err error) bool {
	var e *NoExchangeRateDataError
	return errors.As(err, &e)
}
