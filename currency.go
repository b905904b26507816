package currency

import (
	"fmt"
	"strings"
)

// Kind identifies which registry a currency definition comes from.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindFiat
	KindWallet
	KindCryptoListing
)

func (k Kind) String() string {
	switch k {
	case KindFiat:
		return "fiat"
	case KindWallet:
		return "wallet"
	case KindCryptoListing:
		return "crypto-listing"
	default:
		return "unknown"
	}
}

// Definition is the minimal interface shared by all currency variants:
// [FiatCurrency], [WalletCurrency] and [CryptoListingCurrency].
// Callers that need variant specific fields should use a type switch.
type Definition interface {
	// Code returns the upper-case currency code.
	Code() string
	// Symbol returns the display symbol, or an empty string if the
	// currency does not define one.
	Symbol() string
	// Divisibility returns the number of decimal places between the display
	// unit and the base unit. The second result is false when the registry
	// does not declare one.
	Divisibility() (int, bool)
	// Kind reports the registry the definition comes from.
	Kind() Kind
}

// FiatCurrency is an entry of the fiat registry.
// Fiat currencies are always displayed and stored with 2 decimal places.
type FiatCurrency struct {
	code   string
	name   string
	symbol string
}

func (c FiatCurrency) Code() string { return c.code }
func (c FiatCurrency) Name() string { return c.name }
func (c FiatCurrency) Symbol() string { return c.symbol }
func (c FiatCurrency) Kind() Kind { return KindFiat }

// Divisibility always returns 2 for fiat currencies.
func (c FiatCurrency) Divisibility() (int, bool) { return fiatDivisibility, true }

// Format implements the [fmt.Formatter] interface.
// See [formatCode] for the supported verbs.
func (c FiatCurrency) Format(state fmt.State, verb rune) {
	formatCode(state, verb, c.code, "currency.FiatCurrency")
}

// WalletCurrency is an entry of the wallet currency registry: a coin the
// wallet can hold, with its declared divisibility and testnet code.
type WalletCurrency struct {
	code         string
	testnetCode  string
	name         string
	symbol       string
	divisibility int
}

// NewWalletCurrency returns a wallet currency definition.
// Codes are normalised to upper case.
func NewWalletCurrency(code, testnetCode, name, symbol string, divisibility int) (WalletCurrency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return WalletCurrency{}, fmt.Errorf("wallet currency: empty code")
	}
	if divisibility <= 0 {
		return WalletCurrency{}, fmt.Errorf("wallet currency %v: %w", code, ErrInvalidDivisibility)
	}
	return WalletCurrency{
		code:         code,
		testnetCode:  strings.ToUpper(strings.TrimSpace(testnetCode)),
		name:         name,
		symbol:       symbol,
		divisibility: divisibility,
	}, nil
}

// MustNewWalletCurrency is like [NewWalletCurrency] but panics if the
// definition is not valid.
// It simplifies safe initialization of global variables holding definitions.
func MustNewWalletCurrency(code, testnetCode, name, symbol string, divisibility int) WalletCurrency {
	c, err := NewWalletCurrency(code, testnetCode, name, symbol, divisibility)
	if err != nil {
		panic(fmt.Sprintf("NewWalletCurrency(%q, %q, %q, %q, %v) failed: %v", code, testnetCode, name, symbol, divisibility, err))
	}
	return c
}

func (c WalletCurrency) Code() string { return c.code }
func (c WalletCurrency) TestnetCode() string { return c.testnetCode }
func (c WalletCurrency) Name() string { return c.name }
func (c WalletCurrency) Symbol() string { return c.symbol }
func (c WalletCurrency) Kind() Kind { return KindWallet }
func (c WalletCurrency) Divisibility() (int, bool) { return c.divisibility, true }
func (c WalletCurrency) Format(s fmt.State, v rune) { formatCode(s, v, c.code, "currency.WalletCurrency") }

// CryptoListingCurrency is a code accepted for listing purposes.
// It carries no metadata besides the code.
type CryptoListingCurrency struct {
	code string
}

func (c CryptoListingCurrency) Code() string { return c.code }
func (c CryptoListingCurrency) Symbol() string { return "" }
func (c CryptoListingCurrency) Kind() Kind { return KindCryptoListing }
func (c CryptoListingCurrency) Divisibility() (int, bool) { return 0, false }
func (c CryptoListingCurrency) Format(s fmt.State, v rune) {
	formatCode(s, v, c.code, "currency.CryptoListingCurrency")
}

// formatCode writes a currency code honouring the width and '-' flag.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | BTC     | Currency        |
//	| %q         | "BTC"   | Quoted currency |
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
func formatCode(state fmt.State, verb rune, code, typeName string) {
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}
	text := quote + code + quote

	if w, ok := state.Width(); ok && w > len(text) {
		pad := strings.Repeat(" ", w-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(" + typeName + "="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// normCode upper-cases and trims a currency code.
func normCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
