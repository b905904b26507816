package currency

import (
	"fmt"
	"sort"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

const (
	fiatDivisibility          = 2
	cryptoListingDivisibility = 8
)

// WalletCurDefEntry describes a single coin of a wallet currency definition.
type WalletCurDefEntry struct {
	Divisibility int `json:"divisibility" mapstructure:"divisibility"`
}

// WalletCurDef maps a wallet currency code to its definition, as reported
// by the wallet backend. Keys match case-insensitively.
type WalletCurDef map[string]WalletCurDefEntry

// lookup finds the entry for the normalized code.
func (d WalletCurDef) lookup(code string) (WalletCurDefEntry, bool) {
	if e, ok := d[code]; ok {
		return e, true
	}
	for k, e := range d {
		if normCode(k) == code {
			return e, true
		}
	}
	return WalletCurDefEntry{}, false
}

// Registry holds the read-only currency registries: fiat currencies, wallet
// currencies and crypto listing codes, plus an optional process-wide wallet
// currency definition.
// A Registry is safe for concurrent use once constructed.
type Registry struct {
	fiat         map[string]FiatCurrency
	wallet       map[string]WalletCurrency
	testnet      map[string]string // testnet code -> mainnet code
	listing      map[string]struct{}
	walletCurDef WalletCurDef
	defaultDef   bool
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithWalletCurDef sets the process-wide wallet currency definition consulted
// by [Registry.CoinDivisibility] when no per-call definition matches.
func WithWalletCurDef(def WalletCurDef) RegistryOption {
	return func(r *Registry) {
		r.walletCurDef = make(WalletCurDef, len(def))
		for code, e := range def {
			r.walletCurDef[normCode(code)] = e
		}
	}
}

// WithDefaultWalletCurDef uses the wallet registry itself as the process-wide
// wallet currency definition. It is meant for callers without a wallet
// backend reporting one. An explicit [WithWalletCurDef] takes precedence.
func WithDefaultWalletCurDef() RegistryOption {
	return func(r *Registry) {
		r.defaultDef = true
	}
}

// WithWalletCurrencies replaces the built-in wallet currency registry.
func WithWalletCurrencies(curs ...WalletCurrency) RegistryOption {
	return func(r *Registry) {
		r.wallet = make(map[string]WalletCurrency, len(curs))
		r.testnet = make(map[string]string, len(curs))
		for _, c := range curs {
			r.addWallet(c)
		}
	}
}

// WithCryptoListingCurrencies replaces the built-in crypto listing list.
func WithCryptoListingCurrencies(codes ...string) RegistryOption {
	return func(r *Registry) {
		r.listing = make(map[string]struct{}, len(codes))
		for _, c := range codes {
			r.listing[normCode(c)] = struct{}{}
		}
	}
}

// NewRegistry returns a registry populated with the built-in fiat, wallet
// and crypto listing tables, then applies the options.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		fiat:    make(map[string]FiatCurrency, len(fiatCurrencies)),
		wallet:  make(map[string]WalletCurrency, len(walletCurrencies)),
		testnet: make(map[string]string, len(walletCurrencies)),
		listing: make(map[string]struct{}, len(cryptoListingCurrencies)),
	}
	for _, c := range fiatCurrencies {
		r.fiat[c.code] = c
	}
	for _, c := range walletCurrencies {
		r.addWallet(c)
	}
	for _, c := range cryptoListingCurrencies {
		r.listing[c] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.defaultDef && r.walletCurDef == nil {
		r.walletCurDef = r.DefaultWalletCurDef()
	}
	return r
}

func (r *Registry) addWallet(c WalletCurrency) {
	r.wallet[c.code] = c
	if c.testnetCode != "" {
		r.wallet[c.testnetCode] = c
		r.testnet[c.testnetCode] = c.code
	}
}

// Fiat returns the fiat currency with the given code.
func (r *Registry) Fiat(code string) (FiatCurrency, bool) {
	c, ok := r.fiat[normCode(code)]
	return c, ok
}

// IsFiat reports whether code is a fiat currency.
func (r *Registry) IsFiat(code string) bool {
	_, ok := r.Fiat(code)
	return ok
}

// Wallet returns the wallet currency with the given mainnet or testnet code.
// The returned definition always carries the mainnet code.
func (r *Registry) Wallet(code string) (WalletCurrency, bool) {
	c, ok := r.wallet[normCode(code)]
	return c, ok
}

// IsCryptoListing reports whether code is an accepted crypto listing code.
func (r *Registry) IsCryptoListing(code string) bool {
	_, ok := r.listing[normCode(code)]
	return ok
}

// MainnetCode returns the canonical code used for exchange rate lookups.
// Testnet codes of wallet currencies (e.g. TBTC) map to their mainnet code;
// any other code is returned upper-cased.
func (r *Registry) MainnetCode(code string) string {
	code = normCode(code)
	if m, ok := r.testnet[code]; ok {
		return m
	}
	return code
}

// IsBitcoin reports whether code is Bitcoin or its testnet variant.
func (r *Registry) IsBitcoin(code string) bool {
	return r.MainnetCode(code) == "BTC"
}

// WalletCodes returns the sorted mainnet codes of the wallet registry.
func (r *Registry) WalletCodes() []string {
	codes := make([]string, 0, len(r.wallet))
	for code, c := range r.wallet {
		if code == c.code {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the most specific definition for code: a fiat definition
// first, then a wallet definition, then a crypto listing entry.
// Lookup returns an [UnrecognizedCurrencyError] if none of the registries
// contains the code.
func (r *Registry) Lookup(code string) (Definition, error) {
	code = normCode(code)
	if c, ok := r.fiat[code]; ok {
		return c, nil
	}
	if c, ok := r.wallet[code]; ok {
		return c, nil
	}
	if _, ok := r.listing[code]; ok {
		return CryptoListingCurrency{code: code}, nil
	}
	return nil, &UnrecognizedCurrencyError{Code: code}
}

// PivotCoin picks the coin exchange rates are expressed against from the
// supported wallet currencies: a Bitcoin-like coin when present, otherwise
// the first entry.
func (r *Registry) PivotCoin(supported []string) (string, error) {
	if len(supported) == 0 {
		return "", ErrNoWalletCurrencies
	}
	for _, code := range supported {
		if r.IsBitcoin(code) {
			return normCode(code), nil
		}
	}
	return normCode(supported[0]), nil
}

// CoinDivisibility returns the number of decimal places between the display
// unit and the base unit of a currency.
// The code is resolved in the following order:
//  1. the per-call wallet currency definition def, when it contains the code;
//  2. the process-wide wallet currency definition (see [WithWalletCurDef]);
//  3. fiat currencies, which always use 2;
//  4. the wallet currency registry;
//  5. crypto listing currencies, which use 8.
//
// CoinDivisibility returns an error if:
//   - the code is empty;
//   - neither def nor a process-wide definition is available ([ErrNoWalletCurDef]);
//   - the code is not recognized ([UnrecognizedCurrencyError]).
func (r *Registry) CoinDivisibility(code string, def WalletCurDef) (int, error) {
	code = normCode(code)
	if code == "" {
		return 0, fmt.Errorf("coin divisibility: empty currency code")
	}
	if def == nil && r.walletCurDef == nil {
		return 0, ErrNoWalletCurDef
	}
	if e, ok := def.lookup(code); ok {
		return e.Divisibility, nil
	}
	if e, ok := r.walletCurDef.lookup(code); ok {
		return e.Divisibility, nil
	}
	if _, ok := r.fiat[code]; ok {
		return fiatDivisibility, nil
	}
	if c, ok := r.wallet[code]; ok {
		return c.divisibility, nil
	}
	if _, ok := r.listing[code]; ok {
		return cryptoListingDivisibility, nil
	}
	return 0, &UnrecognizedCurrencyError{Code: code}
}

// DefaultWalletCurDef returns a wallet currency definition built from the
// wallet registry. It is a convenient process-wide definition when the
// wallet backend does not report one.
func (r *Registry) DefaultWalletCurDef() WalletCurDef {
	def := make(WalletCurDef, len(r.wallet))
	for code, c := range r.wallet {
		def[code] = WalletCurDefEntry{Divisibility: c.divisibility}
	}
	return def
}

// truncateCode shortens long listing codes for display.
func truncateCode(code string, n int) string {
	r := []rune(code)
	if len(r) <= n {
		return code
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
