package currency

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDisplayDecimals is the largest number of fraction digits rendered.
const maxDisplayDecimals = 20

// listingCodeWidth is the number of characters of a crypto listing code
// shown before it is truncated.
const listingCodeWidth = 8

// BTCUnit is the unit Bitcoin amounts are displayed in.
type BTCUnit string

const (
	UnitBTC     BTCUnit = "BTC"
	UnitMBTC    BTCUnit = "MBTC"
	UnitUBTC    BTCUnit = "UBTC"
	UnitSatoshi BTCUnit = "SATOSHI"
)

// ParseBTCUnit converts a case-insensitive unit name to a [BTCUnit].
func ParseBTCUnit(s string) (BTCUnit, error) {
	switch u := BTCUnit(strings.ToUpper(strings.TrimSpace(s))); u {
	case UnitBTC, UnitMBTC, UnitUBTC, UnitSatoshi:
		return u, nil
	case "":
		return UnitBTC, nil
	default:
		return "", fmt.Errorf("parsing bitcoin unit %q: unknown unit", s)
	}
}

// shift returns the power of ten one BTC is multiplied by in this unit.
func (u BTCUnit) shift() int {
	switch u {
	case UnitMBTC:
		return 3
	case UnitUBTC:
		return 6
	case UnitSatoshi:
		return 8
	default:
		return 0
	}
}

// Symbol returns the label displayed next to amounts in this unit.
func (u BTCUnit) Symbol() string {
	switch u {
	case UnitMBTC:
		return "mBTC"
	case UnitUBTC:
		return "μBTC"
	case UnitSatoshi:
		return "sat"
	default:
		return "BTC"
	}
}

// Validity classifies a currency code for display and conversion.
type Validity int

const (
	Valid Validity = iota
	ExchangeRateMissing
	UnrecognizedCurrency
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "VALID"
	case ExchangeRateMissing:
		return "EXCHANGE_RATE_MISSING"
	case UnrecognizedCurrency:
		return "UNRECOGNIZED_CURRENCY"
	default:
		return "Validity(" + strconv.Itoa(int(v)) + ")"
	}
}

// FormatOptions controls how an amount is rendered.
type FormatOptions struct {
	Locale  language.Tag
	BTCUnit BTCUnit

	// UseCryptoSymbol shows the symbol of a wallet currency (e.g. ₿)
	// instead of its code when one is defined.
	UseCryptoSymbol bool

	// IncludeCryptoCurCode decorates crypto amounts with a symbol or code.
	IncludeCryptoCurCode bool

	// MinDisplayDecimals and MaxDisplayDecimals override the defaults
	// derived from the currency when non-nil.
	MinDisplayDecimals *int
	MaxDisplayDecimals *int

	// ExtendMaxDecimalsOnZero raises the maximum number of decimals until a
	// nonzero amount no longer displays as zero.
	ExtendMaxDecimalsOnZero bool

	// WalletCurDef is the per-call wallet currency definition used to
	// resolve divisibility.
	WalletCurDef WalletCurDef

	// SkipConvertOnError makes ConvertAndFormat fall back to the original
	// amount and currency when no exchange rate is available.
	SkipConvertOnError bool
}

// FormatOption configures [FormatOptions].
type FormatOption func(*FormatOptions)

func WithLocale(tag language.Tag) FormatOption {
	return func(o *FormatOptions) { o.Locale = tag }
}

func WithBTCUnit(u BTCUnit) FormatOption {
	return func(o *FormatOptions) { o.BTCUnit = u }
}

func WithCryptoSymbol(use bool) FormatOption {
	return func(o *FormatOptions) { o.UseCryptoSymbol = use }
}

func WithCryptoCurCode(include bool) FormatOption {
	return func(o *FormatOptions) { o.IncludeCryptoCurCode = include }
}

func WithMinDisplayDecimals(n int) FormatOption {
	return func(o *FormatOptions) { o.MinDisplayDecimals = &n }
}

func WithMaxDisplayDecimals(n int) FormatOption {
	return func(o *FormatOptions) { o.MaxDisplayDecimals = &n }
}

func WithExtendMaxDecimalsOnZero(extend bool) FormatOption {
	return func(o *FormatOptions) { o.ExtendMaxDecimalsOnZero = extend }
}

// WithCurDef sets the per-call wallet currency definition.
func WithCurDef(def WalletCurDef) FormatOption {
	return func(o *FormatOptions) { o.WalletCurDef = def }
}

func WithSkipConvertOnError(skip bool) FormatOption {
	return func(o *FormatOptions) { o.SkipConvertOnError = skip }
}

// FormatterConfig holds the collaborators and defaults of a [Formatter].
type FormatterConfig struct {
	Registry *Registry

	// Rates is used for conversion and validity checks. A formatter without
	// rates treats every exchange rate as missing.
	Rates *RateCache

	Translator Translator
	Logger     *zap.Logger

	// Locale and BTCUnit are the defaults applied to every call.
	Locale  language.Tag
	BTCUnit BTCUnit
}

// Formatter renders localized currency amounts.
// Formatter is safe for concurrent use.
type Formatter struct {
	registry *Registry
	rates    *RateCache
	tr       Translator
	log      *zap.Logger
	locale   language.Tag
	unit     BTCUnit
}

// NewFormatter returns a formatter. Missing collaborators are replaced with
// defaults: a registry with the built-in wallet currency definition, the
// English catalog translator and a no-op logger.
func NewFormatter(cfg FormatterConfig) *Formatter {
	f := &Formatter{
		registry: cfg.Registry,
		rates:    cfg.Rates,
		tr:       cfg.Translator,
		log:      cfg.Logger,
		locale:   cfg.Locale,
		unit:     cfg.BTCUnit,
	}
	if f.registry == nil {
		if f.rates != nil {
			f.registry = f.rates.Registry()
		} else {
			f.registry = NewRegistry(WithDefaultWalletCurDef())
		}
	}
	if f.tr == nil {
		f.tr = NewCatalogTranslator()
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	if f.locale == language.Und {
		f.locale = language.AmericanEnglish
	}
	if f.unit == "" {
		f.unit = UnitBTC
	}
	return f
}

func (f *Formatter) options(opts []FormatOption) FormatOptions {
	o := FormatOptions{
		Locale:                  f.locale,
		BTCUnit:                 f.unit,
		UseCryptoSymbol:         true,
		IncludeCryptoCurCode:    true,
		ExtendMaxDecimalsOnZero: true,
		SkipConvertOnError:      true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// display is an amount prepared for rendering.
type display struct {
	kind     Kind
	code     string
	amount   decimal.Decimal // after the bitcoin unit shift
	min, max int
	symbol   string // fiat or wallet symbol, empty when a code is shown
	label    string // code or unit shown when symbol is empty
}

// zero reports whether the amount renders as zero.
func (d display) zero() bool {
	return d.amount.Round(int32(d.max)).IsZero() //nolint:gosec
}

func (f *Formatter) prepare(amount decimal.Decimal, code string, o FormatOptions) (display, error) {
	cur := normCode(code)
	if cur == "" {
		return display{}, fmt.Errorf("formatting currency: empty currency code")
	}
	meta, err := f.registry.CurMeta(cur)
	if err != nil {
		if !IsUnrecognizedCurrency(err) {
			return display{}, fmt.Errorf("formatting currency: %w", err)
		}
		f.log.Debug("formatting unrecognized currency as crypto listing currency", zap.String("code", cur))
		meta = Meta{Code: cur, IsCryptoListingCur: true}
	}

	d := display{kind: meta.Kind(), code: cur, amount: amount, label: cur}
	shift := 0
	switch d.kind {
	case KindFiat:
		d.symbol = f.fiatSymbol(o.Locale, cur, meta.Def)
	case KindWallet:
		if o.UseCryptoSymbol && meta.Def != nil {
			d.symbol = meta.Def.Symbol()
		}
		if f.registry.IsBitcoin(cur) && o.BTCUnit.shift() > 0 {
			shift = o.BTCUnit.shift()
			d.amount = amount.Shift(int32(shift)) //nolint:gosec
			d.symbol = ""
			d.label = o.BTCUnit.Symbol()
		}
	default:
		d.label = truncateCode(cur, listingCodeWidth)
	}

	d.min, d.max = f.displayDecimals(d, meta, shift, o)
	return d, nil
}

// displayDecimals resolves the fraction digit bounds for d.
func (f *Formatter) displayDecimals(d display, meta Meta, shift int, o FormatOptions) (int, int) {
	lo := 0
	if d.kind == KindFiat {
		lo = fiatDivisibility
	}
	if o.MinDisplayDecimals != nil {
		lo = *o.MinDisplayDecimals
	}

	var hi int
	switch {
	case o.MaxDisplayDecimals != nil:
		hi = *o.MaxDisplayDecimals
	case d.kind == KindFiat:
		hi = fiatDivisibility
	default:
		div, err := f.registry.CoinDivisibility(d.code, o.WalletCurDef)
		if err != nil {
			div = cryptoListingDivisibility
			if n, ok := definitionDivisibility(meta.Def); ok {
				div = n
			}
			f.log.Debug("using fallback divisibility",
				zap.String("code", d.code),
				zap.Int("divisibility", div),
				zap.Error(err),
			)
		}
		hi = max(div-shift, 0)
	}

	lo = min(max(lo, 0), maxDisplayDecimals)
	hi = min(max(hi, lo), maxDisplayDecimals)

	if o.ExtendMaxDecimalsOnZero && !d.amount.IsZero() {
		for hi < maxDisplayDecimals && d.amount.Round(int32(hi)).IsZero() { //nolint:gosec
			hi++
		}
	}
	return lo, hi
}

func definitionDivisibility(def Definition) (int, bool) {
	if def == nil {
		return 0, false
	}
	return def.Divisibility()
}

// fiatSymbol returns the locale's symbol for a fiat code, falling back to
// the registry symbol and then the code itself.
func (f *Formatter) fiatSymbol(tag language.Tag, code string, def Definition) string {
	if u, err := xcurrency.ParseISO(code); err == nil {
		p := message.NewPrinter(tag)
		if s := p.Sprint(xcurrency.Symbol(u)); s != "" {
			return s
		}
	}
	if def != nil && def.Symbol() != "" {
		return def.Symbol()
	}
	return code + " "
}

// Format renders amount in the currency identified by code.
// Unrecognized codes are formatted as crypto listing currencies.
// Fiat symbols always precede the number, whatever the locale.
//
// Format returns an error if the code is empty.
// See [Formatter.FormatCurrency] for a variant that never fails.
func (f *Formatter) Format(amount decimal.Decimal, code string, opts ...FormatOption) (string, error) {
	o := f.options(opts)
	d, err := f.prepare(amount, code, o)
	if err != nil {
		return "", err
	}
	return f.render(d, o), nil
}

func (f *Formatter) render(d display, o FormatOptions) string {
	p := message.NewPrinter(o.Locale)

	if d.kind == KindFiat {
		sign := ""
		if d.amount.Round(int32(d.max)).IsNegative() { //nolint:gosec
			sign = "-"
		}
		return sign + d.symbol + formatNumber(p, d.amount.Abs(), d.min, d.max)
	}

	num := formatNumber(p, d.amount, d.min, d.max)
	if !o.IncludeCryptoCurCode {
		return num
	}
	if d.symbol != "" {
		return f.tr.Translate(o.Locale, KeyCurSymbolAmount, map[string]string{
			"symbol": d.symbol,
			"amount": num,
		})
	}
	return f.tr.Translate(o.Locale, KeyCurCodeAmount, map[string]string{
		"code":   d.label,
		"amount": num,
	})
}

// FormatCurrency is like [Formatter.Format] but logs a failure and returns
// an empty string instead.
func (f *Formatter) FormatCurrency(amount decimal.Decimal, code string, opts ...FormatOption) string {
	s, err := f.Format(amount, code, opts...)
	if err != nil {
		f.log.Warn("unable to format currency",
			zap.String("amount", amount.String()),
			zap.String("code", code),
			zap.Error(err),
		)
		return ""
	}
	return s
}

// ConvertAndFormat converts amount from one currency to another and formats
// the result.
//
// When no exchange rate is available and SkipConvertOnError is set (the
// default), the original amount is formatted in the original currency.
// The original amount is also used when a nonzero amount would display as
// zero once converted.
func (f *Formatter) ConvertAndFormat(amount decimal.Decimal, from, to string, opts ...FormatOption) (string, error) {
	o := f.options(opts)

	out, err := f.convert(amount, from, to)
	if err != nil {
		if !o.SkipConvertOnError || !IsNoExchangeRateData(err) {
			return "", err
		}
		f.log.Debug("formatting unconverted amount", zap.String("from", from), zap.String("to", to), zap.Error(err))
		return f.Format(amount, from, opts...)
	}

	d, err := f.prepare(out, to, o)
	if err != nil {
		return "", err
	}
	if !amount.IsZero() && d.zero() {
		f.log.Debug("converted amount displays as zero", zap.String("from", from), zap.String("to", to))
		return f.Format(amount, from, opts...)
	}
	return f.render(d, o), nil
}

func (f *Formatter) convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if f.rates == nil {
		if f.registry.MainnetCode(from) == f.registry.MainnetCode(to) {
			return amount, nil
		}
		return decimal.Zero, fmt.Errorf("converting %v to %v: %w", normCode(from), normCode(to),
			&NoExchangeRateDataError{Code: normCode(from)})
	}
	s, err := Convert(f.rates, amount.String(), from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(s)
}

// ConvertAndFormatCurrency is like [Formatter.ConvertAndFormat] but logs a
// failure and returns an empty string instead.
func (f *Formatter) ConvertAndFormatCurrency(amount decimal.Decimal, from, to string, opts ...FormatOption) string {
	s, err := f.ConvertAndFormat(amount, from, to, opts...)
	if err != nil {
		f.log.Warn("unable to convert and format currency",
			zap.String("amount", amount.String()),
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		return ""
	}
	return s
}

// CurrencyValidity reports whether code can be displayed and converted.
func (f *Formatter) CurrencyValidity(code string) Validity {
	if _, err := f.registry.CurMeta(code); err != nil {
		return UnrecognizedCurrency
	}
	if f.rates == nil {
		return ExchangeRateMissing
	}
	if _, ok := f.rates.ExchangeRate(code); !ok {
		return ExchangeRateMissing
	}
	return Valid
}

// RenderPairedCurrency renders amount in the from currency followed by its
// value in the to currency, e.g. "₿0.5 ($32,000.00)". The converted part is
// only added when both currencies are valid and distinct; a testnet code and
// its mainnet code are the same currency. The base part is
// empty when the from currency is not recognized.
func (f *Formatter) RenderPairedCurrency(amount decimal.Decimal, from, to string, opts ...FormatOption) string {
	o := f.options(opts)

	fromValidity := f.CurrencyValidity(from)
	base := ""
	if fromValidity != UnrecognizedCurrency {
		base = f.FormatCurrency(amount, from, opts...)
	}
	if fromValidity != Valid || f.CurrencyValidity(to) != Valid || f.registry.MainnetCode(from) == f.registry.MainnetCode(to) {
		return base
	}

	converted := f.ConvertAndFormatCurrency(amount, from, to, opts...)
	if converted == "" {
		return base
	}
	return f.tr.Translate(o.Locale, KeyCurrencyPairing, map[string]string{
		"baseCurValue":      base,
		"convertedCurValue": converted,
	})
}

// formatNumber renders d with between lo and hi fraction digits using the
// digits, digit grouping and decimal separator of p's locale.
func formatNumber(p *message.Printer, d decimal.Decimal, lo, hi int) string {
	r := d.Round(int32(hi)) //nolint:gosec
	whole, frac, _ := strings.Cut(r.Abs().StringFixed(int32(hi)), ".") //nolint:gosec
	frac = strings.TrimRight(frac, "0")
	if len(frac) < lo {
		frac += strings.Repeat("0", lo-len(frac))
	}

	var b strings.Builder
	if r.IsNegative() {
		b.WriteByte('-')
	}
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		b.WriteString(p.Sprint(number.Decimal(n)))
	} else {
		b.WriteString(groupDigits(localDigits(p, whole), groupSeparator(p)))
	}
	if frac != "" {
		b.WriteString(decimalSeparator(p))
		b.WriteString(localDigits(p, frac))
	}
	return b.String()
}

// localDigits rewrites the ASCII digits of s in the numbering system of
// p's locale.
func localDigits(p *message.Printer, s string) string {
	zero, _ := utf8.DecodeRuneInString(p.Sprint(number.Decimal(int64(0))))
	if zero == '0' || !unicode.IsDigit(zero) {
		return s
	}
	return strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return zero + c - '0'
		}
		return c
	}, s)
}

// groupDigits inserts sep between groups of three digits of s.
func groupDigits(s, sep string) string {
	digits := []rune(s)
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}

// separator returns the first run of non-digit characters in s.
func separator(s, fallback string) string {
	if parts := strings.FieldsFunc(s, unicode.IsDigit); len(parts) > 0 {
		return parts[0]
	}
	return fallback
}

// decimalSeparator returns the decimal separator of p's locale.
func decimalSeparator(p *message.Printer) string {
	return separator(p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1))), ".")
}

// groupSeparator returns the digit grouping separator of p's locale.
func groupSeparator(p *message.Printer) string {
	return separator(p.Sprint(number.Decimal(int64(1000000))), ",")
}
